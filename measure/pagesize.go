package measure

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"mapsheet/common"
)

// CustomID is identifier of every page size with explicit dimensions.
const CustomID = "CUSTOM"

// PageSize is physical size of the output page.
type PageSize struct {
	ID          string             `yaml:"id"`
	Orientation common.Orientation `yaml:"orientation"`
	Width       float64            `yaml:"width"`
	Height      float64            `yaml:"height"`
	Units       common.Unit        `yaml:"units"`
}

// String returns page size in the form it could be parsed from.
func (ps PageSize) String() string {
	parts := []string{ps.ID, strings.ToUpper(ps.Orientation.String())}
	if ps.ID == CustomID {
		parts = append(parts, formatNumber(ps.Width), formatNumber(ps.Height), strings.ToUpper(ps.Units.String()))
	}
	return strings.Join(parts, " ")
}

type dimensions struct {
	width, height float64
}

// Portrait dimensions in inches.
var standardSizes = map[string]dimensions{
	"LETTER":  {8.5, 11},
	"LEGAL":   {8.5, 14},
	"TABLOID": {11, 17},
	"A5":      {5.83, 8.27},
	"A4":      {8.27, 11.69},
	"A3":      {11.69, 16.54},
	"A2":      {16.54, 23.39},
	"A1":      {23.39, 33.11},
	"A0":      {33.11, 46.8},
	"C":       {17, 22},
	"D":       {22, 34},
	"E":       {34, 44},
}

// StandardSizes returns identifiers of all standard page sizes in natural
// order.
func StandardSizes() []string {
	names := make([]string, 0, len(standardSizes))
	for name := range standardSizes {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// PageSize parses page size specification.
func (p *Parser) PageSize(spec string) (PageSize, error) {
	tokens := tokenize(spec)
	if len(tokens) == 0 {
		return PageSize{}, invalidArgument("empty page size")
	}

	switch len(tokens) {
	case 2, 4, 5:
	default:
		return PageSize{}, invalidArgument("page size %q: expected 2, 4 or 5 tokens, got %d", spec, len(tokens))
	}

	orientation, err := common.ParseOrientation(tokens[1])
	if err != nil {
		return PageSize{}, invalidArgument("page size %q: %v", spec, err)
	}

	if len(tokens) == 2 {
		return standardPageSize(tokens[0], orientation)
	}
	return p.customPageSize(tokens, orientation)
}

func standardPageSize(id string, orientation common.Orientation) (PageSize, error) {
	dim, ok := standardSizes[id]
	if !ok {
		return PageSize{}, invalidArgument("unsupported page size %q", id)
	}
	ps := PageSize{
		ID:          id,
		Orientation: orientation,
		Width:       dim.width,
		Height:      dim.height,
		Units:       common.UnitInches,
	}
	if orientation == common.OrientationLandscape {
		ps.Width, ps.Height = ps.Height, ps.Width
	}
	return ps, nil
}

// customPageSize does not swap dimensions, they are taken as given.
func (p *Parser) customPageSize(tokens []string, orientation common.Orientation) (PageSize, error) {
	width, err := parseNumber(tokens[2])
	if err != nil {
		return PageSize{}, malformedNumber("page width", tokens[2], err)
	}
	height, err := parseNumber(tokens[3])
	if err != nil {
		return PageSize{}, malformedNumber("page height", tokens[3], err)
	}
	if width <= 0 || height <= 0 {
		return PageSize{}, invalidArgument("page dimensions must be positive, got %sx%s", tokens[2], tokens[3])
	}

	units := common.UnitInches
	if len(tokens) == 5 {
		u, ok := LookupUnit(tokens[4])
		if !ok || !u.IsLength() {
			return PageSize{}, invalidArgument("unsupported page unit %q", tokens[4])
		}
		units = u
	}
	return PageSize{
		ID:          CustomID,
		Orientation: orientation,
		Width:       width,
		Height:      height,
		Units:       units,
	}, nil
}

// ParsePageSize parses page size specification with default parser.
func ParsePageSize(spec string) (PageSize, error) {
	return defaultParser.PageSize(spec)
}
