package measure

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"mapsheet/common"
)

const maxMarginTokens = 5

// Margins are insets from the four page edges, all in the same unit.
type Margins struct {
	Top    float64     `yaml:"top"`
	Right  float64     `yaml:"right"`
	Bottom float64     `yaml:"bottom"`
	Left   float64     `yaml:"left"`
	Units  common.Unit `yaml:"units"`
}

// String returns margins in the form they could be parsed from.
func (m Margins) String() string {
	return strings.Join([]string{
		formatNumber(m.Top), formatNumber(m.Right), formatNumber(m.Bottom), formatNumber(m.Left),
		strings.ToUpper(m.Units.String()),
	}, " ")
}

// Margins parses margin specification. When last token is not a number it
// names the unit, otherwise margins are in inches. Values past the fourth
// are ignored.
func (p *Parser) Margins(spec string) (Margins, error) {
	tokens := tokenize(spec)
	if len(tokens) == 0 {
		return Margins{}, invalidArgument("empty margins")
	}
	if len(tokens) > maxMarginTokens {
		return Margins{}, invalidArgument("margins %q: at most %d tokens expected, got %d", spec, maxMarginTokens, len(tokens))
	}

	units := common.UnitInches
	last := tokens[len(tokens)-1]
	if _, err := parseNumber(last); errors.Is(err, errNotFinite) {
		return Margins{}, malformedNumber("margin", last, err)
	} else if err != nil {
		if units, err = p.resolveMarginUnit(last); err != nil {
			return Margins{}, err
		}
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) == 0 {
		return Margins{}, invalidArgument("margins %q: no values", spec)
	}

	values := make([]float64, len(tokens))
	for i, t := range tokens {
		v, err := parseNumber(t)
		if err != nil {
			return Margins{}, malformedNumber("margin", t, err)
		}
		values[i] = v
	}

	m := Margins{Units: units}
	switch len(values) {
	case 1:
		m.Top, m.Right, m.Bottom, m.Left = values[0], values[0], values[0], values[0]
	case 2:
		m.Top, m.Bottom = values[0], values[0]
		m.Right, m.Left = values[1], values[1]
	case 3:
		m.Top = values[0]
		m.Right, m.Left = values[1], values[1]
		m.Bottom = values[2]
	default:
		m.Top, m.Right, m.Bottom, m.Left = values[0], values[1], values[2], values[3]
	}
	return m, nil
}

// MarginsIn parses margin specification and converts absolute margins to
// requested unit. Percent margins stay in percent.
func (p *Parser) MarginsIn(spec string, to common.Unit) (Margins, error) {
	if !to.IsLength() {
		return Margins{}, invalidArgument("margins cannot be converted to %s", to)
	}
	m, err := p.Margins(spec)
	if err != nil {
		return Margins{}, err
	}
	if m.Units != to && m.Units != common.UnitPercent {
		p.log.Debug("Converting margins", zap.Stringer("from", m.Units), zap.Stringer("to", to))
	}
	return p.conv.ConvertMargins(m, to), nil
}

// ParseMargins parses margin specification with default parser.
func ParseMargins(spec string) (Margins, error) {
	return defaultParser.Margins(spec)
}

// ParseMarginsIn parses margin specification with default parser and converts
// result to requested unit.
func ParseMarginsIn(spec string, to common.Unit) (Margins, error) {
	return defaultParser.MarginsIn(spec, to)
}
