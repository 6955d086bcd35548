package measure

import (
	"errors"
	"math"
	"strconv"

	"mapsheet/common"
)

const (
	// Inches per millimeter. The legacy value is what existing products were
	// produced with and what their callers compare against.
	legacyInchesPerMM = 0.03937
	exactInchesPerMM  = 1 / 25.4

	pointsPerInch = 72.0
)

// Converter converts lengths between units. Zero value uses legacy millimeter
// factor.
type Converter struct {
	Factor common.MillimeterFactor
}

func (c Converter) inchesPerMM() float64 {
	if c.Factor == common.MillimeterFactorExact {
		return exactInchesPerMM
	}
	return legacyInchesPerMM
}

// Convert converts value from one unit to another going through inches. Zero
// and same unit conversions return value unchanged. Percent is not a length:
// callers have to resolve it against page dimensions first, otherwise it is
// treated as millimeters on input and as points on output.
func (c Converter) Convert(value float64, from, to common.Unit) float64 {
	if value == 0 || from == to {
		return value
	}

	k := c.inchesPerMM()

	var factor float64
	switch from {
	case common.UnitInches:
		factor = 1
	case common.UnitCentimeters:
		factor = k * 10
	case common.UnitPoints:
		factor = 1 / pointsPerInch
	default:
		factor = k
	}
	inches := value * factor

	switch to {
	case common.UnitInches:
		return inches
	case common.UnitMillimeters:
		factor = 1 / k
	case common.UnitCentimeters:
		factor = 1 / (10 * k)
	default:
		factor = pointsPerInch
	}
	return inches * factor
}

// ConvertMargins returns margins expressed in requested unit. Percent margins
// are returned as is.
func (c Converter) ConvertMargins(m Margins, to common.Unit) Margins {
	if m.Units == common.UnitPercent || m.Units == to {
		return m
	}
	return Margins{
		Top:    c.Convert(m.Top, m.Units, to),
		Right:  c.Convert(m.Right, m.Units, to),
		Bottom: c.Convert(m.Bottom, m.Units, to),
		Left:   c.Convert(m.Left, m.Units, to),
		Units:  to,
	}
}

// Convert converts value between units using legacy millimeter factor.
func Convert(value float64, from, to common.Unit) float64 {
	return Converter{}.Convert(value, from, to)
}

var unitAliases = map[string]common.Unit{
	"INCHES":      common.UnitInches,
	"INCH":        common.UnitInches,
	"IN":          common.UnitInches,
	"MILLIMETERS": common.UnitMillimeters,
	"MILLIMETER":  common.UnitMillimeters,
	"MM":          common.UnitMillimeters,
	"CENTIMETERS": common.UnitCentimeters,
	"CENTIMETER":  common.UnitCentimeters,
	"CM":          common.UnitCentimeters,
	"POINTS":      common.UnitPoints,
	"POINT":       common.UnitPoints,
	"PT":          common.UnitPoints,
	"PERCENT":     common.UnitPercent,
	"%":           common.UnitPercent,
}

// LookupUnit returns unit for an upper case unit token.
func LookupUnit(token string) (common.Unit, bool) {
	u, ok := unitAliases[token]
	return u, ok
}

var errNotFinite = errors.New("value is not finite")

func parseNumber(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseUnit resolves unit token in any case, aliases included.
func ParseUnit(token string) (common.Unit, error) {
	tokens := tokenize(token)
	if len(tokens) != 1 {
		return 0, invalidArgument("bad unit specification %q", token)
	}
	u, ok := LookupUnit(tokens[0])
	if !ok {
		return 0, invalidArgument("unknown unit %q", token)
	}
	return u, nil
}
