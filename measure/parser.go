package measure

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mapsheet/common"
)

// Parser parses page size and margin specifications. It holds no mutable
// state and may be shared.
type Parser struct {
	log      *zap.Logger
	fallback common.UnitFallback
	conv     Converter
}

// NewParser creates parser with requested unknown unit policy and millimeter
// factor.
func NewParser(log *zap.Logger, fallback common.UnitFallback, factor common.MillimeterFactor) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:      log.Named("measure"),
		fallback: fallback,
		conv:     Converter{Factor: factor},
	}
}

// Converter returns unit converter parser is using.
func (p *Parser) Converter() Converter {
	return p.conv
}

var defaultParser = NewParser(nil, common.UnitFallbackInches, common.MillimeterFactorLegacy)

// tokenize splits specification into upper case tokens. Caser is created for
// every call since it keeps state.
func tokenize(spec string) []string {
	fields := strings.Fields(spec)
	upper := cases.Upper(language.Und)
	for i, f := range fields {
		fields[i] = upper.String(f)
	}
	return fields
}

// resolveMarginUnit maps unit token to a known unit applying unknown unit
// policy.
func (p *Parser) resolveMarginUnit(token string) (common.Unit, error) {
	if u, ok := LookupUnit(token); ok {
		return u, nil
	}
	if p.fallback == common.UnitFallbackReject {
		return 0, invalidArgument("unknown margin unit %q", token)
	}
	p.log.Debug("Unknown margin unit, using inches", zap.String("unit", token))
	return common.UnitInches, nil
}
