// Package measure parses page size and margin specifications used by map
// production scripts and converts lengths between measurement units.
//
// # Page size
//
// Page size specification is a whitespace separated string:
//
//	<ID> <ORIENTATION> [<WIDTH> <HEIGHT> [<UNIT>]]
//
//   - "A4 LANDSCAPE": standard size from the table below, landscape swaps
//     width and height, dimensions are in inches
//   - "CUSTOM PORTRAIT 10 20 CENTIMETERS": any identifier with explicit
//     dimensions is custom, unit defaults to inches
//
// Standard sizes (inches): LETTER 8.5x11, LEGAL 8.5x14, TABLOID 11x17,
// A5 5.83x8.27, A4 8.27x11.69, A3 11.69x16.54, A2 16.54x23.39, A1 23.39x33.11,
// A0 33.11x46.8, C 17x22, D 22x34, E 34x44.
//
// # Margins
//
// Margin specification follows CSS box shorthand with an optional trailing
// unit:
//
//	<n1> [n2] [n3] [n4] [unit]
//
//   - 1 value: all sides
//   - 2 values: top/bottom, right/left
//   - 3 values: top, right/left, bottom
//   - 4 values: top, right, bottom, left
//
// Units are inches, millimeters, centimeters, points and percent (percent of
// the corresponding page dimension, margins only). Short forms MM, CM, IN, PT
// and % are accepted. Unrecognized margin units resolve to inches unless the
// parser is told to reject them.
//
// # Conversion
//
// All conversions go through inches. By default millimeters use 0.03937
// inches per millimeter, the constant existing products were laid out with;
// [common.MillimeterFactorExact] switches to 1/25.4.
//
// # Usage
//
//	p := measure.NewParser(log, common.UnitFallbackInches, common.MillimeterFactorLegacy)
//	page, err := p.PageSize("A4 LANDSCAPE")
//	margins, err := p.MarginsIn("10 15 MM", page.Units)
//	content := p.Converter().ContentArea(page, margins)
package measure
