package measure

import "mapsheet/common"

// Size is a width and height pair in one unit.
type Size struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Units  common.Unit `yaml:"units"`
}

// ContentArea returns page area left after subtracting margins, in page
// units.
func (c Converter) ContentArea(page PageSize, m Margins) Size {
	return c.MarginedPageSize(page.Width, page.Height, page.Units, m)
}

// MarginedPageSize subtracts margins from page dimensions given in pageUnits.
// Percent margins are taken from the matching page dimension (top and bottom
// from height, left and right from width). Result is not clamped and may be
// negative.
func (c Converter) MarginedPageSize(width, height float64, pageUnits common.Unit, m Margins) Size {
	top, right, bottom, left := m.Top, m.Right, m.Bottom, m.Left

	switch {
	case m.Units == common.UnitPercent:
		top = height * m.Top * 0.01
		left = width * m.Left * 0.01
		bottom = height * m.Bottom * 0.01
		right = width * m.Right * 0.01
	case m.Units != pageUnits:
		top = c.Convert(top, m.Units, pageUnits)
		right = c.Convert(right, m.Units, pageUnits)
		bottom = c.Convert(bottom, m.Units, pageUnits)
		left = c.Convert(left, m.Units, pageUnits)
	}

	return Size{
		Width:  width - left - right,
		Height: height - top - bottom,
		Units:  pageUnits,
	}
}

// ContentArea computes content area with legacy millimeter factor.
func ContentArea(page PageSize, m Margins) Size {
	return Converter{}.ContentArea(page, m)
}
