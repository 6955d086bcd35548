// Package common keeps enumerations shared between configuration, measurement
// parsing and export dispatch, so none of them has to import the others just
// to name a unit or a format.
package common

import (
	"strings"

	yaml "gopkg.in/yaml.v3"
)

//go:generate go tool go-enum --nocase --marshal --names

// Measurement unit of a page or margin dimension.
// ENUM(inches, millimeters, centimeters, points, percent)
type Unit int

// IsLength reports whether unit is an absolute length. Percent is relative to
// a page dimension and cannot be converted on its own.
func (u Unit) IsLength() bool {
	return u.IsValid() && u != UnitPercent
}

// Page orientation.
// ENUM(portrait, landscape)
type Orientation int

// Resolution policy for margin units nobody recognizes.
// ENUM(inches, reject)
type UnitFallback int

// Inches per millimeter used by the converter: legacy keeps 0.03937 for
// compatibility with existing products, exact uses 1/25.4.
// ENUM(legacy, exact)
type MillimeterFactor int

// Specification of requested export type.
// ENUM(pdf, jpeg, tiff, map-package, layout-geotiff, production-pdf, multi-page-pdf)
type ExportFmt int

// Ext returns output file extension for the format.
func (f ExportFmt) Ext() string {
	switch f {
	case ExportFmtPdf, ExportFmtProductionPdf, ExportFmtMultiPagePdf:
		return ".pdf"
	case ExportFmtJpeg:
		return ".jpg"
	case ExportFmtTiff, ExportFmtLayoutGeotiff:
		return ".tif"
	case ExportFmtMapPackage:
		return ".mpk"
	default:
		// this should never happen
		panic("unsupported export format requested")
	}
}

// ParseExportFmtName parses export format name the way it is usually spelled
// by people, "Map Package" and "Multi-page PDF" included.
func ParseExportFmtName(name string) (ExportFmt, error) {
	return ParseExportFmt(strings.Join(strings.Fields(name), "-"))
}

// UnmarshalYAML allows spelled out format names in configuration files.
func (f *ExportFmt) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	tmp, err := ParseExportFmtName(name)
	if err != nil {
		return err
	}
	*f = tmp
	return nil
}

// NeedsColorMap reports whether the format is rendered with product color
// mapping rules.
func (f ExportFmt) NeedsColorMap() bool {
	return f == ExportFmtProductionPdf || f == ExportFmtMultiPagePdf
}
