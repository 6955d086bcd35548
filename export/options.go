package export

import "mapsheet/common"

// PageLayout is the layout name used when whole page is exported rather than
// a single data frame.
const PageLayout = "PAGE_LAYOUT"

// PDFOptions mirror vector PDF exporter parameters.
type PDFOptions struct {
	ImageQuality        string `yaml:"image_quality"`
	ColorSpace          string `yaml:"color_space"`
	CompressVectors     bool   `yaml:"compress_vectors"`
	ImageCompression    string `yaml:"image_compression"`
	PictureSymbol       string `yaml:"picture_symbol"`
	ConvertMarkers      bool   `yaml:"convert_markers"`
	EmbedFonts          bool   `yaml:"embed_fonts"`
	LayersAttributes    string `yaml:"layers_attributes"`
	GeoreferenceInfo    bool   `yaml:"georeference_info"`
	JPEGCompressQuality int    `yaml:"jpeg_compression_quality"`
}

// ImageOptions apply to raster formats.
type ImageOptions struct {
	WorldFile   bool   `yaml:"world_file"`
	ColorMode   string `yaml:"color_mode"`
	Quality     int    `yaml:"quality,omitempty"`
	Progressive bool   `yaml:"progressive"`
	Compression string `yaml:"compression,omitempty"`
}

// PackageOptions apply to map packages.
type PackageOptions struct {
	ConvertData         string `yaml:"convert_data"`
	ConvertArcSDEData   string `yaml:"convert_arcsde_data"`
	ApplyExtentToArcSDE string `yaml:"apply_extent_to_arcsde"`
	Runtime             string `yaml:"runtime"`
	ReferenceAllData    string `yaml:"reference_all_data"`
	Version             string `yaml:"version"`
}

// ProductionOptions apply to production and multi-page PDF.
type ProductionOptions struct {
	ColorMap string `yaml:"color_map"`
}

// Options hold exporter parameters. Only the group matching format is set.
type Options struct {
	Layout     string             `yaml:"layout,omitempty"`
	Width      int                `yaml:"width,omitempty"`
	Height     int                `yaml:"height,omitempty"`
	Resolution int                `yaml:"resolution,omitempty"`
	PDF        *PDFOptions        `yaml:"pdf,omitempty"`
	Image      *ImageOptions      `yaml:"image,omitempty"`
	Package    *PackageOptions    `yaml:"package,omitempty"`
	Production *ProductionOptions `yaml:"production,omitempty"`
}

// DefaultOptions returns exporter defaults for format.
func DefaultOptions(format common.ExportFmt) Options {
	switch format {
	case common.ExportFmtPdf:
		return Options{
			Layout: PageLayout, Width: 640, Height: 480, Resolution: 300,
			PDF: &PDFOptions{
				ImageQuality:        "BEST",
				ColorSpace:          "RGB",
				CompressVectors:     true,
				ImageCompression:    "ADAPTIVE",
				PictureSymbol:       "RASTERIZE_BITMAP",
				EmbedFonts:          true,
				LayersAttributes:    "LAYERS_ONLY",
				GeoreferenceInfo:    true,
				JPEGCompressQuality: 80,
			},
		}
	case common.ExportFmtJpeg:
		return Options{
			Layout: PageLayout, Width: 640, Height: 480, Resolution: 96,
			Image: &ImageOptions{ColorMode: "24-BIT_TRUE_COLOR", Quality: 100},
		}
	case common.ExportFmtTiff:
		return Options{
			Layout: PageLayout, Width: 640, Height: 480, Resolution: 96,
			Image: &ImageOptions{ColorMode: "24-BIT_TRUE_COLOR", Compression: "LZW"},
		}
	case common.ExportFmtLayoutGeotiff:
		// layout is the data frame name, set by dispatcher
		return Options{
			Resolution: 96,
			Image:      &ImageOptions{ColorMode: "24-BIT_TRUE_COLOR", Compression: "LZW"},
		}
	case common.ExportFmtMapPackage:
		return Options{
			Package: &PackageOptions{
				ConvertData:         "CONVERT",
				ConvertArcSDEData:   "CONVERT_ARCSDE",
				ApplyExtentToArcSDE: "ALL",
				Runtime:             "DESKTOP",
				ReferenceAllData:    "NOT_REFERENCED",
				Version:             "ALL",
			},
		}
	case common.ExportFmtProductionPdf, common.ExportFmtMultiPagePdf:
		return Options{Production: &ProductionOptions{}}
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// needsFrame reports whether format operates on a single data frame.
func needsFrame(format common.ExportFmt) bool {
	return format == common.ExportFmtMapPackage || format == common.ExportFmtLayoutGeotiff
}
