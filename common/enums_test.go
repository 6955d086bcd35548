package common

import (
	"errors"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestParseExportFmtName(t *testing.T) {
	tests := []struct {
		name string
		want ExportFmt
	}{
		{"pdf", ExportFmtPdf},
		{"JPEG", ExportFmtJpeg},
		{"map-package", ExportFmtMapPackage},
		{"Map Package", ExportFmtMapPackage},
		{"MAP PACKAGE", ExportFmtMapPackage},
		{"Layout GeoTIFF", ExportFmtLayoutGeotiff},
		{"  layout \t geotiff ", ExportFmtLayoutGeotiff},
		{"Production PDF", ExportFmtProductionPdf},
		{"Multi-page PDF", ExportFmtMultiPagePdf},
		{"MULTI-PAGE PDF", ExportFmtMultiPagePdf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExportFmtName(tt.name)
			if err != nil {
				t.Fatalf("ParseExportFmtName(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseExportFmtName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	for _, name := range []string{"", "gif", "map_package", "map--package"} {
		if _, err := ParseExportFmtName(name); !errors.Is(err, ErrInvalidExportFmt) {
			t.Errorf("ParseExportFmtName(%q) error = %v, want ErrInvalidExportFmt", name, err)
		}
	}
}

func TestExportFmt_YAML(t *testing.T) {
	var v struct {
		Format ExportFmt `yaml:"format"`
	}
	if err := yaml.Unmarshal([]byte("format: Layout GeoTIFF\n"), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Format != ExportFmtLayoutGeotiff {
		t.Errorf("Format = %v, want layout-geotiff", v.Format)
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "format: layout-geotiff\n" {
		t.Errorf("Marshal() = %q", data)
	}

	if err := yaml.Unmarshal([]byte("format: gif\n"), &v); !errors.Is(err, ErrInvalidExportFmt) {
		t.Errorf("Unmarshal() error = %v, want ErrInvalidExportFmt", err)
	}
}
