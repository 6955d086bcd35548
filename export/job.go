// Package export prepares map document export jobs and hands them to an
// exporter back end.
package export

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mapsheet/common"
	"mapsheet/measure"
)

// Job is fully resolved export request.
type Job struct {
	ID       uuid.UUID        `yaml:"id"`
	Format   common.ExportFmt `yaml:"format"`
	Document string           `yaml:"document"`
	Output   string           `yaml:"output"`
	Page     measure.PageSize `yaml:"page"`
	Margins  measure.Margins  `yaml:"margins"`
	Content  measure.Size     `yaml:"content"`
	Frame    *Frame           `yaml:"frame,omitempty"`
	Options  Options          `yaml:"options"`
	Created  time.Time        `yaml:"created"`
}

// Backend performs actual export.
type Backend interface {
	Export(ctx context.Context, job *Job) error
}

// BackendFunc adapts function to Backend.
type BackendFunc func(ctx context.Context, job *Job) error

func (f BackendFunc) Export(ctx context.Context, job *Job) error {
	return f(ctx, job)
}

// Request is what caller asks to be exported.
type Request struct {
	// Document is path to the map document.
	Document string
	// Destination is output directory.
	Destination string
	// ProductDir holds product support files (colormap.xml). When empty
	// configured products path is used and then document directory.
	ProductDir string
	Format     common.ExportFmt
	Page       measure.PageSize
	Margins    measure.Margins
	Frames     []Frame
}
