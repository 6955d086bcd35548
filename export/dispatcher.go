package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"mapsheet/common"
	"mapsheet/config"
	"mapsheet/measure"
)

// ErrUnsupportedFormat is returned for export types dispatcher does not know.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Dispatcher resolves export requests into jobs and runs them on back end.
type Dispatcher struct {
	cfg     *config.ExportConfig
	conv    measure.Converter
	backend Backend
	log     *zap.Logger
	now     func() time.Time
}

// NewDispatcher creates dispatcher handing jobs to backend. Nil logger is
// replaced with a no-op one.
func NewDispatcher(cfg *config.ExportConfig, conv measure.Converter, backend Backend, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		cfg:     cfg,
		conv:    conv,
		backend: backend,
		log:     log.Named("export"),
		now:     time.Now,
	}
}

// Run exports requested document and returns name of produced file.
func (d *Dispatcher) Run(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !req.Format.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, req.Format)
	}
	if len(req.Document) == 0 {
		return "", errors.New("no map document has been specified")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("unable to generate job id: %w", err)
	}

	job := &Job{
		ID:       id,
		Format:   req.Format,
		Document: req.Document,
		Page:     req.Page,
		Margins:  req.Margins,
		Content:  d.conv.ContentArea(req.Page, req.Margins),
		Created:  d.now(),
	}

	log := d.log.With(zap.Stringer("job", job.ID))

	job.Options = DefaultOptions(job.Format)
	if job.Format.NeedsColorMap() {
		rules := filepath.Join(d.productDir(req), ColorMapName)
		if count, err := readColorMap(rules); err != nil {
			log.Error("Color mapping rules are unusable, using standard PDF exporter with default settings",
				zap.String("rules", rules), zap.Error(err))
			job.Format = common.ExportFmtPdf
			job.Options = DefaultOptions(job.Format)
		} else {
			log.Debug("Using color mapping rules", zap.String("rules", rules), zap.Int("count", count))
			job.Options.Production.ColorMap = rules
		}
	}

	if needsFrame(job.Format) {
		frame, err := LargestFrame(req.Frames)
		if err != nil {
			return "", fmt.Errorf("%s export of %s: %w", job.Format, req.Document, err)
		}
		job.Frame = &frame
		if job.Format == common.ExportFmtLayoutGeotiff {
			job.Options.Layout = frame.Name
		}
	}

	name := d.outputName(job, log)
	job.Output = filepath.Join(req.Destination, name)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	log.Debug("Dispatching export", zap.Stringer("format", job.Format), zap.String("document", job.Document))
	if err := d.backend.Export(ctx, job); err != nil {
		return "", fmt.Errorf("export job %s (%s) failed: %w", job.ID, job.Format, err)
	}
	log.Info("Export completed", zap.Stringer("format", job.Format), zap.String("location", job.Output))
	return name, nil
}

func (d *Dispatcher) productDir(req Request) string {
	switch {
	case len(req.ProductDir) > 0:
		return req.ProductDir
	case len(d.cfg.ProductsPath) > 0:
		return d.cfg.ProductsPath
	default:
		return filepath.Dir(req.Document)
	}
}

// Values is a struct that holds variables we make available for output name
// template expansion.
type Values struct {
	Context  string
	Document string
	Format   string
	Stamp    string
	JobID    string
	PageSize string
}

func documentName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// outputName builds file name for the job: expanded template or default
// "_ags_" prefixed document name, optionally transliterated and always
// cleaned, followed by format extension.
func (d *Dispatcher) outputName(job *Job, log *zap.Logger) string {
	doc := documentName(job.Document)

	base := "_ags_" + doc
	if len(d.cfg.OutputNameTemplate) > 0 {
		expanded, err := expandTemplate(config.OutputNameTemplateFieldName, d.cfg.OutputNameTemplate, Values{
			Context:  string(config.OutputNameTemplateFieldName),
			Document: doc,
			Format:   job.Format.String(),
			Stamp:    Stamp(job.Created),
			JobID:    job.ID.String(),
			PageSize: job.Page.ID,
		})
		switch {
		case err != nil:
			log.Warn("Unable to prepare output filename", zap.Error(err))
		case len(strings.TrimSpace(expanded)) == 0:
			log.Warn("Output filename template expanded to nothing, using default name")
		default:
			base = expanded
		}
	}
	if d.cfg.FileNameTransliterate {
		base = slug.Make(base)
	}
	return config.CleanFileName(base) + job.Format.Ext()
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
