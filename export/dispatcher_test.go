package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"mapsheet/common"
	"mapsheet/config"
	"mapsheet/measure"
)

type recordingBackend struct {
	jobs []*Job
	err  error
}

func (b *recordingBackend) Export(_ context.Context, job *Job) error {
	b.jobs = append(b.jobs, job)
	return b.err
}

var fixedNow = time.Date(2015, time.March, 7, 9, 5, 3, 0, time.UTC)

func newTestDispatcher(t *testing.T, cfg config.ExportConfig, backend Backend) *Dispatcher {
	t.Helper()
	d := NewDispatcher(&cfg, measure.Converter{}, backend, zaptest.NewLogger(t))
	d.now = func() time.Time { return fixedNow }
	return d
}

func letterRequest(t *testing.T, format common.ExportFmt) Request {
	t.Helper()
	page, err := measure.ParsePageSize("LETTER PORTRAIT")
	require.NoError(t, err)
	margins, err := measure.ParseMargins("0.5")
	require.NoError(t, err)
	return Request{
		Document:    filepath.Join(t.TempDir(), "World.mxd"),
		Destination: "/srv/out",
		Format:      format,
		Page:        page,
		Margins:     margins,
		Frames: []Frame{
			{Name: "Inset", Width: 2, Height: 2},
			{Name: "Layers", Width: 7.5, Height: 9},
		},
	}
}

func writeColorMap(t *testing.T, dir string, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ColorMapName), []byte(data), 0644))
}

func TestDispatcher_Names(t *testing.T) {
	tests := []struct {
		format common.ExportFmt
		want   string
	}{
		{common.ExportFmtPdf, "_ags_World.pdf"},
		{common.ExportFmtJpeg, "_ags_World.jpg"},
		{common.ExportFmtTiff, "_ags_World.tif"},
		{common.ExportFmtMapPackage, "_ags_World.mpk"},
		{common.ExportFmtLayoutGeotiff, "_ags_World.tif"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			backend := &recordingBackend{}
			name, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, tt.format))
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)

			require.Len(t, backend.jobs, 1)
			job := backend.jobs[0]
			assert.Equal(t, tt.format, job.Format)
			assert.Equal(t, filepath.Join("/srv/out", tt.want), job.Output)
			assert.Equal(t, fixedNow, job.Created)
			assert.Equal(t, uuid.Version(7), job.ID.Version(), "job id must be time ordered")
		})
	}
}

func TestDispatcher_Job(t *testing.T) {
	backend := &recordingBackend{}
	_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtPdf))
	require.NoError(t, err)

	job := backend.jobs[0]
	assert.Equal(t, measure.Size{Width: 7.5, Height: 10, Units: common.UnitInches}, job.Content)
	assert.Equal(t, DefaultOptions(common.ExportFmtPdf), job.Options)
	assert.Nil(t, job.Frame, "page layout export does not use frames")
}

func TestDispatcher_Frames(t *testing.T) {
	t.Run("map package", func(t *testing.T) {
		backend := &recordingBackend{}
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtMapPackage))
		require.NoError(t, err)

		job := backend.jobs[0]
		require.NotNil(t, job.Frame)
		assert.Equal(t, "Layers", job.Frame.Name)
		assert.Empty(t, job.Options.Layout)
	})

	t.Run("layout geotiff", func(t *testing.T) {
		backend := &recordingBackend{}
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtLayoutGeotiff))
		require.NoError(t, err)
		assert.Equal(t, "Layers", backend.jobs[0].Options.Layout)
	})

	t.Run("no frames", func(t *testing.T) {
		backend := &recordingBackend{}
		req := letterRequest(t, common.ExportFmtMapPackage)
		req.Frames = nil
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoFrame)
		assert.Empty(t, backend.jobs)
	})
}

func TestDispatcher_ProductionPDF(t *testing.T) {
	for _, format := range []common.ExportFmt{common.ExportFmtProductionPdf, common.ExportFmtMultiPagePdf} {
		t.Run(format.String(), func(t *testing.T) {
			products := t.TempDir()
			writeColorMap(t, products, `<?xml version="1.0"?><ColorMap><Rule from="CMYK" to="RGB"/><Rule from="Spot" to="RGB"/></ColorMap>`)

			backend := &recordingBackend{}
			req := letterRequest(t, format)
			req.ProductDir = products
			name, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "_ags_World.pdf", name)

			job := backend.jobs[0]
			assert.Equal(t, format, job.Format)
			require.NotNil(t, job.Options.Production)
			assert.Equal(t, filepath.Join(products, ColorMapName), job.Options.Production.ColorMap)
		})
	}
}

func TestDispatcher_ProductionPDF_LegacyEncoding(t *testing.T) {
	products := t.TempDir()
	writeColorMap(t, products, "<?xml version=\"1.0\" encoding=\"windows-1252\"?><ColorMap><Rule name=\"caf\xe9\"/></ColorMap>")

	backend := &recordingBackend{}
	_, err := newTestDispatcher(t, config.ExportConfig{ProductsPath: products}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtProductionPdf))
	require.NoError(t, err)
	assert.Equal(t, common.ExportFmtProductionPdf, backend.jobs[0].Format)
}

func TestDispatcher_ProductionPDF_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		colorMap string
	}{
		{"missing", ""},
		{"malformed", "<ColorMap><Rule></ColorMap>"},
		{"empty", "<?xml version=\"1.0\"?>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := t.TempDir()
			if len(tt.colorMap) > 0 {
				writeColorMap(t, products, tt.colorMap)
			}

			core, logs := observer.New(zapcore.DebugLevel)
			backend := &recordingBackend{}
			cfg := config.ExportConfig{ProductsPath: products}
			d := NewDispatcher(&cfg, measure.Converter{}, backend, zap.New(core))

			name, err := d.Run(context.Background(), letterRequest(t, common.ExportFmtProductionPdf))
			require.NoError(t, err)
			assert.Equal(t, "_ags_World.pdf", name)

			job := backend.jobs[0]
			assert.Equal(t, common.ExportFmtPdf, job.Format)
			assert.Equal(t, DefaultOptions(common.ExportFmtPdf), job.Options)
			assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len(), "fallback must be reported")
		})
	}
}

func TestDispatcher_ProductDirDefaultsToDocument(t *testing.T) {
	backend := &recordingBackend{}
	req := letterRequest(t, common.ExportFmtProductionPdf)
	writeColorMap(t, filepath.Dir(req.Document), "<ColorMap/>")

	_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, common.ExportFmtProductionPdf, backend.jobs[0].Format)
}

func TestDispatcher_Template(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.ExportConfig
		document string
		want     string
	}{
		{"sprig functions", config.ExportConfig{OutputNameTemplate: "{{ .Document | upper }}-{{ .Stamp }}"}, "World.mxd", "WORLD-03072015_090503.pdf"},
		{"page size", config.ExportConfig{OutputNameTemplate: "{{ .PageSize }}_{{ .Format }}"}, "World.mxd", "LETTER_pdf.pdf"},
		{"separators removed", config.ExportConfig{OutputNameTemplate: "maps/{{ .Document }}"}, "World.mxd", "mapsWorld.pdf"},
		{"parse error", config.ExportConfig{OutputNameTemplate: "{{ .Document "}, "World.mxd", "_ags_World.pdf"},
		{"execution error", config.ExportConfig{OutputNameTemplate: "{{ .Missing }}"}, "World.mxd", "_ags_World.pdf"},
		{"empty expansion", config.ExportConfig{OutputNameTemplate: "{{ if false }}x{{ end }}"}, "World.mxd", "_ags_World.pdf"},
		{"transliterated", config.ExportConfig{OutputNameTemplate: "{{ .Document }}", FileNameTransliterate: true}, "Карта мира.mxd", "karta-mira.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &recordingBackend{}
			req := letterRequest(t, common.ExportFmtPdf)
			req.Document = filepath.Join(filepath.Dir(req.Document), tt.document)

			name, err := newTestDispatcher(t, tt.cfg, backend).Run(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestDispatcher_JobIDInTemplate(t *testing.T) {
	backend := &recordingBackend{}
	name, err := newTestDispatcher(t, config.ExportConfig{OutputNameTemplate: "{{ .JobID }}"}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtJpeg))
	require.NoError(t, err)
	assert.Equal(t, backend.jobs[0].ID.String()+".jpg", name)
}

func TestDispatcher_Errors(t *testing.T) {
	t.Run("unsupported format", func(t *testing.T) {
		backend := &recordingBackend{}
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmt(42)))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Empty(t, backend.jobs)
	})

	t.Run("no document", func(t *testing.T) {
		req := letterRequest(t, common.ExportFmtPdf)
		req.Document = ""
		_, err := newTestDispatcher(t, config.ExportConfig{}, &recordingBackend{}).Run(context.Background(), req)
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		backend := &recordingBackend{}
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(ctx, letterRequest(t, common.ExportFmtPdf))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, backend.jobs)
	})

	t.Run("backend failure", func(t *testing.T) {
		errRender := errors.New("render failed")
		backend := &recordingBackend{err: errRender}
		_, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtTiff))
		require.ErrorIs(t, err, errRender)
		assert.Contains(t, err.Error(), backend.jobs[0].ID.String())
		assert.Contains(t, err.Error(), "tiff")
	})
}

func TestBackendFunc(t *testing.T) {
	var got *Job
	backend := BackendFunc(func(_ context.Context, job *Job) error {
		got = job
		return nil
	})
	name, err := newTestDispatcher(t, config.ExportConfig{}, backend).Run(context.Background(), letterRequest(t, common.ExportFmtJpeg))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, name, filepath.Base(got.Output))
}

func configForJournal() config.ExportConfig {
	return config.ExportConfig{OutputNameTemplate: "{{ .Document }}-{{ .JobID }}"}
}
