package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	_ "image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/h2non/filetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	_ "golang.org/x/image/tiff"

	"mapsheet/common"
	"mapsheet/measure"
)

func proofJob(t *testing.T, format common.ExportFmt, page, margins string) *Job {
	t.Helper()
	p, err := measure.ParsePageSize(page)
	require.NoError(t, err)
	m, err := measure.ParseMargins(margins)
	require.NoError(t, err)

	job := &Job{
		Format:  format,
		Output:  filepath.Join(t.TempDir(), "_ags_World"+format.Ext()),
		Page:    p,
		Margins: m,
		Options: DefaultOptions(format),
	}
	job.Options.Resolution = 10
	return job
}

func readProof(t *testing.T, job *Job) ([]byte, image.Image) {
	t.Helper()
	data, err := os.ReadFile(ProofName(job.Output))
	require.NoError(t, err)
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return data, img
}

func gray(c color.Color) uint32 {
	r, _, _, _ := c.RGBA()
	return r >> 8
}

func TestProofName(t *testing.T) {
	assert.Equal(t, "/out/_ags_World.proof.jpg", ProofName("/out/_ags_World.jpg"))
	assert.Equal(t, "map.proof", ProofName("map"))
}

func TestProofWriter_TIFF(t *testing.T) {
	for _, format := range []common.ExportFmt{common.ExportFmtTiff, common.ExportFmtLayoutGeotiff} {
		t.Run(format.String(), func(t *testing.T) {
			job := proofJob(t, format, "CUSTOM PORTRAIT 10 20 INCHES", "1 2 3 4")
			require.NoError(t, ProofWriter{Log: zaptest.NewLogger(t)}.Export(context.Background(), job))

			data, img := readProof(t, job)
			assert.True(t, filetype.Is(data, "tif"), "proof must be TIFF")
			assert.Equal(t, image.Rect(0, 0, 100, 200), img.Bounds())

			// left margin 4in, top 1in, content 4x16 in
			assert.Equal(t, uint32(0xE0), gray(img.At(39, 50)), "left margin")
			assert.Equal(t, uint32(0xFF), gray(img.At(40, 10)), "content top left")
			assert.Equal(t, uint32(0xE0), gray(img.At(40, 9)), "top margin")
			assert.Equal(t, uint32(0xFF), gray(img.At(79, 169)), "content bottom right")
			assert.Equal(t, uint32(0xE0), gray(img.At(80, 169)), "right margin")
			assert.Equal(t, uint32(0xE0), gray(img.At(79, 170)), "bottom margin")
		})
	}
}

func TestProofWriter_JPEG(t *testing.T) {
	job := proofJob(t, common.ExportFmtJpeg, "CUSTOM PORTRAIT 254 127 MM", "10 PERCENT")
	w := ProofWriter{Conv: measure.Converter{Factor: common.MillimeterFactorExact}, Log: zaptest.NewLogger(t)}
	require.NoError(t, w.Export(context.Background(), job))

	data, img := readProof(t, job)
	assert.True(t, filetype.Is(data, "jpg"), "proof must be JPEG")
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())

	// JFIF APP0 with 10 pixels per inch
	require.Greater(t, len(data), 18)
	assert.Equal(t, []byte{0xFF, 0xE0}, data[2:4])
	assert.Equal(t, []byte("JFIF\x00"), data[6:11])
	assert.Equal(t, byte(1), data[13])
	assert.Equal(t, []byte{0, 10, 0, 10}, data[14:18])
}

func TestProofWriter_NoContent(t *testing.T) {
	job := proofJob(t, common.ExportFmtTiff, "CUSTOM PORTRAIT 2 2 INCHES", "1.5")
	require.NoError(t, ProofWriter{}.Export(context.Background(), job))

	_, img := readProof(t, job)
	assert.Equal(t, uint32(0xE0), gray(img.At(10, 10)))
}

func TestProofWriter_Skipped(t *testing.T) {
	for _, format := range []common.ExportFmt{common.ExportFmtPdf, common.ExportFmtMapPackage, common.ExportFmtProductionPdf} {
		job := proofJob(t, format, "LETTER PORTRAIT", "0.5")
		require.NoError(t, ProofWriter{}.Export(context.Background(), job))
		assert.NoFileExists(t, ProofName(job.Output))
	}
}

func TestProofWriter_Errors(t *testing.T) {
	t.Run("too large", func(t *testing.T) {
		job := proofJob(t, common.ExportFmtTiff, "A0 PORTRAIT", "1")
		job.Options.Resolution = 2400
		assert.Error(t, ProofWriter{}.Export(context.Background(), job))
	})

	t.Run("huge custom page", func(t *testing.T) {
		// pixel count would not fit into int
		job := proofJob(t, common.ExportFmtJpeg, "CUSTOM PORTRAIT 89478485.34 22369621.34 INCHES", "0")
		job.Options.Resolution = 96
		assert.NotPanics(t, func() {
			assert.Error(t, ProofWriter{}.Export(context.Background(), job))
		})
		assert.NoFileExists(t, ProofName(job.Output))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		job := proofJob(t, common.ExportFmtJpeg, "LETTER PORTRAIT", "0.5")
		assert.ErrorIs(t, ProofWriter{}.Export(ctx, job), context.Canceled)
	})
}

func TestBackends(t *testing.T) {
	first, second := &recordingBackend{}, &recordingBackend{}
	job := &Job{}
	require.NoError(t, Backends{first, second}.Export(context.Background(), job))
	assert.Len(t, first.jobs, 1)
	assert.Len(t, second.jobs, 1)

	failing := &recordingBackend{err: assert.AnError}
	third := &recordingBackend{}
	assert.ErrorIs(t, Backends{failing, third}.Export(context.Background(), job), assert.AnError)
	assert.Empty(t, third.jobs)
}
