package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapsheet/common"
)

func TestDefaultOptions(t *testing.T) {
	pdf := DefaultOptions(common.ExportFmtPdf)
	assert.Equal(t, PageLayout, pdf.Layout)
	assert.Equal(t, 640, pdf.Width)
	assert.Equal(t, 480, pdf.Height)
	assert.Equal(t, 300, pdf.Resolution)
	require.NotNil(t, pdf.PDF)
	assert.Equal(t, "BEST", pdf.PDF.ImageQuality)
	assert.Equal(t, "LAYERS_ONLY", pdf.PDF.LayersAttributes)
	assert.Equal(t, 80, pdf.PDF.JPEGCompressQuality)
	assert.True(t, pdf.PDF.EmbedFonts)
	assert.False(t, pdf.PDF.ConvertMarkers)
	assert.Nil(t, pdf.Image)

	jpeg := DefaultOptions(common.ExportFmtJpeg)
	assert.Equal(t, 96, jpeg.Resolution)
	require.NotNil(t, jpeg.Image)
	assert.Equal(t, 100, jpeg.Image.Quality)
	assert.Equal(t, "24-BIT_TRUE_COLOR", jpeg.Image.ColorMode)

	tiff := DefaultOptions(common.ExportFmtTiff)
	require.NotNil(t, tiff.Image)
	assert.Equal(t, "LZW", tiff.Image.Compression)

	geo := DefaultOptions(common.ExportFmtLayoutGeotiff)
	assert.Empty(t, geo.Layout)
	assert.Zero(t, geo.Width)

	mpk := DefaultOptions(common.ExportFmtMapPackage)
	require.NotNil(t, mpk.Package)
	assert.Equal(t, "NOT_REFERENCED", mpk.Package.ReferenceAllData)
	assert.Equal(t, "DESKTOP", mpk.Package.Runtime)

	for _, f := range []common.ExportFmt{common.ExportFmtProductionPdf, common.ExportFmtMultiPagePdf} {
		assert.NotNil(t, DefaultOptions(f).Production, f.String())
	}

	assert.Panics(t, func() { DefaultOptions(common.ExportFmt(100)) })
}

func TestStamp(t *testing.T) {
	ts := time.Date(2015, time.March, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "03072015_090503", Stamp(ts))
}
