package export

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/tiff"

	"mapsheet/common"
	"mapsheet/measure"
)

const (
	// ProofExt is inserted before format extension of proof image name.
	ProofExt = ".proof"

	defaultProofDPI = 96
	maxProofPixels  = 1 << 26
)

var (
	marginColor  = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	contentColor = color.White
)

// ProofWriter renders layout proof for raster exports: page with margins
// shaded and content area left blank, at export resolution. Other formats are
// skipped.
type ProofWriter struct {
	Conv measure.Converter
	Log  *zap.Logger
}

func (w ProofWriter) log() *zap.Logger {
	if w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}

// ProofName returns proof image file name for export output.
func ProofName(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ProofExt + ext
}

func (w ProofWriter) Export(ctx context.Context, job *Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch job.Format {
	case common.ExportFmtJpeg, common.ExportFmtTiff, common.ExportFmtLayoutGeotiff:
	default:
		w.log().Debug("No layout proof for format", zap.Stringer("format", job.Format))
		return nil
	}

	img, err := w.render(job)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if job.Format == common.ExportFmtJpeg {
		quality := 100
		if job.Options.Image != nil && job.Options.Image.Quality > 0 {
			quality = job.Options.Image.Quality
		}
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return fmt.Errorf("unable to encode layout proof: %w", err)
		}
		buf = setJpegDPI(buf, proofDPI(job))
	} else if err := tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true}); err != nil {
		return fmt.Errorf("unable to encode layout proof: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	name := ProofName(job.Output)
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to write layout proof: %w", err)
	}
	w.log().Debug("Layout proof written", zap.String("proof", name),
		zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
	return nil
}

func proofDPI(job *Job) int {
	if job.Options.Resolution > 0 {
		return job.Options.Resolution
	}
	return defaultProofDPI
}

// render draws page at export resolution.
func (w ProofWriter) render(job *Job) (image.Image, error) {
	page := job.Page
	if !page.Units.IsLength() {
		return nil, fmt.Errorf("unable to render layout proof: page units %s", page.Units)
	}
	dpi := float64(proofDPI(job))
	toPixels := func(v float64) int {
		return int(math.Round(w.Conv.Convert(v, page.Units, common.UnitInches) * dpi))
	}

	// bounds are checked before conversion to int, huge pages must not wrap
	pw := w.Conv.Convert(page.Width, page.Units, common.UnitInches) * dpi
	ph := w.Conv.Convert(page.Height, page.Units, common.UnitInches) * dpi
	if !(pw*ph <= maxProofPixels) {
		return nil, fmt.Errorf("unable to render layout proof: page is %.0fx%.0f pixels", pw, ph)
	}
	width, height := toPixels(page.Width), toPixels(page.Height)
	if width <= 0 || height <= 0 || width > maxProofPixels/height {
		return nil, fmt.Errorf("unable to render layout proof: page is %dx%d pixels", width, height)
	}
	img := imaging.New(width, height, marginColor)

	content := w.Conv.ContentArea(page, job.Margins)
	left, top := insets(w.Conv, page, job.Margins)
	cw, ch := toPixels(content.Width), toPixels(content.Height)
	if cw <= 0 || ch <= 0 {
		w.log().Warn("Margins leave no content area", zap.Stringer("page", page), zap.Stringer("margins", job.Margins))
		return img, nil
	}
	return imaging.Paste(img, imaging.New(cw, ch, contentColor), image.Pt(toPixels(left), toPixels(top))), nil
}

// insets returns left and top margins in page units.
func insets(conv measure.Converter, page measure.PageSize, m measure.Margins) (left, top float64) {
	only := measure.Margins{Left: m.Left, Top: m.Top, Units: m.Units}
	s := conv.MarginedPageSize(page.Width, page.Height, page.Units, only)
	return page.Width - s.Width, page.Height - s.Height
}

// setJpegDPI inserts JFIF APP0 segment with pixels per inch density unless
// image already has one. Standard encoder does not write it.
func setJpegDPI(buf *bytes.Buffer, dpi int) *bytes.Buffer {
	var (
		marker = []byte{0xFF, 0xE0}                               // APP0 segment marker
		jfif   = []byte{0x4A, 0x46, 0x49, 0x46, 0x00, 0x01, 0x02} // jfif + version
	)

	data := buf.Bytes()
	if len(data) < 4 || bytes.Equal(data[2:4], marker) {
		return buf
	}
	density := uint16(min(dpi, math.MaxUint16))

	out := new(bytes.Buffer)
	out.Write(data[:2])
	out.Write(marker)
	_ = binary.Write(out, binary.BigEndian, uint16(0x10)) // length
	out.Write(jfif)
	out.WriteByte(1) // pixels per inch
	_ = binary.Write(out, binary.BigEndian, density)
	_ = binary.Write(out, binary.BigEndian, density)
	_ = binary.Write(out, binary.BigEndian, uint16(0)) // no thumbnail
	out.Write(data[2:])
	return out
}

// Backends runs several back ends in order stopping on first failure.
type Backends []Backend

func (bs Backends) Export(ctx context.Context, job *Job) error {
	for _, b := range bs {
		if err := b.Export(ctx, job); err != nil {
			return err
		}
	}
	return nil
}
