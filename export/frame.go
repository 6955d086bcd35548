package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Extent is geographic extent of a data frame.
type Extent struct {
	XMin float64 `yaml:"xmin"`
	YMin float64 `yaml:"ymin"`
	XMax float64 `yaml:"xmax"`
	YMax float64 `yaml:"ymax"`
}

// Frame describes data frame element on the page layout. Width and Height are
// element dimensions in page units.
type Frame struct {
	Name   string  `yaml:"name"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Extent *Extent `yaml:"extent,omitempty"`
}

func (f Frame) area() float64 {
	return f.Width * f.Height
}

// ErrNoFrame is returned when no data frame can be selected.
var ErrNoFrame = errors.New("no usable data frame")

// LargestFrame returns frame with the greatest element area. First one wins
// on ties and frames without area are never selected.
func LargestFrame(frames []Frame) (Frame, error) {
	var (
		largest Frame
		area    float64
		found   bool
	)
	for _, f := range frames {
		if a := f.area(); a > area {
			largest, area, found = f, a, true
		}
	}
	if !found {
		return Frame{}, fmt.Errorf("%w among %d frame(s)", ErrNoFrame, len(frames))
	}
	return largest, nil
}

// ParseFrame parses "NAME:WIDTHxHEIGHT[@XMIN,YMIN,XMAX,YMAX]".
func ParseFrame(spec string) (Frame, error) {
	spec = strings.TrimSpace(spec)

	var extent string
	if i := strings.LastIndexByte(spec, '@'); i >= 0 {
		spec, extent = spec[:i], spec[i+1:]
	}

	i := strings.LastIndexByte(spec, ':')
	if i <= 0 {
		return Frame{}, fmt.Errorf("bad frame specification %q: name is missing", spec)
	}
	f := Frame{Name: spec[:i]}

	w, h, ok := strings.Cut(strings.ToLower(spec[i+1:]), "x")
	if !ok {
		return Frame{}, fmt.Errorf("bad frame specification %q: dimensions must be WIDTHxHEIGHT", spec)
	}
	var err error
	if f.Width, err = strconv.ParseFloat(w, 64); err != nil {
		return Frame{}, fmt.Errorf("bad frame width %q: %w", w, err)
	}
	if f.Height, err = strconv.ParseFloat(h, 64); err != nil {
		return Frame{}, fmt.Errorf("bad frame height %q: %w", h, err)
	}

	if len(extent) == 0 {
		return f, nil
	}
	parts := strings.Split(extent, ",")
	if len(parts) != 4 {
		return Frame{}, fmt.Errorf("bad frame extent %q: 4 values expected", extent)
	}
	var values [4]float64
	for n, p := range parts {
		if values[n], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return Frame{}, fmt.Errorf("bad frame extent %q: %w", extent, err)
		}
	}
	f.Extent = &Extent{XMin: values[0], YMin: values[1], XMax: values[2], YMax: values[3]}
	return f, nil
}
