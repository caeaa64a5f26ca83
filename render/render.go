// Package render draws a reduced curve over its original, to see at a glance
// what the reduction kept.
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/datareduce/advanced"
	"github.com/pkg/errors"
)

type Options struct {
	Width, Height int
	// Space around the plot, in pixels
	Padding float64
	// Radius of the markers on the reduced points. Zero hides them.
	MarkerRadius float64

	Background, Original, Reduced color.Color
}

func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Padding:      30,
		MarkerRadius: 3,
		Background:   color.White,
		Original:     color.RGBA{0x1f, 0x77, 0xb4, 0xff},
		Reduced:      color.RGBA{0xff, 0x7f, 0x0e, 0xb3},
	}
}

// Maps data coordinates onto the canvas, y up.
type viewport struct {
	minX, minY   float64
	scaleX       float64
	scaleY       float64
	padding      float64
	canvasHeight float64
}

func newViewport(points advanced.Sequence, options Options) viewport {
	min, max := points.Bounds()
	if len(points) == 0 {
		min, max = advanced.Point{}, advanced.Point{X: 1, Y: 1}
	}
	// A flat curve still needs a non-zero extent
	spanX := math.Max(max.X-min.X, 1e-9)
	spanY := math.Max(max.Y-min.Y, 1e-9)
	innerWidth := float64(options.Width) - 2*options.Padding
	innerHeight := float64(options.Height) - 2*options.Padding
	return viewport{
		minX:         min.X,
		minY:         min.Y,
		scaleX:       innerWidth / spanX,
		scaleY:       innerHeight / spanY,
		padding:      options.Padding,
		canvasHeight: float64(options.Height),
	}
}

func (v viewport) project(p advanced.Point) (x, y float64) {
	x = v.padding + (p.X-v.minX)*v.scaleX
	y = v.canvasHeight - v.padding - (p.Y-v.minY)*v.scaleY
	return x, y
}

// Overlay draws original as a line and reduced as a line with markers, both
// fitted to the original's bounds.
func Overlay(original, reduced advanced.Sequence, options Options) (*gg.Context, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", options.Width, options.Height)
	}
	if 2*options.Padding >= math.Min(float64(options.Width), float64(options.Height)) {
		return nil, errors.Errorf("padding %g leaves no room on a %dx%d canvas", options.Padding, options.Width, options.Height)
	}

	c := gg.NewContext(options.Width, options.Height)
	c.SetColor(options.Background)
	c.DrawRectangle(0, 0, float64(options.Width), float64(options.Height))
	c.Fill()

	v := newViewport(original, options)

	c.SetLineWidth(1.5)
	c.SetColor(options.Original)
	drawLine(c, v, original)
	c.Stroke()

	c.SetLineWidth(2)
	c.SetColor(options.Reduced)
	drawLine(c, v, reduced)
	c.Stroke()

	if options.MarkerRadius > 0 {
		for _, p := range reduced {
			x, y := v.project(p)
			c.DrawCircle(x, y, options.MarkerRadius)
			c.Fill()
		}
	}
	return c, nil
}

func drawLine(c *gg.Context, v viewport, points advanced.Sequence) {
	for i, p := range points {
		x, y := v.project(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
}

func EncodePNG(w io.Writer, original, reduced advanced.Sequence, options Options) error {
	c, err := Overlay(original, reduced, options)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func SavePNG(path string, original, reduced advanced.Sequence, options Options) error {
	c, err := Overlay(original, reduced, options)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Cat prints a saved image inline to w, for terminals that support it (iTerm).
func Cat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
