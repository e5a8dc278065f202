// Package colormap provides named color gradients for trajectory plots.
//
// A Gradient maps a normalized position in [0, 1] to a color by linear
// interpolation between its stops. Gradients implement gonum/plot's
// palette.ColorMap so they can back a plotter.ColorBar directly.
package colormap

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

var (
	// ErrOutOfRange indicates a value outside the gradient's data range.
	ErrOutOfRange = errors.New("colormap: value outside [min, max]")

	// ErrUnknownGradient indicates an unregistered gradient name.
	ErrUnknownGradient = errors.New("colormap: unknown gradient name")
)

// Defaults for Truncate, matching the classic matplotlib recipe.
const (
	DefaultTruncMin   = 0.2
	DefaultTruncMax   = 0.8
	DefaultTruncSteps = 100
)

// Gradient is a named sequence of color stops, evenly spaced over [0, 1].
// The min/max fields carry the data range when the gradient is bound to a
// color bar; they do not affect Sample.
type Gradient struct {
	name  string
	stops []colorful.Color

	min, max float64
	alpha    float64
}

// New builds a gradient from evenly spaced stops.
func New(name string, stops []colorful.Color) *Gradient {
	return &Gradient{name: name, stops: stops, min: 0, max: 1, alpha: 1}
}

// Name returns the gradient's name.
func (g *Gradient) Name() string { return g.name }

// Steps returns the number of stops.
func (g *Gradient) Steps() int { return len(g.stops) }

// Sample returns the color at normalized position t, clamped to [0, 1].
// Interpolation is linear in RGB, like matplotlib's LinearSegmentedColormap.
func (g *Gradient) Sample(t float64) colorful.Color {
	if t <= 0 || len(g.stops) == 1 {
		return g.stops[0]
	}
	if t >= 1 {
		return g.stops[len(g.stops)-1]
	}

	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return g.stops[i]
	}
	return g.stops[i].BlendRgb(g.stops[i+1], frac)
}

// Reversed returns a new gradient with the stop order flipped, named after
// the source with a "_r" suffix.
func (g *Gradient) Reversed() *Gradient {
	stops := make([]colorful.Color, len(g.stops))
	for i, c := range g.stops {
		stops[len(stops)-1-i] = c
	}
	r := New(g.name+"_r", stops)
	r.min, r.max, r.alpha = g.min, g.max, g.alpha
	return r
}

// Truncate derives a gradient covering only the sub-interval
// [minval, maxval] of src, discretized into n stops. The result's name
// encodes the source name and bounds. src is not modified.
func Truncate(src *Gradient, minval, maxval float64, n int) *Gradient {
	stops := make([]colorful.Color, n)
	for i := range stops {
		t := minval
		if n > 1 {
			t = minval + (maxval-minval)*float64(i)/float64(n-1)
		}
		stops[i] = src.Sample(t)
	}
	g := New(fmt.Sprintf("trunc(%s,%.2f,%.2f)", src.name, minval, maxval), stops)
	g.min, g.max, g.alpha = src.min, src.max, src.alpha
	return g
}

// At implements palette.ColorMap. The value is normalized over [min, max]
// before sampling.
func (g *Gradient) At(v float64) (color.Color, error) {
	if v < g.min || v > g.max {
		return nil, ErrOutOfRange
	}
	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}
	c := g.Sample(t)
	r, gr, b := c.RGB255()
	return color.NRGBA{R: r, G: gr, B: b, A: uint8(g.alpha*255 + 0.5)}, nil
}

// Max implements palette.ColorMap.
func (g *Gradient) Max() float64 { return g.max }

// SetMax implements palette.ColorMap.
func (g *Gradient) SetMax(v float64) { g.max = v }

// Min implements palette.ColorMap.
func (g *Gradient) Min() float64 { return g.min }

// SetMin implements palette.ColorMap.
func (g *Gradient) SetMin(v float64) { g.min = v }

// Alpha implements palette.ColorMap.
func (g *Gradient) Alpha() float64 { return g.alpha }

// SetAlpha implements palette.ColorMap.
func (g *Gradient) SetAlpha(a float64) { g.alpha = a }

// Palette implements palette.ColorMap.
func (g *Gradient) Palette(colors int) palette.Palette {
	cs := make([]color.Color, colors)
	for i := range cs {
		t := 0.0
		if colors > 1 {
			t = float64(i) / float64(colors-1)
		}
		c := g.Sample(t)
		r, gr, b := c.RGB255()
		cs[i] = color.NRGBA{R: r, G: gr, B: b, A: uint8(g.alpha*255 + 0.5)}
	}
	return discrete(cs)
}

type discrete []color.Color

func (d discrete) Colors() []color.Color { return d }
