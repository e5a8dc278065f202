// Package figure renders Van der Pol trajectory figures: a segment-based
// colored polyline plotter, caption derivation, and the phase/signal
// composer on top of gonum/plot.
package figure

import (
	"image/color"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/vdplot/internal/colormap"
)

// Cap styles for segment ends. Only the SVG exporter can express caps;
// the raster backend ignores them.
const (
	CapButt  = "butt"
	CapRound = "round"
)

// Options configure a ColoredLine. The zero value selects the defaults
// noted per field.
type Options struct {
	LineWidth     float64    // stroke width in points; default 2
	CapStyle      string     // CapButt or CapRound; default CapButt
	Label         string     // legend entry; empty for none
	GradientRange [2]float64 // gradient sub-range; default [0, 1]

	// Array is the legacy raw per-segment color override. It is always
	// replaced by the per-point color values; supplying it logs a warning.
	Array []float64
}

func (o Options) withDefaults() Options {
	if o.LineWidth == 0 {
		o.LineWidth = 2
	}
	if o.CapStyle == "" {
		o.CapStyle = CapButt
	}
	if o.GradientRange == [2]float64{} {
		o.GradientRange = [2]float64{0, 1}
	}
	return o
}

// point is a data-space coordinate.
type point struct{ X, Y float64 }

// Chain is one three-point sub-segment of a colored line:
// [midpoint i, point i, midpoint i+1].
type Chain [3]point

// ColoredLine draws a polyline whose color varies along the curve, one
// color value per point. It builds N three-point sub-segments through the
// N+1 midpoints of the input so that consecutive sub-segments share an
// endpoint exactly and no gap shows between differently colored strokes.
type ColoredLine struct {
	chains     []Chain
	colors     []float64
	cmin, cmax float64

	xmin, xmax float64
	ymin, ymax float64

	gradient *colormap.Gradient
	palette  []color.Color
	width    vg.Length
	capStyle string
	label    string
}

// NewColoredLine builds a colored line through the given points, with one
// color value per point. The gradient is truncated to opts.GradientRange
// and discretized into len(xs) steps before use.
func NewColoredLine(xs, ys, cs []float64, grad *colormap.Gradient, opts Options) (*ColoredLine, error) {
	if len(xs) != len(ys) || len(xs) != len(cs) {
		return nil, ErrDimensionMismatch
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	opts = opts.withDefaults()
	if opts.Array != nil {
		log.Printf("figure: the provided Array option is overridden by the per-point colors")
	}

	n := len(xs)
	trunc := colormap.Truncate(grad, opts.GradientRange[0], opts.GradientRange[1], n)

	cmin, cmax := minMax(cs)
	trunc.SetMin(cmin)
	trunc.SetMax(cmax)

	l := &ColoredLine{
		chains:   segmentChains(xs, ys),
		colors:   append([]float64(nil), cs...),
		cmin:     cmin,
		cmax:     cmax,
		gradient: trunc,
		palette:  trunc.Palette(n).Colors(),
		width:    vg.Points(opts.LineWidth),
		capStyle: opts.CapStyle,
		label:    opts.Label,
	}
	l.xmin, l.xmax = minMax(xs)
	l.ymin, l.ymax = minMax(ys)
	return l, nil
}

// segmentChains builds the N three-point sub-segments of the polyline.
// Consecutive chains share the connecting midpoint bit-for-bit.
func segmentChains(xs, ys []float64) []Chain {
	mx := midpoints(xs)
	my := midpoints(ys)

	chains := make([]Chain, len(xs))
	for i := range xs {
		chains[i] = Chain{
			{mx[i], my[i]},
			{xs[i], ys[i]},
			{mx[i+1], my[i+1]},
		}
	}
	return chains
}

// midpoints returns the N+1 midpoint coordinates of a sequence: the first
// value, the pairwise midpoints, and the last value.
func midpoints(v []float64) []float64 {
	m := make([]float64, len(v)+1)
	m[0] = v[0]
	for i := 1; i < len(v); i++ {
		m[i] = 0.5 * (v[i-1] + v[i])
	}
	m[len(v)] = v[len(v)-1]
	return m
}

// Chains returns the sub-segments of the line.
func (l *ColoredLine) Chains() []Chain { return l.chains }

// CapStyle returns the configured segment cap style.
func (l *ColoredLine) CapStyle() string { return l.capStyle }

// Label returns the configured legend label.
func (l *ColoredLine) Label() string { return l.label }

// ColorMap returns the truncated gradient bound to the line, with its data
// range set to the color value range. Suitable for a plotter.ColorBar.
func (l *ColoredLine) ColorMap() *colormap.Gradient { return l.gradient }

// SegmentColor returns the discretized color of sub-segment i.
func (l *ColoredLine) SegmentColor(i int) color.Color {
	return l.palette[l.colorIndex(l.colors[i])]
}

func (l *ColoredLine) colorIndex(c float64) int {
	n := len(l.palette)
	if l.cmax <= l.cmin {
		return 0
	}
	i := int((c - l.cmin) / (l.cmax - l.cmin) * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Plot implements plot.Plotter, stroking each sub-segment in its own color.
func (l *ColoredLine) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, ch := range l.chains {
		pts := make([]vg.Point, len(ch))
		for j, p := range ch {
			pts[j] = vg.Point{X: trX(p.X), Y: trY(p.Y)}
		}
		sty := draw.LineStyle{
			Color: l.SegmentColor(i),
			Width: l.width,
		}
		c.StrokeLines(sty, pts)
	}
}

// DataRange implements plot.DataRanger.
func (l *ColoredLine) DataRange() (xmin, xmax, ymin, ymax float64) {
	return l.xmin, l.xmax, l.ymin, l.ymax
}

// Thumbnail implements plot.Thumbnailer for legend entries, drawing a
// stroke in the gradient's middle color.
func (l *ColoredLine) Thumbnail(c *draw.Canvas) {
	sty := draw.LineStyle{
		Color: l.palette[len(l.palette)/2],
		Width: l.width,
	}
	y := c.Center().Y
	c.StrokeLine2(sty, c.Min.X, y, c.Max.X, y)
}

// expandLimits returns the data min/max widened by a symmetric margin of
// marginPct times the range. A degenerate constant sequence keeps the
// literal formula and yields a zero-width range.
func expandLimits(vals []float64, marginPct float64) (lo, hi float64) {
	lo, hi = minMax(vals)
	margin := marginPct * (hi - lo)
	return lo - margin, hi + margin
}

func minMax(vals []float64) (lo, hi float64) {
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
