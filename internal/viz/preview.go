package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vdplot/internal/trajectory"
)

// PhasePreview draws the phase portrait (xdot over x) on a braille canvas
// of w x h character cells, with a 10% margin around the data bounds.
func PhasePreview(run *trajectory.Run, w, h int) string {
	if run.Len() < 2 {
		return ""
	}

	minX, maxX := bounds(run.X)
	minY, maxY := bounds(run.Xdot)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	canvas := NewCanvas(w, h)
	pw := w*2 - 1
	ph := h*4 - 1

	toPx := func(x, y float64) (int, int) {
		px := int((x - minX) / rangeX * float64(pw))
		py := ph - int((y-minY)/rangeY*float64(ph))
		return px, py
	}

	x0, y0 := toPx(run.X[0], run.Xdot[0])
	for i := 1; i < run.Len(); i++ {
		x1, y1 := toPx(run.X[i], run.Xdot[i])
		canvas.DrawLine(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}

	return canvas.String()
}

// SignalPreview plots the x(t) and xdot(t) traces as stacked ascii graphs.
func SignalPreview(run *trajectory.Run, width, height int) string {
	xGraph := asciigraph.Plot(run.X,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("x(t)"),
	)
	xdotGraph := asciigraph.Plot(run.Xdot,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("ẋ(t)"),
	)
	return xGraph + "\n\n" + xdotGraph
}

func bounds(vals []float64) (lo, hi float64) {
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

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
