package export

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/san-kum/vdplot/internal/figure"
)

// ColoredLineSVG converts a colored line to a standalone SVG document.
// Each sub-segment becomes one path with its own stroke color; the
// configured cap style is emitted as stroke-linecap so flush segment
// boundaries render without overlap. The view covers the data bounds
// expanded by marginPct on each side.
func ColoredLineSVG(line *figure.ColoredLine, width, height int, marginPct float64, strokeWidth float64) string {
	minX, maxX, minY, maxY := line.DataRange()

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * marginPct
	maxX += rangeX * marginPct
	minY -= rangeY * marginPct
	maxY += rangeY * marginPct
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="none" stroke-width="%.1f" stroke-linecap="%s">
`, width, height, width, height, strokeWidth, line.CapStyle()))

	toPx := func(x, y float64) (float64, float64) {
		px := (x - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)
		return px, py
	}

	for i, ch := range line.Chains() {
		x0, y0 := toPx(ch[0].X, ch[0].Y)
		x1, y1 := toPx(ch[1].X, ch[1].Y)
		x2, y2 := toPx(ch[2].X, ch[2].Y)
		sb.WriteString(fmt.Sprintf(`<path stroke="%s" d="M%.2f,%.2f L%.2f,%.2f L%.2f,%.2f"/>
`, hexColor(line.SegmentColor(i)), x0, y0, x1, y1, x2, y2))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// WriteColoredLineSVG writes the SVG document to path.
func WriteColoredLineSVG(path string, line *figure.ColoredLine, width, height int, marginPct float64, strokeWidth float64) error {
	svg := ColoredLineSVG(line, width, height, marginPct, strokeWidth)
	return os.WriteFile(path, []byte(svg), 0644)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
