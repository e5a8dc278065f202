package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/vdplot/internal/colormap"
	"github.com/san-kum/vdplot/internal/figure"
)

func testLine(t *testing.T, opts figure.Options) *figure.ColoredLine {
	t.Helper()
	line, err := figure.NewColoredLine(
		[]float64{0, 1, 2, 1, 0},
		[]float64{1, 0, -1, 0, 1},
		[]float64{0, 1, 2, 3, 4},
		colormap.Magma().Reversed(),
		opts,
	)
	if err != nil {
		t.Fatal(err)
	}
	return line
}

func TestColoredLineSVG(t *testing.T) {
	svg := ColoredLineSVG(testLine(t, figure.Options{}), 800, 600, 0.1, 2)

	if !strings.Contains(svg, `stroke-linecap="butt"`) {
		t.Error("expected butt linecap by default")
	}
	if got := strings.Count(svg, "<path"); got != 5 {
		t.Errorf("expected 5 paths, got %d", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 800 600"`) {
		t.Error("missing viewBox")
	}
}

func TestColoredLineSVG_RoundCap(t *testing.T) {
	svg := ColoredLineSVG(testLine(t, figure.Options{CapStyle: figure.CapRound}), 400, 300, 0.1, 2)

	if !strings.Contains(svg, `stroke-linecap="round"`) {
		t.Error("expected round linecap")
	}
}

func TestWriteColoredLineSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phase.svg")

	if err := WriteColoredLineSVG(path, testLine(t, figure.Options{}), 400, 300, 0.1, 2); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("expected XML header")
	}
}
