package figure

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/vdplot/internal/trajectory"
)

func testRun() *trajectory.Run {
	return &trajectory.Run{
		X:        []float64{0, 1, 2, 1, 0},
		Xdot:     []float64{1, 0, -1, 0, 1},
		T:        []float64{0, 1, 2, 3, 4},
		Params:   map[string]float64{"mu": 1},
		Alpha:    1,
		Dt:       1,
		Duration: 4,
		NEval:    5,
		CompTime: 0.0042,
	}
}

func TestNewVdPPlotter(t *testing.T) {
	p, err := NewVdPPlotter(testRun(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if p.Title() != "dampened VdP Oscillator" {
		t.Errorf("unexpected title %q", p.Title())
	}
	if !strings.Contains(p.Subtitle(), "q = 5") {
		t.Errorf("unexpected subtitle %q", p.Subtitle())
	}
}

func TestNewVdPPlotter_Invalid(t *testing.T) {
	run := testRun()
	run.T = run.T[:3]

	_, err := NewVdPPlotter(run, nil)
	if !errors.Is(err, trajectory.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestPhase_WritesFile(t *testing.T) {
	p, err := NewVdPPlotter(testRun(), nil)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "phase.png")
	if err := p.Phase(path, false); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty phase figure")
	}
}

func TestSignal_WritesFile(t *testing.T) {
	p, err := NewVdPPlotter(testRun(), nil)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "signal.svg")
	if err := p.Signal(path, false); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("expected non-empty signal figure")
	}
}

func TestPhase_UnsupportedFormat(t *testing.T) {
	p, err := NewVdPPlotter(testRun(), nil)
	if err != nil {
		t.Fatal(err)
	}

	err = p.Phase(filepath.Join(t.TempDir(), "phase.bmp"), false)
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPhase_NoOutputNoShow(t *testing.T) {
	p, err := NewVdPPlotter(testRun(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// No save path and no show request is a no-op.
	if err := p.Phase("", false); err != nil {
		t.Fatal(err)
	}
	if len(p.pending) != 0 {
		t.Errorf("expected no pending figures, got %d", len(p.pending))
	}
}
