package figure

import (
	"strings"
	"testing"

	"github.com/san-kum/vdplot/internal/trajectory"
)

func TestCaptions_Classical(t *testing.T) {
	title, subtitle := Captions(map[string]float64{"mu": 1}, 1, nil, 40, 0.01, 4000)

	if title != "dampened VdP Oscillator" {
		t.Errorf("expected title %q, got %q", "dampened VdP Oscillator", title)
	}
	if !strings.Contains(subtitle, "μ=1") {
		t.Errorf("subtitle missing mu: %q", subtitle)
	}
	if !strings.Contains(subtitle, "T = 40.0, h=0.01, q = 4000") {
		t.Errorf("subtitle missing run metadata: %q", subtitle)
	}
	if strings.Contains(subtitle, "α") || strings.Contains(subtitle, "A=") {
		t.Errorf("classical unforced subtitle should not mention alpha or A: %q", subtitle)
	}
}

func TestCaptions_Fractional(t *testing.T) {
	title, subtitle := Captions(map[string]float64{"mu": 1}, 0.5, &trajectory.Forcing{A: 0, Omega: 2}, 40, 0.01, 4000)

	if !strings.Contains(title, "fractionally") {
		t.Errorf("expected fractional title, got %q", title)
	}
	if strings.Contains(title, "forced") {
		t.Errorf("zero amplitude must not read as forced: %q", title)
	}
	if !strings.HasPrefix(subtitle, "α=0.5, ") {
		t.Errorf("subtitle should lead with alpha: %q", subtitle)
	}
}

func TestCaptions_Forced(t *testing.T) {
	title, subtitle := Captions(map[string]float64{"mu": 8.53}, 1, &trajectory.Forcing{A: 2, Omega: 1.0}, 40, 0.01, 4000)

	if title != "dampened forced VdP Oscillator" {
		t.Errorf("expected forced title, got %q", title)
	}
	if !strings.Contains(subtitle, ", A=2") {
		t.Errorf("subtitle missing amplitude: %q", subtitle)
	}
	if !strings.Contains(subtitle, "ω=1.0") {
		t.Errorf("subtitle missing angular frequency: %q", subtitle)
	}
}

func TestCaptions_ForcedFractional(t *testing.T) {
	title, _ := Captions(map[string]float64{"mu": 1}, 0.8, &trajectory.Forcing{A: 0.5, Omega: 3.14159}, 10, 0.05, 200)

	if title != "fractionally dampened forced VdP Oscillator" {
		t.Errorf("unexpected title %q", title)
	}
}

func TestCaptions_OmegaRounding(t *testing.T) {
	_, subtitle := Captions(map[string]float64{"mu": 1}, 1, &trajectory.Forcing{A: 1, Omega: 3.14159}, 10, 0.05, 200)

	if !strings.Contains(subtitle, "ω=3.14") {
		t.Errorf("expected omega rounded to 2 decimals: %q", subtitle)
	}
}

func TestDecimalFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{1.25, "1.25"},
		{40, "40.0"},
		{0.01, "0.01"},
		{-2.5, "-2.5"},
	}

	for _, tt := range tests {
		if got := decimalFloat(tt.in); got != tt.want {
			t.Errorf("decimalFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
