package figure

import (
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/vdplot/internal/trajectory"
)

// Captions derives the figure title and parameter subtitle for a run.
//
// The title is "[fractionally ]dampened [forced ]VdP Oscillator": "forced"
// appears when a driving term with non-zero amplitude is present,
// "fractionally" when the derivative order alpha differs from 1. The
// subtitle lists alpha (fractional runs only), mu, the forcing amplitude
// and frequency (forced runs only), and the duration, step size and
// evaluation count.
func Captions(params map[string]float64, alpha float64, forcing *trajectory.Forcing, duration, dt float64, nEval int) (title, subtitle string) {
	forcingStr := ""
	forcingSettings := ""
	if forcing != nil && forcing.A != 0 {
		forcingStr = "forced "
		forcingSettings = ", A=" + compactFloat(forcing.A) +
			", ω=" + decimalFloat(round2(forcing.Omega))
	}

	fracStr := ""
	fracSettings := ""
	if alpha != 1 {
		fracStr = "fractionally "
		fracSettings = "α=" + compactFloat(alpha) + ", "
	}

	title = fracStr + "dampened " + forcingStr + "VdP Oscillator"
	subtitle = fracSettings + "μ=" + compactFloat(params["mu"]) + forcingSettings +
		". T = " + decimalFloat(round2(duration)) +
		", h=" + decimalFloat(round2(dt)) +
		", q = " + strconv.Itoa(nEval)

	return title, subtitle
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// compactFloat renders a value without trailing decimals: 2 -> "2",
// 2.5 -> "2.5".
func compactFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// decimalFloat renders a value rounded to two decimals, always keeping at
// least one decimal digit: 1 -> "1.0", 0.5 -> "0.5", 1.25 -> "1.25".
func decimalFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
