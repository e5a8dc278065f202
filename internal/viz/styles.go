package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/vdplot/internal/trajectory"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))
)

// SummaryPanel renders the derived captions and run metadata as a styled
// terminal panel.
func SummaryPanel(title, subtitle string, run *trajectory.Run) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subtitleStyle.Render(subtitle) + "\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"samples", fmt.Sprintf("%d", run.Len())},
		{"alpha", fmt.Sprintf("%g", run.Alpha)},
		{"mu", fmt.Sprintf("%g", run.Params["mu"])},
		{"dt", fmt.Sprintf("%g", run.Dt)},
		{"duration", fmt.Sprintf("%g", run.Duration)},
		{"comp time", fmt.Sprintf("%.4f s", run.CompTime)},
	}
	if run.Forced() {
		rows = append(rows,
			struct{ label, value string }{"A", fmt.Sprintf("%g", run.Forcing.A)},
			struct{ label, value string }{"omega", fmt.Sprintf("%g", run.Forcing.Omega)},
		)
	}

	for _, r := range rows {
		b.WriteString(labelStyle.Render(pad(r.label, 10)) + " " + valueStyle.Render(r.value) + "\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
