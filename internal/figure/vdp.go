package figure

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/vdplot/internal/colormap"
	"github.com/san-kum/vdplot/internal/config"
	"github.com/san-kum/vdplot/internal/trajectory"
)

// VdPPlotter renders the phase portrait and signal figures for one run.
// The captions are derived once at construction; instances are not safe
// for concurrent use because the underlying plot surfaces are not.
type VdPPlotter struct {
	run *trajectory.Run
	cfg *config.Render

	title    string
	subtitle string

	pending []string
}

// NewVdPPlotter validates the run and derives its captions. A nil cfg
// selects the defaults.
func NewVdPPlotter(run *trajectory.Run, cfg *config.Render) (*VdPPlotter, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultRender()
	}
	title, subtitle := Captions(run.Params, run.Alpha, run.Forcing, run.Duration, run.Dt, run.NEval)
	return &VdPPlotter{run: run, cfg: cfg, title: title, subtitle: subtitle}, nil
}

// Title returns the derived figure title.
func (v *VdPPlotter) Title() string { return v.title }

// Subtitle returns the derived parameter subtitle.
func (v *VdPPlotter) Subtitle() string { return v.subtitle }

// Phase renders the phase portrait (xdot over x, colored by time) with a
// color bar for the time axis. A non-empty savePath writes the figure
// there, with the format chosen by extension. When show is set the figure
// is also queued for Show; with no savePath it goes to a temporary file.
func (v *VdPPlotter) Phase(savePath string, show bool) error {
	grad, err := colormap.ByName(v.cfg.Gradient)
	if err != nil {
		return err
	}

	line, err := NewColoredLine(v.run.X, v.run.Xdot, v.run.T, grad, Options{
		LineWidth:     v.cfg.LineWidth,
		CapStyle:      v.cfg.CapStyle,
		GradientRange: [2]float64{v.cfg.TruncLo, v.cfg.TruncHi},
		Label:         fmt.Sprintf("Bernstein splines (%.4f s)", v.run.CompTime),
	})
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Phase portrait " + v.title + "\n" + v.subtitle
	p.X.Label.Text = "x"
	p.Y.Label.Text = "ẋ"
	p.Add(line)
	if line.Label() != "" {
		p.Legend.Add(line.Label(), line)
		p.Legend.Top = true
	}

	p.X.Min, p.X.Max = expandLimits(v.run.X, v.cfg.MarginPct)
	p.Y.Min, p.Y.Max = expandLimits(v.run.Xdot, v.cfg.MarginPct)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: line.ColorMap(), Vertical: true})
	bar.HideX()
	bar.Y.Label.Text = "t"

	w := vg.Length(v.cfg.WidthIn) * vg.Inch
	h := vg.Length(v.cfg.HeightIn) * vg.Inch
	barWidth := w / 5

	return v.write(savePath, show, "vdplot-phase-*.png", w, h, func(dc draw.Canvas) {
		p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
		bar.Draw(draw.Crop(dc, w-barWidth, 0, 0, 0))
	})
}

// Signal renders the two stacked time-domain traces (x over t above, xdot
// over t below) sharing the time axis label. Save/show behave as in Phase.
func (v *VdPPlotter) Signal(savePath string, show bool) error {
	top := plot.New()
	top.Title.Text = "Signal of " + v.title + "\n" + v.subtitle
	top.Y.Label.Text = "x"
	topLine, err := plotter.NewLine(xyPairs(v.run.T, v.run.X))
	if err != nil {
		return err
	}
	top.Add(topLine)

	bottom := plot.New()
	bottom.Y.Label.Text = "ẋ"
	bottom.X.Label.Text = "t"
	bottomLine, err := plotter.NewLine(xyPairs(v.run.T, v.run.Xdot))
	if err != nil {
		return err
	}
	bottom.Add(bottomLine)

	plots := [][]*plot.Plot{{top}, {bottom}}

	w := vg.Length(v.cfg.WidthIn) * vg.Inch
	h := vg.Length(v.cfg.HeightIn) * vg.Inch

	return v.write(savePath, show, "vdplot-signal-*.png", w, h, func(dc draw.Canvas) {
		canvases := plot.Align(plots, draw.Tiles{Rows: 2, Cols: 1}, dc)
		plots[0][0].Draw(canvases[0][0])
		plots[1][0].Draw(canvases[1][0])
	})
}

// Show opens every figure rendered with show set since the last call,
// delegating display to the OS file opener.
func (v *VdPPlotter) Show() error {
	for _, path := range v.pending {
		if err := openViewer(path); err != nil {
			return err
		}
	}
	v.pending = nil
	return nil
}

func (v *VdPPlotter) write(savePath string, show bool, tmpPattern string, w, h vg.Length, drawFn func(draw.Canvas)) error {
	path := savePath
	if path == "" {
		if !show {
			return nil
		}
		f, err := os.CreateTemp("", tmpPattern)
		if err != nil {
			return err
		}
		path = f.Name()
		f.Close()
	}

	if err := renderCanvas(path, w, h, drawFn); err != nil {
		return err
	}
	if show {
		v.pending = append(v.pending, path)
	}
	return nil
}

// renderCanvas draws onto a backend canvas chosen by the file extension
// and writes the result to path.
func renderCanvas(path string, w, h vg.Length, drawFn func(draw.Canvas)) error {
	var (
		wt io.WriterTo
		dc draw.Canvas
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		wt = vgimg.PngCanvas{Canvas: img}
	case ".jpg", ".jpeg":
		img := vgimg.New(w, h)
		dc = draw.New(img)
		wt = vgimg.JpegCanvas{Canvas: img}
	case ".svg":
		c := vgsvg.New(w, h)
		dc = draw.New(c)
		wt = c
	case ".pdf":
		c := vgpdf.New(w, h)
		dc = draw.New(c)
		wt = c
	default:
		return fmt.Errorf("figure: unsupported output format %q", filepath.Ext(path))
	}

	drawFn(dc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = wt.WriteTo(f)
	return err
}

func xyPairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
