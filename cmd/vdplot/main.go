package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/vdplot/internal/colormap"
	"github.com/san-kum/vdplot/internal/config"
	"github.com/san-kum/vdplot/internal/export"
	"github.com/san-kum/vdplot/internal/figure"
	"github.com/san-kum/vdplot/internal/trajectory"
	"github.com/san-kum/vdplot/internal/viz"
)

var (
	configFile string
	outPath    string
	show       bool
	gradient   string
	lineWidth  float64
	marginPct  float64
	// Terminal preview size
	previewWidth  int
	previewHeight int
	// Segment SVG size
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vdplot",
		Short: "diagnostic plots for Van der Pol oscillator runs",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "render config file path (yaml)")

	phaseCmd := &cobra.Command{
		Use:   "phase [run.json]",
		Short: "render the phase portrait",
		Args:  cobra.ExactArgs(1),
		RunE:  renderPhase,
	}
	phaseCmd.Flags().StringVar(&outPath, "out", "", "output file (.png, .svg, .pdf, .jpg)")
	phaseCmd.Flags().BoolVar(&show, "show", false, "open the figure in the system viewer")
	phaseCmd.Flags().StringVar(&gradient, "gradient", "", "gradient name (magma, magma_r, viridis, viridis_r)")
	phaseCmd.Flags().Float64Var(&lineWidth, "line-width", 0, "stroke width in points")
	phaseCmd.Flags().Float64Var(&marginPct, "margin", -1, "axis margin fraction")

	signalCmd := &cobra.Command{
		Use:   "signal [run.json]",
		Short: "render the time-domain signal traces",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSignal,
	}
	signalCmd.Flags().StringVar(&outPath, "out", "", "output file (.png, .svg, .pdf, .jpg)")
	signalCmd.Flags().BoolVar(&show, "show", false, "open the figure in the system viewer")

	svgCmd := &cobra.Command{
		Use:   "svg [run.json]",
		Short: "export the colored phase curve as raw SVG segments",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&outPath, "out", "phase.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width in pixels")
	svgCmd.Flags().IntVar(&svgHeight, "height", 600, "image height in pixels")

	previewCmd := &cobra.Command{
		Use:   "preview [run.json]",
		Short: "terminal preview of phase portrait and signals",
		Args:  cobra.ExactArgs(1),
		RunE:  previewRun,
	}
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "preview width in characters")
	previewCmd.Flags().IntVar(&previewHeight, "height", 20, "preview height in rows")

	infoCmd := &cobra.Command{
		Use:   "info [run.json]",
		Short: "show run metadata and derived captions",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run.json]",
		Short: "export the sample sequences to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "run.csv", "output file")

	configInitCmd := &cobra.Command{
		Use:   "config-init [path]",
		Short: "write the default render config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultRender())
		},
	}

	rootCmd.AddCommand(phaseCmd, signalCmd, svgCmd, previewCmd, infoCmd, exportCSVCmd, configInitCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadAll(runPath string) (*trajectory.Run, *config.Render, error) {
	run, err := trajectory.Load(runPath)
	if err != nil {
		return nil, nil, err
	}

	cfg := config.DefaultRender()
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
	}
	if gradient != "" {
		cfg.Gradient = gradient
	}
	if lineWidth > 0 {
		cfg.LineWidth = lineWidth
	}
	if marginPct >= 0 {
		cfg.MarginPct = marginPct
	}
	return run, cfg, nil
}

func renderPhase(cmd *cobra.Command, args []string) error {
	run, cfg, err := loadAll(args[0])
	if err != nil {
		return err
	}
	p, err := figure.NewVdPPlotter(run, cfg)
	if err != nil {
		return err
	}
	if err := p.Phase(outPath, show); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("wrote %s\n", outPath)
	}
	return p.Show()
}

func renderSignal(cmd *cobra.Command, args []string) error {
	run, cfg, err := loadAll(args[0])
	if err != nil {
		return err
	}
	p, err := figure.NewVdPPlotter(run, cfg)
	if err != nil {
		return err
	}
	if err := p.Signal(outPath, show); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("wrote %s\n", outPath)
	}
	return p.Show()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	run, cfg, err := loadAll(args[0])
	if err != nil {
		return err
	}
	grad, err := colormap.ByName(cfg.Gradient)
	if err != nil {
		return err
	}
	line, err := figure.NewColoredLine(run.X, run.Xdot, run.T, grad, figure.Options{
		LineWidth:     cfg.LineWidth,
		CapStyle:      cfg.CapStyle,
		GradientRange: [2]float64{cfg.TruncLo, cfg.TruncHi},
	})
	if err != nil {
		return err
	}
	if err := export.WriteColoredLineSVG(outPath, line, svgWidth, svgHeight, cfg.MarginPct, cfg.LineWidth); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func previewRun(cmd *cobra.Command, args []string) error {
	run, _, err := loadAll(args[0])
	if err != nil {
		return err
	}
	title, subtitle := figure.Captions(run.Params, run.Alpha, run.Forcing, run.Duration, run.Dt, run.NEval)

	fmt.Println(viz.SummaryPanel(title, subtitle, run))
	fmt.Println()
	fmt.Println(viz.PhasePreview(run, previewWidth, previewHeight))
	fmt.Println(viz.SignalPreview(run, previewWidth, previewHeight/2))
	return nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	run, _, err := loadAll(args[0])
	if err != nil {
		return err
	}
	title, subtitle := figure.Captions(run.Params, run.Alpha, run.Forcing, run.Duration, run.Dt, run.NEval)
	fmt.Println(viz.SummaryPanel(title, subtitle, run))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	run, _, err := loadAll(args[0])
	if err != nil {
		return err
	}
	if err := trajectory.ExportCSV(outPath, run); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}
