package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGradient  = "magma_r"
	DefaultTruncLo   = 0.15
	DefaultTruncHi   = 0.75
	DefaultLineWidth = 2.0
	DefaultMarginPct = 0.1
	DefaultCapStyle  = "butt"
	DefaultWidthIn   = 6.0
	DefaultHeightIn  = 4.0
)

// Render holds the figure rendering options. Zero values are filled from
// the defaults above, which reproduce the reference figures: reversed magma
// restricted to [0.15, 0.75], width-2 lines with butt caps, and a 10% axis
// margin.
type Render struct {
	Gradient  string  `yaml:"gradient"`
	TruncLo   float64 `yaml:"trunc_lo"`
	TruncHi   float64 `yaml:"trunc_hi"`
	LineWidth float64 `yaml:"line_width"`
	MarginPct float64 `yaml:"margin_pct"`
	CapStyle  string  `yaml:"cap_style"`
	WidthIn   float64 `yaml:"width_in"`
	HeightIn  float64 `yaml:"height_in"`
}

func DefaultRender() *Render {
	return &Render{
		Gradient:  DefaultGradient,
		TruncLo:   DefaultTruncLo,
		TruncHi:   DefaultTruncHi,
		LineWidth: DefaultLineWidth,
		MarginPct: DefaultMarginPct,
		CapStyle:  DefaultCapStyle,
		WidthIn:   DefaultWidthIn,
		HeightIn:  DefaultHeightIn,
	}
}

func Load(path string) (*Render, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultRender()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Render) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
