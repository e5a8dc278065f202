package colormap

import "github.com/lucasb-eyer/go-colorful"

// Magma returns the matplotlib magma colormap, anchored at its deciles.
func Magma() *Gradient {
	return New("magma", fromHex(
		"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981",
		"#b73779", "#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf",
	))
}

// Viridis returns the matplotlib viridis colormap, anchored at its deciles.
func Viridis() *Gradient {
	return New("viridis", fromHex(
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
	))
}

// ByName resolves a gradient name. A "_r" suffix selects the reversed
// variant, as in matplotlib.
func ByName(name string) (*Gradient, error) {
	switch name {
	case "magma":
		return Magma(), nil
	case "magma_r":
		return Magma().Reversed(), nil
	case "viridis":
		return Viridis(), nil
	case "viridis_r":
		return Viridis().Reversed(), nil
	}
	return nil, ErrUnknownGradient
}

func fromHex(hexes ...string) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("colormap: bad hex stop " + h)
		}
		stops[i] = c
	}
	return stops
}
