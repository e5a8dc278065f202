// Package viz renders terminal previews of oscillator runs: a braille
// phase portrait, asciigraph signal traces, and a styled run summary.
package viz
