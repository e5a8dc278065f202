package trajectory

import "errors"

// Domain errors for trajectory inputs.
var (
	// ErrLengthMismatch indicates the x, xdot and t sequences differ in length.
	ErrLengthMismatch = errors.New("trajectory: x, xdot and t must have equal length")

	// ErrTooShort indicates fewer than two samples; no segment can be formed.
	ErrTooShort = errors.New("trajectory: need at least two samples")

	// ErrMissingMu indicates the oscillator parameter map lacks "mu".
	ErrMissingMu = errors.New(`trajectory: params missing "mu"`)
)

// Forcing holds the sinusoidal driving term parameters.
type Forcing struct {
	A     float64 `json:"A"`
	Omega float64 `json:"omega"`
}

// Run bundles one simulated trajectory with its run metadata, as handed
// over by the simulation driver. All fields are set once and never mutated.
type Run struct {
	X        []float64          `json:"x"`
	Xdot     []float64          `json:"xdot"`
	T        []float64          `json:"t"`
	Params   map[string]float64 `json:"params"`
	Alpha    float64            `json:"alpha"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	NEval    int                `json:"n_eval"`
	CompTime float64            `json:"comp_time"`
	Forcing  *Forcing           `json:"forcing,omitempty"`
}

// Len returns the number of samples.
func (r *Run) Len() int { return len(r.T) }

// Forced reports whether a non-zero driving term is present.
func (r *Run) Forced() bool {
	return r.Forcing != nil && r.Forcing.A != 0
}

// Validate checks the index-alignment contract.
func (r *Run) Validate() error {
	if len(r.X) != len(r.Xdot) || len(r.X) != len(r.T) {
		return ErrLengthMismatch
	}
	if len(r.X) < 2 {
		return ErrTooShort
	}
	if _, ok := r.Params["mu"]; !ok {
		return ErrMissingMu
	}
	return nil
}
