package trajectory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validRun() *Run {
	return &Run{
		X:        []float64{0, 1, 2},
		Xdot:     []float64{1, 0, -1},
		T:        []float64{0, 0.5, 1},
		Params:   map[string]float64{"mu": 1},
		Alpha:    1,
		Dt:       0.5,
		Duration: 1,
		NEval:    3,
		CompTime: 0.001,
	}
}

func TestValidate(t *testing.T) {
	if err := validRun().Validate(); err != nil {
		t.Errorf("expected valid run, got %v", err)
	}

	run := validRun()
	run.Xdot = run.Xdot[:2]
	if err := run.Validate(); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}

	run = validRun()
	run.X = run.X[:1]
	run.Xdot = run.Xdot[:1]
	run.T = run.T[:1]
	if err := run.Validate(); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}

	run = validRun()
	run.Params = map[string]float64{}
	if err := run.Validate(); !errors.Is(err, ErrMissingMu) {
		t.Errorf("expected ErrMissingMu, got %v", err)
	}
}

func TestForced(t *testing.T) {
	run := validRun()
	if run.Forced() {
		t.Error("run without forcing should not be forced")
	}

	run.Forcing = &Forcing{A: 0, Omega: 1}
	if run.Forced() {
		t.Error("zero amplitude should not count as forced")
	}

	run.Forcing = &Forcing{A: 2, Omega: 1}
	if !run.Forced() {
		t.Error("expected forced run")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	run := validRun()
	run.Forcing = &Forcing{A: 1.2, Omega: 3.4}

	if err := Save(path, run); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Len() != run.Len() {
		t.Errorf("expected %d samples, got %d", run.Len(), loaded.Len())
	}
	if loaded.Params["mu"] != 1 {
		t.Errorf("expected mu 1, got %v", loaded.Params["mu"])
	}
	if loaded.Forcing == nil || loaded.Forcing.A != 1.2 {
		t.Errorf("forcing not preserved: %+v", loaded.Forcing)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"x":[0],"xdot":[0],"t":[0],"params":{"mu":1}}`), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")

	if err := ExportCSV(path, validRun()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "t,x,xdot" {
		t.Errorf("unexpected header %q", lines[0])
	}
}
