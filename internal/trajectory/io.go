package trajectory

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"
)

// Load reads a run from a JSON file written by the simulation driver.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	run := &Run{}
	if err := json.Unmarshal(data, run); err != nil {
		return nil, err
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return run, nil
}

// Save writes a run as indented JSON.
func Save(path string, run *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// ExportCSV writes the sample sequences as t,x,xdot rows.
func ExportCSV(path string, run *Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "xdot"}); err != nil {
		return err
	}
	for i := range run.T {
		row := []string{
			strconv.FormatFloat(run.T[i], 'g', -1, 64),
			strconv.FormatFloat(run.X[i], 'g', -1, 64),
			strconv.FormatFloat(run.Xdot[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
