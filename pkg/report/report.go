// Package report renders experiment results.
//
// Table is the stdout report: one header line, then one pipe-delimited line
// per workload, written as each workload finishes. CSV and JSON keep full
// precision for later analysis.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ja7ad/energystudy/pkg/experiment"
)

const tableHeader = "Workload | Time(s) | CPU(%) | Energy(J) | J/request"

// Table writes the text report.
type Table struct {
	w io.Writer
}

// NewTable writes the header line to w right away.
func NewTable(w io.Writer) (*Table, error) {
	if _, err := fmt.Fprintln(w, tableHeader); err != nil {
		return nil, err
	}
	return &Table{w: w}, nil
}

// Add writes one workload line.
func (t *Table) Add(a experiment.AggregateResult) error {
	_, err := fmt.Fprintf(t.w, "%-10s | %6.2f | %6.1f | %8.2f | %.6f\n",
		a.Workload, a.MeanElapsedSec, a.MeanCPUPercent, a.MeanEnergyJ, a.EnergyPerUnitJ)
	return err
}

// WriteProbe writes probe results, one line per workload.
func WriteProbe(w io.Writer, res []experiment.ProbeResult) error {
	for _, r := range res {
		if _, err := fmt.Fprintf(w, "%s | Time: %.2fs | CPU Usage: %.1f%%\n", r.Workload, r.ElapsedSec, r.CPUPercent); err != nil {
			return err
		}
	}
	return nil
}

// Create opens path for writing, creating parent directories.
func Create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return f, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
