package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ja7ad/energystudy/pkg/experiment"
)

var csvHeader = []string{"workload", "iterations", "time_s", "cpu_pct", "energy_j", "j_per_request"}

// CSV writes one row per aggregate, flushed as it arrives.
type CSV struct {
	w *csv.Writer
}

// NewCSV writes the header row to w.
func NewCSV(w io.Writer) (*CSV, error) {
	c := &CSV{w: csv.NewWriter(w)}
	if err := c.write(csvHeader); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CSV) Add(a experiment.AggregateResult) error {
	return c.write([]string{
		a.Workload,
		strconv.Itoa(a.Iterations),
		fmtFloat(a.MeanElapsedSec),
		fmtFloat(a.MeanCPUPercent),
		fmtFloat(a.MeanEnergyJ),
		fmtFloat(a.EnergyPerUnitJ),
	})
}

func (c *CSV) write(rec []string) error {
	if err := c.w.Write(rec); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}
