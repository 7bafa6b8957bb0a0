package report

import (
	"encoding/json"
	"io"

	"github.com/ja7ad/energystudy/pkg/experiment"
)

// JSON streams aggregates as an indented JSON array. Close terminates the
// array; without it the output is not valid JSON.
type JSON struct {
	w io.Writer
	n int
}

func NewJSON(w io.Writer) (*JSON, error) {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return nil, err
	}
	return &JSON{w: w}, nil
}

func (j *JSON) Add(a experiment.AggregateResult) error {
	b, err := json.MarshalIndent(a, "  ", "  ")
	if err != nil {
		return err
	}
	if j.n > 0 {
		if _, err := io.WriteString(j.w, ",\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(j.w, "  "); err != nil {
		return err
	}
	if _, err := j.w.Write(b); err != nil {
		return err
	}
	j.n++
	return nil
}

func (j *JSON) Close() error {
	end := "]\n"
	if j.n > 0 {
		end = "\n]\n"
	}
	_, err := io.WriteString(j.w, end)
	return err
}
