// Package report renders the outcome of a run: the single result line on
// stdout and, on request, a YAML summary with the run's diagnostics.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/specialistvlad/routecycle/internal/tracker"
	"gopkg.in/yaml.v3"
)

// NoCycle is printed when no graph contains a cycle.
const NoCycle = "no cycle found"

// WriteResult prints the canonical result line.
func WriteResult(w io.Writer, rec tracker.Record, found bool) error {
	line := NoCycle
	if found {
		line = rec.String()
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// Summary collects a run's diagnostics.
type Summary struct {
	RunID          string        `yaml:"run_id"`
	Inputs         []string      `yaml:"inputs"`
	Layout         string        `yaml:"layout"`
	Lines          int           `yaml:"lines"`
	Skipped        int           `yaml:"skipped"`
	Graphs         int           `yaml:"graphs"`
	Hops           int           `yaml:"hops"`
	Edges          int           `yaml:"edges"`
	GraphsSearched int           `yaml:"graphs_searched"`
	GraphsPruned   int           `yaml:"graphs_pruned"`
	Result         *Result       `yaml:"result"`
	Duration       time.Duration `yaml:"duration"`
}

// Result is the longest cycle in summary form; nil means none was found.
type Result struct {
	ClaimID    string `yaml:"claim_id"`
	StatusCode string `yaml:"status_code"`
	Length     int    `yaml:"length"`
}

// NewResult converts the tracker's answer for a Summary.
func NewResult(rec tracker.Record, found bool) *Result {
	if !found {
		return nil
	}
	return &Result{
		ClaimID:    rec.GraphID.ClaimID,
		StatusCode: rec.GraphID.StatusCode,
		Length:     rec.Length,
	}
}

// Encode writes s as YAML.
func (s *Summary) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

// WriteFile writes s as YAML to path.
func (s *Summary) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Encode(f)
}
