// SPDX-License-Identifier: MIT
// Package: epinet/dataio
//
// series.go: simulation and sweep result writers (CSV or JSON).

package dataio

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/epinet/epidemic"
	"github.com/katalvlaran/epinet/sweep"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned for formats other than FormatCSV and FormatJSON.
var ErrUnknownFormat = errors.New("dataio: unknown format")

// Run is the self-describing record of one simulation.
type Run struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Seed      int64            `json:"seed"`
	Nodes     int              `json:"nodes"`
	Params    epidemic.Params  `json:"params"`
	Phase     string           `json:"phase"`
	Summary   epidemic.Summary `json:"summary"`
	Series    []float64        `json:"series"`
}

// NewRun stamps a Run with a fresh random ID and the current time.
func NewRun(seed int64, nodes int, p epidemic.Params, phase epidemic.Phase, series []float64) Run {
	return Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Seed:      seed,
		Nodes:     nodes,
		Params:    p,
		Phase:     phase.String(),
		Summary:   epidemic.Summarize(series),
		Series:    series,
	}
}

// WriteRun writes run in format. CSV holds only "step,infected_fraction"
// rows; JSON holds the full record.
func WriteRun(w io.Writer, run Run, format string) error {
	switch format {
	case FormatCSV:
		return WriteSeriesCSV(w, run.Series)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(run); err != nil {
			return fmt.Errorf("dataio: encode run: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("dataio: %q: %w", format, ErrUnknownFormat)
	}
}

// WriteSeriesCSV writes one "step,infected_fraction" row per element.
func WriteSeriesCSV(w io.Writer, series []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "infected_fraction"}); err != nil {
		return fmt.Errorf("dataio: write series: %w", err)
	}
	for i, v := range series {
		if err := cw.Write([]string{strconv.Itoa(i), formatFloat(v)}); err != nil {
			return fmt.Errorf("dataio: write series: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataio: write series: %w", err)
	}
	return nil
}

// ReadSeriesCSV parses what WriteSeriesCSV wrote.
func ReadSeriesCSV(r io.Reader) ([]float64, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataio: read series: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 2 {
			return nil, fmt.Errorf("dataio: series row %d: %w", i+1, ErrMalformedRecord)
		}
		v, perr := strconv.ParseFloat(row[1], 64)
		if perr != nil {
			return nil, fmt.Errorf("dataio: series row %d: %w", i+1, perr)
		}
		out = append(out, v)
	}
	return out, nil
}

// SweepReport is the JSON form of a sweep.
type SweepReport struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Seed      int64           `json:"seed"`
	Base      epidemic.Params `json:"base"`
	Points    []sweep.Result  `json:"points"`
}

// WriteSweep writes results in format. CSV holds one summary row per point;
// JSON holds the full report including mean series.
func WriteSweep(w io.Writer, seed int64, base epidemic.Params, results []sweep.Result, format string) error {
	switch format {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"h", "j", "replicates", "mean_peak", "mean_final", "mean_level"}); err != nil {
			return fmt.Errorf("dataio: write sweep: %w", err)
		}
		for _, r := range results {
			if err := cw.Write([]string{
				formatFloat(r.Point.H), formatFloat(r.Point.J), strconv.Itoa(r.Replicates),
				formatFloat(r.MeanPeak), formatFloat(r.MeanFinal), formatFloat(r.MeanLevel),
			}); err != nil {
				return fmt.Errorf("dataio: write sweep: %w", err)
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return fmt.Errorf("dataio: write sweep: %w", err)
		}
		return nil
	case FormatJSON:
		rep := SweepReport{ID: uuid.NewString(), CreatedAt: time.Now().UTC(), Seed: seed, Base: base, Points: results}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("dataio: encode sweep: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("dataio: %q: %w", format, ErrUnknownFormat)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
