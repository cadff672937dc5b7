// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// summary.go: scalar statistics over an infected-fraction series.

package epidemic

// Summary condenses a series. The zero value describes an empty series.
type Summary struct {
	Peak     float64 `json:"peak"`      // maximum fraction
	PeakStep int     `json:"peak_step"` // first step reaching Peak
	Final    float64 `json:"final"`     // last recorded fraction
	Mean     float64 `json:"mean"`      // arithmetic mean
}

// Summarize computes Summary for series in one pass.
func Summarize(series []float64) Summary {
	if len(series) == 0 {
		return Summary{}
	}

	out := Summary{Peak: series[0], Final: series[len(series)-1]}
	var sum float64
	for i, v := range series {
		sum += v
		if v > out.Peak {
			out.Peak = v
			out.PeakStep = i
		}
	}
	out.Mean = sum / float64(len(series))

	return out
}
