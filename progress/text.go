// SPDX-License-Identifier: MIT
// Package: epinet/progress
//
// text.go: plain ASCII completion bar.
//
// Format (barLength=10, 42.5%):
//
//	[===>------] 42.5% complete
//
// The head '>' sits at the last filled cell; at 0% it precedes the empty
// cells, so the bar is one cell longer than barLength.

package progress

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultBarLength is the number of cells used when callers pass ≤ 0.
const DefaultBarLength = 40

// Render formats one completion line for current out of total steps.
// total ≤ 0 renders as complete; current is clamped to [0,total].
func Render(current, total, barLength int) string {
	if barLength <= 0 {
		barLength = DefaultBarLength
	}
	frac := fraction(current, total)

	filled := int(float64(barLength) * frac)
	bar := strings.Repeat("=", max(filled-1, 0)) + ">" + strings.Repeat("-", barLength-filled)

	return fmt.Sprintf("[%s] %s%% complete", bar, formatPercent(frac))
}

// Text returns a progress sink that rewrites one terminal line on w and ends
// it with a newline once current reaches total.
func Text(w io.Writer, barLength int) func(current, total int) {
	return func(current, total int) {
		_, _ = fmt.Fprint(w, "\r"+Render(current, total, barLength))
		if current >= total {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func fraction(current, total int) float64 {
	if total <= 0 {
		return 1
	}
	current = min(max(current, 0), total)
	return float64(current) / float64(total)
}

// formatPercent rounds to two decimals and always keeps one fractional digit
// ("50.0", "42.5", "33.33").
func formatPercent(frac float64) string {
	p := math.Round(frac*10000) / 100
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
