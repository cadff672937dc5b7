// SPDX-License-Identifier: MIT
// Package: epinet/progress
//
// bar.go: gradient terminal bar built on bubbles/progress, rendered
// statically with ViewAs (no bubbletea program loop).

package progress

import (
	"fmt"
	"io"

	bprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))
)

// Bar is a styled progress sink. It is not safe for concurrent use.
type Bar struct {
	w     io.Writer
	label string
	model bprogress.Model
}

// NewBar returns a Bar of the given cell width (≤ 0 selects
// DefaultBarLength) that prefixes every line with label.
func NewBar(w io.Writer, label string, width int) *Bar {
	if width <= 0 {
		width = DefaultBarLength
	}
	return &Bar{
		w:     w,
		label: label,
		model: bprogress.New(
			bprogress.WithDefaultGradient(),
			bprogress.WithWidth(width),
		),
	}
}

// Report renders the bar for current out of total; pass it to
// epidemic.WithProgress.
func (b *Bar) Report(current, total int) {
	line := fmt.Sprintf("\r%s %s %d/%d", labelStyle.Render(b.label), b.model.ViewAs(fraction(current, total)), current, total)
	_, _ = fmt.Fprint(b.w, line)
	if current >= total {
		_, _ = fmt.Fprintln(b.w, " "+doneStyle.Render("done"))
	}
}
