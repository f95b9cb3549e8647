package tasks

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"veil/internal/app/ui/components"
)

// Result is the outcome of one task
type Result struct {
	Task     string
	Duration time.Duration
	PeakRSS  uint64
	Err      error
}

// Summary is the outcome of one run
type Summary struct {
	RunID    string
	Duration time.Duration
	Results  []Result
}

// Failed returns the number of tasks that did not succeed
func (s *Summary) Failed() int {
	failed := 0

	for _, r := range s.Results {
		if r.Err != nil {
			failed++
		}
	}

	return failed
}

// Render writes one line per task followed by a totals line
func (s *Summary) Render(w io.Writer) {
	width := 0
	for _, r := range s.Results {
		if len(r.Task) > width {
			width = len(r.Task)
		}
	}

	for _, r := range s.Results {
		mem := "-"
		if r.PeakRSS > 0 {
			mem = humanize.Bytes(r.PeakRSS)
		}

		if r.Err != nil {
			fmt.Fprintf(w, "%s %-*s  %8s  %8s  %s\n",
				components.ErrorStyle.Render("✗"), width, r.Task, formatDuration(r.Duration), mem, components.ErrorStyle.Render(r.Err.Error()))

			continue
		}

		fmt.Fprintf(w, "%s %-*s  %8s  %8s\n",
			components.EndedStyle.Render("✓"), width, r.Task, formatDuration(r.Duration), mem)
	}

	status := components.EndedStyle.Render("ok")
	if failed := s.Failed(); failed > 0 {
		status = components.ErrorStyle.Render(fmt.Sprintf("%d failed", failed))
	}

	fmt.Fprintf(w, "%s in %s, %s (run %s)\n",
		english.Plural(len(s.Results), "task", ""), formatDuration(s.Duration), status, shortID(s.RunID))
}

// formatDuration rounds to a readable precision
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return d.Round(time.Second).String()
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
