package demo

import (
	"fmt"
	"time"

	"veil/internal/app/indicator"
)

// entry is one line of the recent events list
type entry struct {
	at   time.Time
	text string
}

// history keeps the most recent controller events, oldest first
type history struct {
	size    int
	entries []entry
	now     func() time.Time
}

func newHistory(size int) *history {
	return &history{size: size, now: time.Now}
}

// record is an indicator.Observer
func (h *history) record(e indicator.Event) {
	switch e.Type {
	case indicator.EventTaskStarted, indicator.EventTaskFinished:
		h.add(fmt.Sprintf("%s (count %d)", e.Type, e.Count))
	case indicator.EventDelayChanged:
		h.add(fmt.Sprintf("%s to %s", e.Type, e.Delay))
	case indicator.EventContractViolation:
		h.add(fmt.Sprintf("%s: %s", e.Type, e.Message))
	default:
		h.add(string(e.Type))
	}
}

func (h *history) add(text string) {
	h.entries = append(h.entries, entry{at: h.now(), text: text})

	if len(h.entries) > h.size {
		h.entries = h.entries[len(h.entries)-h.size:]
	}
}

// lines formats the entries with their wall-clock time
func (h *history) lines() []string {
	lines := make([]string, len(h.entries))
	for i, e := range h.entries {
		lines[i] = e.at.Format("15:04:05.000") + "  " + e.text
	}

	return lines
}
