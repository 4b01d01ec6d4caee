// Package events produces lazily generated event streams, the kind of single-pass
// iterable that the sequence matchers consume.
package events

import (
	"iter"
	"strings"
)

// Event is one entry of a deployment log.
type Event struct {
	Stage  string
	Status string
}

func (e Event) String() string {
	return e.Stage + ":" + e.Status
}

// Parse yields one Event per "stage:status" line of log, skipping blank lines.
// The log is scanned as the events are consumed.
func Parse(log string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for line := range strings.Lines(log) {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			stage, status, _ := strings.Cut(line, ":")
			if !yield(Event{Stage: stage, Status: status}) {
				return
			}
		}
	}
}
