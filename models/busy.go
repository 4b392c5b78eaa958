package models

import "time"

// BusyEvent is a committed calendar event occupying time inside the
// search range. All-day events are filtered out before this point.
type BusyEvent struct {
	Summary  string    `json:"summary"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Calendar string    `json:"calendar"`
}

// Interval returns the span the event occupies.
func (e BusyEvent) Interval() Interval {
	return Interval{Start: e.Start, End: e.End}
}
