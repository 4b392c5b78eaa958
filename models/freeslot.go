package models

import "time"

// FreeSlot is an open stretch inside the daily window, annotated with
// display fields for the frontend and for prompt consumption.
type FreeSlot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Day             string    `json:"day"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
}

// NewFreeSlot derives the display fields from a pair of instants.
func NewFreeSlot(start, end time.Time) FreeSlot {
	return FreeSlot{
		Start:           start,
		End:             end,
		DurationMinutes: int(end.Sub(start).Minutes()),
		Day:             start.Format("2006-01-02"),
		StartTime:       start.Format("15:04"),
		EndTime:         end.Format("15:04"),
	}
}

// Interval returns the open span.
func (s FreeSlot) Interval() Interval {
	return Interval{Start: s.Start, End: s.End}
}
