package models

import "time"

// Interval is a half-open time span [Start, End). An event occupying
// [10:00, 11:00) does not collide with one starting exactly at 11:00.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End minus Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// IsValid reports whether the span has positive length.
func (iv Interval) IsValid() bool {
	return iv.End.After(iv.Start)
}

// Overlaps reports whether the two spans share any instant. Touching
// endpoints do not count as overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Contains reports whether other lies entirely within iv.
func (iv Interval) Contains(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}
