package models

import (
	"strings"
	"time"
)

// TimeOfDay is a coarse part-of-day bucket used in deadline phrases
// such as "by Friday evening".
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// DefaultTimeOfDayStarts maps each bucket to the wall-clock time at
// which it begins. Morning starts at midnight, so a morning deadline
// excludes the entire deadline day.
func DefaultTimeOfDayStarts() map[TimeOfDay]ClockTime {
	return map[TimeOfDay]ClockTime{
		Morning:   {Hour: 0, Minute: 0},
		Afternoon: {Hour: 12, Minute: 0},
		Evening:   {Hour: 18, Minute: 0},
		Night:     {Hour: 22, Minute: 0},
	}
}

// ParseTimeOfDay normalizes a bucket name. The second return is false
// for anything outside the four known buckets.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	switch b := TimeOfDay(strings.ToLower(strings.TrimSpace(s))); b {
	case Morning, Afternoon, Evening, Night:
		return b, true
	default:
		return "", false
	}
}

// Deadline is a day-of-week plus time-of-day cutoff, e.g. "Sunday
// morning". Work must finish before the named bucket begins.
type Deadline struct {
	Day       string    `json:"deadline_day"`
	TimeOfDay TimeOfDay `json:"deadline_time"`
}

// IsSet reports whether both halves of the constraint are present.
func (d Deadline) IsSet() bool {
	return d.Day != "" && d.TimeOfDay != ""
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NextOccurrence resolves the deadline's weekday to a concrete date
// strictly after now's day; naming today's weekday means next week.
// The result is midnight in now's location. The second return is false
// when the day name is unrecognized.
func (d Deadline) NextOccurrence(now time.Time) (time.Time, bool) {
	target, ok := weekdayNames[strings.ToLower(strings.TrimSpace(d.Day))]
	if !ok {
		return time.Time{}, false
	}
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.AddDate(0, 0, days), true
}
