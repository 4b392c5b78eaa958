package models

import (
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day with minute precision, detached
// from any particular date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a 24-hour "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: use HH:MM", s)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ParseClockDuration parses an "HH:MM" duration string such as "01:30".
func ParseClockDuration(s string) (time.Duration, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid duration %q: use HH:MM", s)
	}
	if h < 0 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid duration %q: use HH:MM", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute, nil
}

// FormatClockDuration renders a duration as "HH:MM", the inverse of
// ParseClockDuration.
func FormatClockDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// On anchors the clock time to the calendar day of t in loc.
func (c ClockTime) On(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, loc)
}

// Minutes returns minutes elapsed since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c falls earlier in the day than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.Minutes() < other.Minutes()
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// DailyWindow bounds the portion of each day that is considered for
// scheduling, e.g. 07:00 to 20:00.
type DailyWindow struct {
	Start ClockTime
	End   ClockTime
}

// IsValid reports whether the window opens before it closes.
func (w DailyWindow) IsValid() bool {
	return w.Start.Before(w.End)
}

func (w DailyWindow) String() string {
	return w.Start.String() + " to " + w.End.String()
}
