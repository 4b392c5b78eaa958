package models

import "time"

// DateRange is an inclusive span of calendar days. Start and End are
// midnights in the range's location.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Single reports whether the range covers exactly one day.
func (r DateRange) Single() bool {
	return r.Start.Equal(r.End)
}

// Days lists every day in the range in chronological order.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	if r.Single() {
		return r.Start.Format("2006-01-02")
	}
	return r.Start.Format("2006-01-02") + " to " + r.End.Format("2006-01-02")
}
