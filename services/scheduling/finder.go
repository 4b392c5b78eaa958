package scheduling

import (
	"sort"
	"strings"
	"time"

	"tempora/models"
)

// ParseDateRange parses "YYYY-MM-DD" or "YYYY-MM-DD to YYYY-MM-DD" into
// an inclusive day range anchored at midnight in loc.
func ParseDateRange(s string, loc *time.Location) (models.DateRange, error) {
	startStr := strings.TrimSpace(s)
	endStr := startStr
	if strings.Contains(startStr, " to ") {
		parts := strings.SplitN(startStr, " to ", 2)
		startStr = strings.TrimSpace(parts[0])
		endStr = strings.TrimSpace(parts[1])
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, loc)
	if err != nil {
		return models.DateRange{}, NewValidationError("date_range", "use 'YYYY-MM-DD' or 'YYYY-MM-DD to YYYY-MM-DD'")
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, loc)
	if err != nil {
		return models.DateRange{}, NewValidationError("date_range", "use 'YYYY-MM-DD' or 'YYYY-MM-DD to YYYY-MM-DD'")
	}
	if start.After(end) {
		return models.DateRange{}, NewValidationError("date_range", "start date cannot be after end date")
	}
	return models.DateRange{Start: start, End: end}, nil
}

// ComputeFreeSlots sweeps each day of the range and returns the open
// stretches inside the daily window, in chronological order. Events are
// clipped to the window, merged when they touch or overlap, and the
// gaps between them become free slots. On the current day the sweep
// starts at now rather than at the window open.
func ComputeFreeSlots(rng models.DateRange, window models.DailyWindow, events []models.BusyEvent, now time.Time, loc *time.Location) ([]models.FreeSlot, error) {
	if loc == nil {
		return nil, NewConfigurationError("timezone", "location is required")
	}
	if !window.IsValid() {
		return nil, NewConfigurationError("daily_window", "start_time must be before end_time")
	}
	if rng.Start.IsZero() || rng.End.IsZero() {
		return nil, NewValidationError("date_range", "range is empty")
	}
	if rng.Start.After(rng.End) {
		return nil, NewValidationError("date_range", "start date cannot be after end date")
	}

	slots := make([]models.FreeSlot, 0)
	for _, day := range rng.Days() {
		for _, iv := range freeIntervalsForDay(day, window, events, now, loc) {
			slots = append(slots, models.NewFreeSlot(iv.Start, iv.End))
		}
	}
	return slots, nil
}

// freeIntervalsForDay computes the gaps between merged busy intervals
// within one day's window.
func freeIntervalsForDay(day time.Time, window models.DailyWindow, events []models.BusyEvent, now time.Time, loc *time.Location) []models.Interval {
	dayStart := window.Start.On(day, loc)
	dayEnd := window.End.On(day, loc)

	pointer := dayStart
	if current := now.In(loc); sameDay(day, current) {
		if current.After(pointer) {
			pointer = current
		}
		if !pointer.Before(dayEnd) {
			return nil
		}
	}

	var busy []models.Interval
	for _, ev := range events {
		start := ev.Start.In(loc)
		end := ev.End.In(loc)
		if !end.After(dayStart) || !start.Before(dayEnd) {
			continue
		}
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !end.After(start) {
			continue
		}
		busy = append(busy, models.Interval{Start: start, End: end})
	}

	sort.Slice(busy, func(i, j int) bool {
		return busy[i].Start.Before(busy[j].Start)
	})

	var merged []models.Interval
	for _, iv := range busy {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}

	var free []models.Interval
	for _, iv := range merged {
		if pointer.Before(iv.Start) {
			free = append(free, models.Interval{Start: pointer, End: iv.Start})
		}
		if iv.End.After(pointer) {
			pointer = iv.End
		}
	}
	if pointer.Before(dayEnd) {
		free = append(free, models.Interval{Start: pointer, End: dayEnd})
	}
	return free
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
