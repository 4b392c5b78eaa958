package scheduling

import (
	"fmt"
	"time"

	"tempora/models"
)

// DeadlineCutoff is a deadline resolved to a concrete calendar day.
// Date is midnight of the deadline day; TimeOfDay names the bucket
// that closes it.
type DeadlineCutoff struct {
	Date      time.Time
	TimeOfDay models.TimeOfDay
}

// Constraints bound what a candidate slot must satisfy to survive
// screening. MinDuration and MaxDuration must be positive with
// MinDuration <= MaxDuration. A nil Deadline skips the deadline check;
// an empty FreeSlots list skips the containment check; a zero
// PastTolerance defaults to one minute.
type Constraints struct {
	MinDuration     time.Duration
	MaxDuration     time.Duration
	PastTolerance   time.Duration
	Deadline        *DeadlineCutoff
	TimeOfDayStarts map[models.TimeOfDay]models.ClockTime
	FreeSlots       []models.FreeSlot
}

// Result is the outcome of screening a candidate batch. A rejected
// candidate never aborts the batch; it lands in Rejected with its
// reason and screening continues.
type Result struct {
	Valid        []models.CandidateSlot     `json:"valid"`
	Rejected     []models.RejectedCandidate `json:"rejected"`
	TotalMinutes float64                    `json:"totalMinutes"`
}

// TotalHours returns the summed duration of the valid candidates.
func (r Result) TotalHours() float64 {
	return r.TotalMinutes / 60
}

// ValidateCandidates screens each proposed slot against the clock, the
// configured duration bounds, the deadline, the busy calendar, and the
// free windows it must fall inside. The duration bounds themselves are
// checked first; a bad configuration fails the whole call before any
// candidate is examined. Candidates are then checked in order and valid
// ones keep their original string form.
func ValidateCandidates(candidates []models.CandidateSlot, busy []models.BusyEvent, now time.Time, c Constraints) (Result, error) {
	if c.MinDuration <= 0 || c.MaxDuration <= 0 {
		return Result{}, NewConfigurationError("work_durations", "durations must be positive")
	}
	if c.MinDuration > c.MaxDuration {
		return Result{}, NewConfigurationError("work_durations", "min duration cannot exceed max duration")
	}
	if c.PastTolerance <= 0 {
		c.PastTolerance = time.Minute
	}

	starts := c.TimeOfDayStarts
	if starts == nil {
		starts = models.DefaultTimeOfDayStarts()
	}

	res := Result{Valid: make([]models.CandidateSlot, 0, len(candidates))}
	for _, cand := range candidates {
		iv, reason := screenCandidate(cand, busy, now, c, starts)
		if reason != "" {
			res.Rejected = append(res.Rejected, models.RejectedCandidate{Candidate: cand, Reason: reason})
			continue
		}
		res.Valid = append(res.Valid, cand)
		res.TotalMinutes += iv.Duration().Minutes()
	}
	return res, nil
}

func screenCandidate(cand models.CandidateSlot, busy []models.BusyEvent, now time.Time, c Constraints, starts map[models.TimeOfDay]models.ClockTime) (models.Interval, string) {
	start, err := time.Parse(time.RFC3339, cand.Start)
	if err != nil {
		return models.Interval{}, "unparseable start time"
	}
	end, err := time.Parse(time.RFC3339, cand.End)
	if err != nil {
		return models.Interval{}, "unparseable end time"
	}
	iv := models.Interval{Start: start, End: end}
	if !iv.IsValid() {
		return iv, "start is not before end"
	}
	if start.Before(now.Add(-c.PastTolerance)) {
		return iv, "starts in the past"
	}
	if iv.Duration() < c.MinDuration {
		return iv, "shorter than the minimum work duration"
	}
	if iv.Duration() > c.MaxDuration {
		return iv, "longer than the maximum work duration"
	}
	if c.Deadline != nil {
		if reason := checkDeadline(iv, *c.Deadline, starts); reason != "" {
			return iv, reason
		}
	}
	for _, ev := range busy {
		if iv.Overlaps(ev.Interval()) {
			return iv, fmt.Sprintf("overlaps existing event %q", eventLabel(ev))
		}
	}
	if len(c.FreeSlots) > 0 && !insideAnyFreeSlot(iv, c.FreeSlots) {
		return iv, "not contained in any free slot"
	}
	return iv, ""
}

// checkDeadline rejects candidates on or past the resolved cutoff. A
// morning deadline blocks the entire deadline day; other buckets block
// from the bucket's start time onward. Days are compared as calendar
// dates in each instant's own location.
func checkDeadline(iv models.Interval, cutoff DeadlineCutoff, starts map[models.TimeOfDay]models.ClockTime) string {
	slotDay := dayOrdinal(iv.Start)
	deadlineDay := dayOrdinal(cutoff.Date)
	if slotDay < deadlineDay {
		return ""
	}
	if cutoff.TimeOfDay == models.Morning {
		return fmt.Sprintf("blocked by the morning deadline on %s", cutoff.Date.Format("2006-01-02"))
	}
	threshold, ok := starts[cutoff.TimeOfDay]
	if !ok {
		return ""
	}
	if slotDay > deadlineDay {
		return fmt.Sprintf("falls after the %s deadline on %s", cutoff.TimeOfDay, cutoff.Date.Format("2006-01-02"))
	}
	if !iv.Start.Before(threshold.On(iv.Start, iv.Start.Location())) {
		return fmt.Sprintf("starts past the %s deadline on %s", cutoff.TimeOfDay, cutoff.Date.Format("2006-01-02"))
	}
	return ""
}

func insideAnyFreeSlot(iv models.Interval, free []models.FreeSlot) bool {
	for _, fs := range free {
		if fs.Interval().Contains(iv) {
			return true
		}
	}
	return false
}

func eventLabel(ev models.BusyEvent) string {
	if ev.Summary != "" {
		return ev.Summary
	}
	return "busy"
}

func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
