package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"tempora/models"
	"tempora/services/scheduling"
	"tempora/utils"

	"github.com/google/uuid"
)

// summaryPatterns are the phrases a find-time request tends to hang its
// subject on; the words after the first match become the suggestion title.
var summaryPatterns = []string{
	"time to work on", "time for", "schedule time for", "find time for",
	"time to finish", "time to complete", "time to prepare",
	"when can i", "need to work on", "need time for",
}

func (s *DefaultAssistantService) findTime(ctx context.Context, text, summaryOverride string, now time.Time) (*FindTimeResult, error) {
	logger := utils.GetLogger().Sugar()

	summary := extractCustomSummary(text)
	if summaryOverride != "" {
		summary = summaryOverride
	}
	logger.Infof("Using suggestion summary: %s", summary)

	requestedHours := s.AI.ExtractRequestedHours(ctx, text)

	rawRange, err := s.AI.ExtractDateRange(ctx, text, now)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}
	dateRange := normalizeDateRange(rawRange)
	logger.Infof("Processed date range: %s", dateRange)

	window := s.adjustWindowForQuery(ctx, text, s.Settings.Window)

	deadline := s.AI.ExtractDeadline(ctx, text)

	calendars := s.preferredCalendars(ctx)
	calendarIDs := calendarIDList(calendars)
	logger.Infof("Using calendars in find time: %v", calendarIDs)

	rng, err := scheduling.ParseDateRange(dateRange, s.Settings.Location)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}

	from, to := s.rangeBounds(rng)
	busy, err := s.Calendar.FetchBusyEvents(ctx, calendarIDs, from, to)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}

	freeSlots, err := scheduling.ComputeFreeSlots(rng, window, busy, now, s.Settings.Location)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}

	result := &FindTimeResult{
		Slots:          []models.CandidateSlot{},
		Summary:        summary,
		SuggestionID:   uuid.NewString(),
		RequestedHours: requestedHours,
	}

	if len(freeSlots) == 0 {
		logger.Warn("No free slots found in the specified date range")
		result.Humanized = humanizeSlots(result.Slots, summary)
		return result, nil
	}

	minStr := models.FormatClockDuration(s.Settings.MinWork)
	maxStr := models.FormatClockDuration(s.Settings.MaxWork)
	candidates, err := s.AI.ProposeSlots(ctx, text, dateRange, freeSlots, minStr, maxStr, now)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}

	constraints := scheduling.Constraints{
		MinDuration:     s.Settings.MinWork,
		MaxDuration:     s.Settings.MaxWork,
		PastTolerance:   s.Settings.PastTolerance,
		TimeOfDayStarts: s.Settings.TimeOfDayStarts,
		FreeSlots:       freeSlots,
	}

	// A day-of-week deadline is only trustworthy when the range spans from
	// today to that deadline; single-day requests ignore it.
	if deadline.IsSet() && strings.Contains(dateRange, " to ") {
		if tod, ok := models.ParseTimeOfDay(string(deadline.TimeOfDay)); ok {
			if cutoff, ok := deadline.NextOccurrence(now); ok {
				logger.Infof("Calculated deadline date: %s", cutoff.Format("2006-01-02"))
				constraints.Deadline = &scheduling.DeadlineCutoff{Date: cutoff, TimeOfDay: tod}
			}
		}
	}

	screened, err := scheduling.ValidateCandidates(candidates, busy, now, constraints)
	if err != nil {
		return nil, &FindTimeError{Err: err}
	}
	for _, rej := range screened.Rejected {
		logger.Warnf("Skipping suggested slot %s-%s: %s", rej.Candidate.Start, rej.Candidate.End, rej.Reason)
	}
	if len(screened.Rejected) > 0 {
		logger.Warnf("Removed %d suggested slots due to conflicts or deadline constraints", len(screened.Rejected))
	}

	result.Slots = screened.Valid
	result.FoundHours = screened.TotalHours()
	logger.Infof("Total hours in validated slots: %.2f, Requested hours: %v", result.FoundHours, requestedHours)

	if requestedHours > 0 && result.FoundHours < requestedHours {
		result.Insufficient = true
		result.Message = fmt.Sprintf("Could only find %.2f hours of the %v hours you requested before the deadline.",
			result.FoundHours, requestedHours)
		result.Humanized = result.Message
		logger.Warnf("Insufficient time found: %.2f hours of %v hours requested", result.FoundHours, requestedHours)
		return result, nil
	}

	result.Humanized = humanizeSlots(result.Slots, summary)
	return result, nil
}

// extractCustomSummary derives a short suggestion title from the request
// without another model round trip.
func extractCustomSummary(text string) string {
	lower := strings.ToLower(text)
	summary := "Suggested Time"

	for _, pattern := range summaryPatterns {
		idx := strings.Index(lower, pattern)
		if idx < 0 {
			continue
		}
		words := strings.Fields(lower[idx+len(pattern):])
		if len(words) == 0 {
			continue
		}
		if len(words) > 5 {
			words = words[:5]
		}
		phrase := strings.TrimRight(strings.Join(words, " "), ".,:;!?")
		summary = capitalizeWords(phrase)
		break
	}

	if runes := []rune(summary); len(runes) > 30 {
		summary = string(runes[:27]) + "..."
	}
	return summary
}

func capitalizeWords(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// normalizeDateRange strips clock times from an extracted date range so the
// result is a bare date or "date to date" string.
func normalizeDateRange(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, " to ") {
		parts := strings.SplitN(raw, " to ", 2)
		startParts := strings.Fields(parts[0])
		endParts := strings.Fields(parts[1])
		if len(startParts) > 1 && strings.Contains(parts[0], ":") {
			startDate := startParts[0]
			endDate := startDate
			if len(endParts) > 0 {
				endDate = endParts[0]
			}
			return startDate + " to " + endDate
		}
		return raw
	}
	if strings.Contains(raw, " ") && strings.Contains(raw, ":") {
		return strings.Fields(raw)[0]
	}
	return raw
}

// adjustWindowForQuery narrows the daily window to two hours around the
// asked-about time for availability questions.
func (s *DefaultAssistantService) adjustWindowForQuery(ctx context.Context, text string, window models.DailyWindow) models.DailyWindow {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "am i free") && !strings.Contains(lower, "check if i'm free") {
		return window
	}

	logger := utils.GetLogger().Sugar()

	queryTime := s.AI.ExtractQueryTime(ctx, text)
	at, err := models.ParseClockTime(queryTime)
	if err != nil {
		return window
	}
	logger.Infof("Specific time query detected: %s", queryTime)

	startMin := (at.Minutes() - 60 + 24*60) % (24 * 60)
	endMin := (at.Minutes() + 60) % (24 * 60)
	adjusted := models.DailyWindow{
		Start: models.ClockTime{Hour: startMin / 60, Minute: startMin % 60},
		End:   models.ClockTime{Hour: endMin / 60, Minute: endMin % 60},
	}
	logger.Infof("Adjusted time window: %s", adjusted)
	return adjusted
}

func humanizeSlots(slots []models.CandidateSlot, summary string) string {
	switch len(slots) {
	case 0:
		return "I couldn't find any suitable time slots based on your request."
	case 1:
		start, err := time.Parse(time.RFC3339, slots[0].Start)
		if err != nil {
			return fmt.Sprintf("I found one suitable time slot for %s.", summary)
		}
		return fmt.Sprintf("I found one suitable time slot for %s on %s.",
			summary, start.Format("Monday, January 02 at 03:04 PM"))
	default:
		return fmt.Sprintf("I found %d suitable time slots for %s. Please select one that works for you.",
			len(slots), summary)
	}
}
