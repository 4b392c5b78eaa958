package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tempora/models"
	ai "tempora/services/intelligence"
	"tempora/services/scheduling"
	"tempora/utils"
)

func (s *DefaultAssistantService) viewEvents(ctx context.Context, text string, now time.Time) (*ViewResult, error) {
	logger := utils.GetLogger().Sugar()

	query, err := s.AI.ExtractViewQuery(ctx, text, now)
	if err != nil {
		return nil, &QueryParseError{Err: err}
	}

	calendars := s.preferredCalendars(ctx)

	var calendarIDs []string
	if query.CalendarName != "" {
		calendarIDs = []string{s.resolveCalendarName(ctx, calendars, query.CalendarName)}
	} else {
		calendarIDs = calendarIDList(calendars)
	}

	dateRange := query.DateRange
	if dateRange == "" {
		dateRange = now.In(s.Settings.Location).Format("2006-01-02")
	}

	rng, err := scheduling.ParseDateRange(dateRange, s.Settings.Location)
	if err != nil {
		logger.Warnf("Unusable date range %q in view query, defaulting to today: %v", dateRange, err)
		dateRange = now.In(s.Settings.Location).Format("2006-01-02")
		rng, err = scheduling.ParseDateRange(dateRange, s.Settings.Location)
		if err != nil {
			return nil, err
		}
	}
	from, to := s.rangeBounds(rng)

	queryType := query.QueryType
	if queryType == "" {
		queryType = models.QueryListEvents
	}

	switch queryType {
	case models.QueryListEvents:
		return s.listEvents(ctx, query, calendarIDs, dateRange, from, to)
	case models.QueryCheckFreeTime:
		return s.checkFreeTime(ctx, rng, calendarIDs, dateRange, now)
	case models.QueryEventDuration, models.QueryEventDetails:
		return s.matchEvents(ctx, query, queryType, calendarIDs, dateRange, from, to)
	default:
		return nil, &UnsupportedQueryTypeError{QueryType: queryType}
	}
}

func (s *DefaultAssistantService) listEvents(ctx context.Context, query models.ViewQuery, calendarIDs []string, dateRange string, from, to time.Time) (*ViewResult, error) {
	records, err := s.Calendar.FetchEvents(ctx, calendarIDs, from, to)
	if err != nil {
		return nil, err
	}
	records = filterRecords(records, query.Filters)

	events := make([]models.EventSummary, 0, len(records))
	for _, rec := range records {
		events = append(events, models.EventSummary{
			ID:         rec.ID,
			Summary:    rec.Summary,
			Start:      s.formatLocal(rec.Start),
			End:        s.formatLocal(rec.End),
			Duration:   formatDurationHM(rec.End.Sub(rec.Start)),
			Location:   rec.Location,
			CalendarID: rec.Calendar,
		})
	}

	result := &ViewResult{
		QueryType:   models.QueryListEvents,
		DateRange:   dateRange,
		Events:      events,
		TotalEvents: len(events),
	}
	result.Humanized = s.AI.HumanizeViewResponse(ctx, ai.ViewSummary{
		QueryType:   models.QueryListEvents,
		DateRange:   dateRange,
		Events:      events,
		TotalEvents: len(events),
	})
	return result, nil
}

func (s *DefaultAssistantService) checkFreeTime(ctx context.Context, rng models.DateRange, calendarIDs []string, dateRange string, now time.Time) (*ViewResult, error) {
	logger := utils.GetLogger().Sugar()

	from, to := s.rangeBounds(rng)
	busy, err := s.Calendar.FetchBusyEvents(ctx, calendarIDs, from, to)
	if err != nil {
		logger.Errorf("Error fetching busy events for free-time check: %v", err)
		busy = nil
	}

	freeSlots, err := scheduling.ComputeFreeSlots(rng, s.Settings.Window, busy, now, s.Settings.Location)
	if err != nil {
		logger.Errorf("Error computing free slots for view query: %v", err)
		freeSlots = []models.FreeSlot{}
	}

	result := &ViewResult{
		QueryType:      models.QueryCheckFreeTime,
		DateRange:      dateRange,
		FreeSlots:      freeSlots,
		TotalFreeSlots: len(freeSlots),
	}
	result.Humanized = s.AI.HumanizeViewResponse(ctx, ai.ViewSummary{
		QueryType:      models.QueryCheckFreeTime,
		DateRange:      dateRange,
		FreeSlots:      freeSlots,
		TotalFreeSlots: len(freeSlots),
	})
	return result, nil
}

func (s *DefaultAssistantService) matchEvents(ctx context.Context, query models.ViewQuery, queryType string, calendarIDs []string, dateRange string, from, to time.Time) (*ViewResult, error) {
	name := strings.ToLower(strings.TrimSpace(query.EventName))
	if name == "" {
		return nil, ErrEventNameMissing
	}

	records, err := s.Calendar.FetchEvents(ctx, calendarIDs, from, to)
	if err != nil {
		return nil, err
	}

	matches := make([]models.EventMatch, 0)
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Summary), name) {
			continue
		}
		duration := rec.End.Sub(rec.Start)
		matches = append(matches, models.EventMatch{
			ID:              rec.ID,
			Summary:         rec.Summary,
			Start:           s.formatLocal(rec.Start),
			End:             s.formatLocal(rec.End),
			Duration:        formatDurationHM(duration),
			DurationMinutes: int(duration.Minutes()),
			Location:        rec.Location,
			Description:     rec.Description,
			CalendarID:      rec.Calendar,
		})
	}

	result := &ViewResult{
		QueryType:      queryType,
		DateRange:      dateRange,
		EventName:      query.EventName,
		MatchingEvents: matches,
	}
	result.Humanized = s.AI.HumanizeViewResponse(ctx, ai.ViewSummary{
		QueryType:      queryType,
		EventName:      query.EventName,
		MatchingEvents: matches,
	})
	return result, nil
}

// filterRecords keeps events whose summary or description mentions any of
// the comma-separated filter terms.
func filterRecords(records []models.EventRecord, filters string) []models.EventRecord {
	if strings.TrimSpace(filters) == "" {
		return records
	}

	terms := make([]string, 0)
	for _, term := range strings.Split(strings.ToLower(filters), ",") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return records
	}

	kept := make([]models.EventRecord, 0, len(records))
	for _, rec := range records {
		summary := strings.ToLower(rec.Summary)
		description := strings.ToLower(rec.Description)
		for _, term := range terms {
			if strings.Contains(summary, term) || strings.Contains(description, term) {
				kept = append(kept, rec)
				break
			}
		}
	}
	return kept
}

func (s *DefaultAssistantService) formatLocal(t time.Time) string {
	return t.In(s.Settings.Location).Format("2006-01-02 15:04")
}

func formatDurationHM(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
