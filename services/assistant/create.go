package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tempora/models"
	"tempora/utils"

	gcal "google.golang.org/api/calendar/v3"
)

func (s *DefaultAssistantService) createEvents(ctx context.Context, text string, now time.Time) (*CreateResult, error) {
	calendars := s.preferredCalendars(ctx)

	extracted, err := s.AI.ExtractEventDetails(ctx, text, calendarNameList(calendars), now)
	if err != nil {
		return nil, err
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no events could be extracted from the request")
	}

	created := make([]*gcal.Event, 0, len(extracted))
	for _, ev := range extracted {
		input, err := s.standardizeEvent(ctx, ev, calendars, now)
		if err != nil {
			return nil, err
		}
		event, err := s.Calendar.CreateEvent(ctx, input)
		if err != nil {
			return nil, err
		}
		created = append(created, event)
	}

	result := &CreateResult{Events: created}
	if len(created) == 1 {
		summary := extracted[0].Summary
		if summary == "" {
			summary = "event"
		}
		result.Message = "Event created successfully"
		result.Humanized = fmt.Sprintf("Added '%s' to your calendar.", summary)
	} else {
		result.Message = fmt.Sprintf("%d events created successfully", len(created))
		result.Humanized = fmt.Sprintf("Added %d events to your calendar.", len(created))
	}
	return result, nil
}

// standardizeEvent turns an extracted event into a calendar insert: it fills
// the end time from the duration, pushes overnight events onto the next day,
// expands recurrence into an RRULE, and builds the reminder overrides.
func (s *DefaultAssistantService) standardizeEvent(ctx context.Context, ev models.ExtractedEvent, calendars []models.CalendarInfo, now time.Time) (models.EventInput, error) {
	logger := utils.GetLogger().Sugar()

	date := ev.Date
	if date == "" {
		date = now.In(s.Settings.Location).Format("2006-01-02")
	}
	if _, err := time.ParseInLocation("2006-01-02", date, s.Settings.Location); err != nil {
		return models.EventInput{}, fmt.Errorf("extracted event %q has unusable date %q", ev.Summary, ev.Date)
	}

	if ev.StartTime == "" {
		return models.EventInput{}, fmt.Errorf("extracted event %q has no start time", ev.Summary)
	}
	start, err := models.ParseClockTime(ev.StartTime)
	if err != nil {
		return models.EventInput{}, fmt.Errorf("extracted event %q has unusable start time %q", ev.Summary, ev.StartTime)
	}

	endTime := ev.EndTime
	if endTime == "" && ev.Duration != "" {
		if d, durErr := models.ParseClockDuration(ev.Duration); durErr == nil {
			endTime = clockAfter(start, d)
		}
	}
	if endTime == "" {
		endTime = clockAfter(start, time.Hour)
	}
	end, err := models.ParseClockTime(endTime)
	if err != nil {
		return models.EventInput{}, fmt.Errorf("extracted event %q has unusable end time %q", ev.Summary, endTime)
	}

	endDate := date
	if end.Before(start) {
		day, _ := time.ParseInLocation("2006-01-02", date, s.Settings.Location)
		endDate = day.AddDate(0, 0, 1).Format("2006-01-02")
		logger.Infof("Detected overnight event: %s - adjusted end date to %s", ev.Summary, endDate)
	}

	summary := ev.Summary
	if summary == "" {
		summary = "Untitled Event"
	}

	calendarName := ev.CalendarName
	if calendarName == "" {
		calendarName = "primary"
	}

	input := models.EventInput{
		Summary:     summary,
		Location:    ev.Location,
		Description: ev.Description,
		CalendarID:  s.resolveCalendarName(ctx, calendars, calendarName),
		Start:       fmt.Sprintf("%sT%s:00", date, ev.StartTime),
		End:         fmt.Sprintf("%sT%s:00", endDate, endTime),
	}

	if len(ev.Notifications) > 0 || len(ev.NotificationMethods) > 0 {
		input.Reminders = s.buildReminders(ev.Notifications, ev.NotificationMethods)
	}

	if ev.Recurrence != "" {
		rrule := "RRULE:FREQ=" + ev.Recurrence
		if ev.RecurrenceCount > 0 {
			rrule += fmt.Sprintf(";COUNT=%d", ev.RecurrenceCount)
		}
		if ev.Recurrence == "WEEKLY" && len(ev.RecurrenceDays) > 0 {
			rrule += ";BYDAY=" + strings.Join(ev.RecurrenceDays, ",")
		}
		input.Recurrence = []string{rrule}
	}

	return input, nil
}

// buildReminders crosses notification offsets with delivery methods,
// falling back to the configured defaults for whichever side is missing.
func (s *DefaultAssistantService) buildReminders(minutes []int, methods []string) *models.EventReminders {
	if len(minutes) == 0 {
		defaultMins := s.Settings.DefaultReminderMinutes
		if defaultMins <= 0 {
			defaultMins = 10
		}
		minutes = []int{defaultMins}
	}
	if len(methods) == 0 {
		methods = s.Settings.NotificationMethods
		if len(methods) == 0 {
			methods = []string{"popup"}
		}
	}

	overrides := make([]models.ReminderOverride, 0, len(minutes)*len(methods))
	for _, m := range minutes {
		for _, method := range methods {
			overrides = append(overrides, models.ReminderOverride{Method: method, Minutes: m})
		}
	}
	return &models.EventReminders{UseDefault: false, Overrides: overrides}
}

// clockAfter advances a clock time by d, wrapping past midnight.
func clockAfter(c models.ClockTime, d time.Duration) string {
	total := (c.Minutes() + int(d.Minutes())) % (24 * 60)
	return models.ClockTime{Hour: total / 60, Minute: total % 60}.String()
}
