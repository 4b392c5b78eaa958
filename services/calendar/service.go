package calendar

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"tempora/models"
	"tempora/utils"

	gcal "google.golang.org/api/calendar/v3"
)

// Service wraps the Google Calendar API behind the operations the rest of
// the system needs: listing calendars, pulling busy intervals, and writing
// events back.
type Service interface {
	// ListCalendars returns every calendar on the user's calendar list.
	ListCalendars(ctx context.Context) ([]models.CalendarInfo, error)

	// FetchBusyEvents returns the timed events across the given calendars
	// between from and to, reduced to busy intervals. All-day events are
	// skipped. A failure on one calendar is logged and does not abort the
	// rest.
	FetchBusyEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]models.BusyEvent, error)

	// FetchEvents returns the timed events across the given calendars with
	// their identity preserved, sorted by start time.
	FetchEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]models.EventRecord, error)

	// CreateEvent inserts the event described by input and returns the
	// created API event.
	CreateEvent(ctx context.Context, input models.EventInput) (*gcal.Event, error)

	// ResolveCalendarID maps a human calendar name onto a calendar ID,
	// falling back to "primary".
	ResolveCalendarID(ctx context.Context, name string) (string, error)

	// CalendarColorID returns the Google palette color ID ("1".."11") for
	// the calendar, defaulting to "1".
	CalendarColorID(ctx context.Context, calendarID string) string
}

// DefaultCalendarService talks to a live Calendar API service.
type DefaultCalendarService struct {
	API          *gcal.Service
	TimezoneName string
	Location     *time.Location
}

// NewDefaultCalendarService wires the API client with the configured timezone.
func NewDefaultCalendarService(api *gcal.Service, timezoneName string, loc *time.Location) *DefaultCalendarService {
	return &DefaultCalendarService{API: api, TimezoneName: timezoneName, Location: loc}
}

func (s *DefaultCalendarService) ListCalendars(ctx context.Context) ([]models.CalendarInfo, error) {
	list, err := s.API.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]models.CalendarInfo, 0, len(list.Items))
	for _, item := range list.Items {
		color := item.BackgroundColor
		if color == "" {
			color = "#4285F4"
		}
		calendars = append(calendars, models.CalendarInfo{
			ID:              item.Id,
			Summary:         item.Summary,
			Primary:         item.Primary,
			Description:     item.Description,
			BackgroundColor: color,
			ColorID:         item.ColorId,
		})
	}
	return calendars, nil
}

func (s *DefaultCalendarService) FetchBusyEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]models.BusyEvent, error) {
	busy := make([]models.BusyEvent, 0)
	for _, calendarID := range calendarIDs {
		events, err := s.listTimedEvents(ctx, calendarID, from, to)
		if err != nil {
			utils.GetLogger().Sugar().Errorf("Error fetching events from calendar %s: %v", calendarID, err)
			continue
		}
		for _, ev := range events {
			start, end, ok := eventTimes(ev)
			if !ok {
				continue
			}
			summary := ev.Summary
			if summary == "" {
				summary = "Busy"
			}
			busy = append(busy, models.BusyEvent{
				Summary:  summary,
				Start:    start,
				End:      end,
				Calendar: calendarID,
			})
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start.Before(busy[j].Start) })
	return busy, nil
}

func (s *DefaultCalendarService) FetchEvents(ctx context.Context, calendarIDs []string, from, to time.Time) ([]models.EventRecord, error) {
	records := make([]models.EventRecord, 0)
	for _, calendarID := range calendarIDs {
		events, err := s.listTimedEvents(ctx, calendarID, from, to)
		if err != nil {
			utils.GetLogger().Sugar().Errorf("Error fetching events from calendar %s: %v", calendarID, err)
			continue
		}
		for _, ev := range events {
			start, end, ok := eventTimes(ev)
			if !ok {
				continue
			}
			summary := ev.Summary
			if summary == "" {
				summary = "Untitled Event"
			}
			records = append(records, models.EventRecord{
				ID:          ev.Id,
				Summary:     summary,
				Description: ev.Description,
				Location:    ev.Location,
				Start:       start,
				End:         end,
				Calendar:    calendarID,
			})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Start.Before(records[j].Start) })
	return records, nil
}

// listTimedEvents pages through one calendar's events and drops all-day
// entries, which carry a date instead of a dateTime.
func (s *DefaultCalendarService) listTimedEvents(ctx context.Context, calendarID string, from, to time.Time) ([]*gcal.Event, error) {
	var out []*gcal.Event
	call := s.API.Events.List(calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		OrderBy("startTime").
		Context(ctx)

	pageToken := ""
	for {
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, err
		}
		for _, ev := range resp.Items {
			if ev.Start == nil || ev.End == nil || ev.Start.DateTime == "" || ev.End.DateTime == "" {
				continue
			}
			out = append(out, ev)
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	return out, nil
}

func (s *DefaultCalendarService) CreateEvent(ctx context.Context, input models.EventInput) (*gcal.Event, error) {
	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	start, err := s.NormalizeDateTime(input.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", input.Start, err)
	}

	end := ""
	if input.Duration != "" {
		end, err = s.EndFromDuration(start, input.Duration)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", input.Duration, err)
		}
	} else if input.End != "" {
		end, err = s.NormalizeDateTime(input.End)
		if err != nil {
			return nil, fmt.Errorf("invalid end time %q: %w", input.End, err)
		}
	} else {
		end, err = s.EndFromDuration(start, "01:00")
		if err != nil {
			return nil, err
		}
	}

	event := &gcal.Event{
		Summary:     input.Summary,
		Location:    input.Location,
		Description: input.Description,
		Start:       &gcal.EventDateTime{DateTime: start, TimeZone: s.TimezoneName},
		End:         &gcal.EventDateTime{DateTime: end, TimeZone: s.TimezoneName},
	}
	if input.ColorID != "" {
		event.ColorId = input.ColorID
	}
	if len(input.Recurrence) > 0 {
		event.Recurrence = input.Recurrence
	}
	if input.Reminders != nil {
		overrides := make([]*gcal.EventReminder, 0, len(input.Reminders.Overrides))
		for _, o := range input.Reminders.Overrides {
			overrides = append(overrides, &gcal.EventReminder{Method: o.Method, Minutes: int64(o.Minutes)})
		}
		event.Reminders = &gcal.EventReminders{
			UseDefault:      input.Reminders.UseDefault,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := s.API.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (s *DefaultCalendarService) ResolveCalendarID(ctx context.Context, name string) (string, error) {
	if name == "" || strings.EqualFold(name, "primary") {
		return "primary", nil
	}
	list, err := s.API.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return "primary", fmt.Errorf("failed to resolve calendar %q: %w", name, err)
	}
	for _, item := range list.Items {
		if strings.EqualFold(item.Summary, name) {
			return item.Id, nil
		}
	}
	return "primary", nil
}

func (s *DefaultCalendarService) CalendarColorID(ctx context.Context, calendarID string) string {
	cal, err := s.API.CalendarList.Get(calendarID).Context(ctx).Do()
	if err != nil {
		utils.GetLogger().Sugar().Errorf("Error fetching color for calendar %s: %v", calendarID, err)
		return "1"
	}
	if !validColorID(cal.ColorId) {
		utils.GetLogger().Sugar().Warnf("Invalid colorId %q for calendar %s, defaulting to \"1\"", cal.ColorId, calendarID)
		return "1"
	}
	return cal.ColorId
}

func validColorID(id string) bool {
	n, err := strconv.Atoi(id)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 11
}

// DisplayColor maps a palette color ID onto a stable hex color for clients
// that render events directly.
func DisplayColor(colorID string) string {
	n, err := strconv.Atoi(colorID)
	if err != nil || n < 1 {
		n = 1
	}
	return fmt.Sprintf("#%06x", n*123456%0xFFFFFF)
}

// NormalizeDateTime coerces the date strings the extraction layer produces
// into RFC 3339 in the service timezone. Strings that already carry an
// offset pass through untouched.
func (s *DefaultCalendarService) NormalizeDateTime(value string) (string, error) {
	return NormalizeDateTime(value, s.Location)
}

func NormalizeDateTime(value string, loc *time.Location) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("empty date string")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(time.RFC3339), nil
	}
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", value)
}

// EndFromDuration adds an "HH:MM" duration to an RFC 3339 start time.
func (s *DefaultCalendarService) EndFromDuration(start, duration string) (string, error) {
	return EndFromDuration(start, duration)
}

func EndFromDuration(start, duration string) (string, error) {
	startAt, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return "", fmt.Errorf("unparseable start time %q: %w", start, err)
	}
	d, err := models.ParseClockDuration(duration)
	if err != nil {
		return "", err
	}
	return startAt.Add(d).Format(time.RFC3339), nil
}

func eventTimes(ev *gcal.Event) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, ev.End.DateTime)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
