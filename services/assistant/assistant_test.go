package assistant

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tempora/models"
	ai "tempora/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

type fakeAI struct {
	intent        string
	hours         float64
	dateRange     string
	dateRangeErr  error
	deadline      models.Deadline
	queryTime     string
	candidates    []models.CandidateSlot
	proposeErr    error
	events        []models.ExtractedEvent
	eventsErr     error
	viewQuery     models.ViewQuery
	viewQueryErr  error
	humanized     string
	lastFreeSlots []models.FreeSlot
	lastNames     []string
}

func (f *fakeAI) DetectIntent(context.Context, string) string           { return f.intent }
func (f *fakeAI) ExtractRequestedHours(context.Context, string) float64 { return f.hours }

func (f *fakeAI) ExtractDeadline(context.Context, string) models.Deadline {
	return f.deadline
}

func (f *fakeAI) ExtractDateRange(context.Context, string, time.Time) (string, error) {
	return f.dateRange, f.dateRangeErr
}

func (f *fakeAI) ExtractQueryTime(context.Context, string) string {
	if f.queryTime == "" {
		return "12:00"
	}
	return f.queryTime
}

func (f *fakeAI) ProposeSlots(_ context.Context, _, _ string, freeSlots []models.FreeSlot, _, _ string, _ time.Time) ([]models.CandidateSlot, error) {
	f.lastFreeSlots = freeSlots
	return f.candidates, f.proposeErr
}

func (f *fakeAI) ExtractEventDetails(_ context.Context, _ string, names []string, _ time.Time) ([]models.ExtractedEvent, error) {
	f.lastNames = names
	return f.events, f.eventsErr
}

func (f *fakeAI) ExtractViewQuery(context.Context, string, time.Time) (models.ViewQuery, error) {
	return f.viewQuery, f.viewQueryErr
}

func (f *fakeAI) HumanizeViewResponse(context.Context, ai.ViewSummary) string {
	return f.humanized
}

type fakeCalendar struct {
	calendars []models.CalendarInfo
	busy      []models.BusyEvent
	records   []models.EventRecord
	created   []models.EventInput
	createErr error
	resolveTo string
}

func (f *fakeCalendar) ListCalendars(context.Context) ([]models.CalendarInfo, error) {
	return f.calendars, nil
}

func (f *fakeCalendar) FetchBusyEvents(context.Context, []string, time.Time, time.Time) ([]models.BusyEvent, error) {
	return f.busy, nil
}

func (f *fakeCalendar) FetchEvents(context.Context, []string, time.Time, time.Time) ([]models.EventRecord, error) {
	return f.records, nil
}

func (f *fakeCalendar) CreateEvent(_ context.Context, input models.EventInput) (*gcal.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, input)
	return &gcal.Event{
		Id:       fmt.Sprintf("evt-%d", len(f.created)),
		Summary:  input.Summary,
		HtmlLink: "https://calendar.google.com/event?eid=abc",
	}, nil
}

func (f *fakeCalendar) ResolveCalendarID(context.Context, string) (string, error) {
	if f.resolveTo != "" {
		return f.resolveTo, nil
	}
	return "primary", nil
}

func (f *fakeCalendar) CalendarColorID(context.Context, string) string { return "1" }

type fakePrefs struct {
	calendars []models.CalendarInfo
	err       error
	saved     []models.CalendarInfo
}

func (f *fakePrefs) SetPreferredCalendars(_ context.Context, calendars []models.CalendarInfo) error {
	f.saved = calendars
	return f.err
}

func (f *fakePrefs) GetPreferredCalendars(context.Context) ([]models.CalendarInfo, error) {
	return f.calendars, f.err
}

var assistantLoc = time.FixedZone("PDT", -7*3600)

func testSettings() ScheduleSettings {
	return ScheduleSettings{
		Location:               assistantLoc,
		TimezoneName:           "America/Vancouver",
		Window:                 models.DailyWindow{Start: models.ClockTime{Hour: 7}, End: models.ClockTime{Hour: 20}},
		MinWork:                30 * time.Minute,
		MaxWork:                5 * time.Hour,
		PastTolerance:          time.Minute,
		TimeOfDayStarts:        models.DefaultTimeOfDayStarts(),
		DefaultReminderMinutes: 10,
		NotificationMethods:    []string{"popup"},
	}
}

func newTestService(aiSvc *fakeAI, cal *fakeCalendar, prefs *fakePrefs) *DefaultAssistantService {
	return NewDefaultAssistantService(aiSvc, cal, prefs, testSettings())
}

func TestProcessTextDeleteIntent(t *testing.T) {
	svc := newTestService(&fakeAI{intent: "Delete event"}, &fakeCalendar{}, &fakePrefs{})

	out, err := svc.ProcessText(context.Background(), "delete my dentist appointment", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, IntentDeleteEvent, out.Intent)
	assert.Contains(t, out.Message, "can't delete events yet")
	assert.Nil(t, out.Create)
	assert.Nil(t, out.FindTime)
	assert.Nil(t, out.View)
}

func TestProcessTextUnknownIntent(t *testing.T) {
	svc := newTestService(&fakeAI{intent: "Other"}, &fakeCalendar{}, &fakePrefs{})

	out, err := svc.ProcessText(context.Background(), "tell me a joke", "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, IntentUnknown, out.Intent)
	assert.NotEmpty(t, out.Message)
}

func TestProcessTextFindTimeIntentPrefix(t *testing.T) {
	now := time.Date(2024, 6, 5, 13, 0, 0, 0, assistantLoc)
	aiSvc := &fakeAI{
		intent:    "Find time to schedule event/ events",
		dateRange: "2024-06-06",
	}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	out, err := svc.ProcessText(context.Background(), "find me time to work on my essay", "", now)
	require.NoError(t, err)
	assert.Equal(t, IntentFindTime, out.Intent)
	require.NotNil(t, out.FindTime)
	assert.Equal(t, "My Essay", out.FindTime.Summary)
}

func TestProcessTextViewIntent(t *testing.T) {
	now := time.Date(2024, 6, 5, 13, 0, 0, 0, assistantLoc)
	aiSvc := &fakeAI{
		intent:    "View events",
		viewQuery: models.ViewQuery{QueryType: models.QueryListEvents, DateRange: "2024-06-05"},
		humanized: "Your day is clear.",
	}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	out, err := svc.ProcessText(context.Background(), "what's on today", "", now)
	require.NoError(t, err)
	assert.Equal(t, IntentViewEvents, out.Intent)
	require.NotNil(t, out.View)
	assert.Equal(t, "Your day is clear.", out.View.Humanized)
}
