package assistant

import (
	"context"
	"testing"
	"time"

	"tempora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createNow = time.Date(2024, 6, 5, 13, 0, 0, 0, assistantLoc)

func preferredTestCalendars() []models.CalendarInfo {
	return []models.CalendarInfo{
		{ID: "primary-id", Summary: "Personal", Primary: true},
		{ID: "cal-cs", Summary: "CS 188"},
	}
}

func TestCreateSingleEvent(t *testing.T) {
	aiSvc := &fakeAI{
		events: []models.ExtractedEvent{{
			Summary:             "Dentist",
			Date:                "2024-06-07",
			StartTime:           "14:00",
			Duration:            "01:30",
			CalendarName:        "cs 188",
			Notifications:       []int{30},
			NotificationMethods: []string{"email", "popup"},
		}},
	}
	cal := &fakeCalendar{}
	svc := newTestService(aiSvc, cal, &fakePrefs{calendars: preferredTestCalendars()})

	res, err := svc.createEvents(context.Background(), "dentist friday at 2pm on my cs calendar", createNow)
	require.NoError(t, err)

	require.Len(t, cal.created, 1)
	input := cal.created[0]
	assert.Equal(t, "Dentist", input.Summary)
	assert.Equal(t, "cal-cs", input.CalendarID)
	assert.Equal(t, "2024-06-07T14:00:00", input.Start)
	assert.Equal(t, "2024-06-07T15:30:00", input.End)

	require.NotNil(t, input.Reminders)
	assert.False(t, input.Reminders.UseDefault)
	require.Len(t, input.Reminders.Overrides, 2)
	assert.Equal(t, models.ReminderOverride{Method: "email", Minutes: 30}, input.Reminders.Overrides[0])
	assert.Equal(t, models.ReminderOverride{Method: "popup", Minutes: 30}, input.Reminders.Overrides[1])

	assert.Equal(t, "Event created successfully", res.Message)
	assert.Equal(t, "Added 'Dentist' to your calendar.", res.Humanized)
	require.Len(t, res.Events, 1)

	// The extraction prompt was offered the preferred calendar names.
	assert.Equal(t, []string{"Personal", "CS 188"}, aiSvc.lastNames)
}

func TestCreateMultipleEvents(t *testing.T) {
	aiSvc := &fakeAI{
		events: []models.ExtractedEvent{
			{Summary: "Gym", Date: "2024-06-08", StartTime: "08:00"},
			{Summary: "Gym", Date: "2024-06-12", StartTime: "08:00"},
		},
	}
	cal := &fakeCalendar{}
	svc := newTestService(aiSvc, cal, &fakePrefs{})

	res, err := svc.createEvents(context.Background(), "gym saturday and wednesday at 8am", createNow)
	require.NoError(t, err)

	require.Len(t, cal.created, 2)
	assert.Equal(t, "2024-06-08T08:00:00", cal.created[0].Start)
	assert.Equal(t, "2024-06-08T09:00:00", cal.created[0].End)
	assert.Equal(t, "2024-06-12T08:00:00", cal.created[1].Start)

	assert.Equal(t, "2 events created successfully", res.Message)
	assert.Equal(t, "Added 2 events to your calendar.", res.Humanized)
}

func TestStandardizeOvernightEvent(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{}, &fakePrefs{})

	input, err := svc.standardizeEvent(context.Background(), models.ExtractedEvent{
		Summary:   "Night shift",
		Date:      "2024-06-07",
		StartTime: "23:00",
		EndTime:   "01:00",
	}, nil, createNow)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-07T23:00:00", input.Start)
	assert.Equal(t, "2024-06-08T01:00:00", input.End)
}

func TestStandardizeRecurrence(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{}, &fakePrefs{})

	input, err := svc.standardizeEvent(context.Background(), models.ExtractedEvent{
		Summary:         "Lecture",
		Date:            "2024-06-10",
		StartTime:       "10:00",
		Duration:        "01:00",
		Recurrence:      "WEEKLY",
		RecurrenceDays:  []string{"MO", "WE"},
		RecurrenceCount: 10,
	}, nil, createNow)
	require.NoError(t, err)

	require.Len(t, input.Recurrence, 1)
	assert.Equal(t, "RRULE:FREQ=WEEKLY;COUNT=10;BYDAY=MO,WE", input.Recurrence[0])
}

func TestStandardizeDefaults(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{}, &fakePrefs{})

	// No date: lands on today. No end or duration: one hour.
	input, err := svc.standardizeEvent(context.Background(), models.ExtractedEvent{
		StartTime: "09:30",
	}, nil, createNow)
	require.NoError(t, err)

	assert.Equal(t, "Untitled Event", input.Summary)
	assert.Equal(t, "2024-06-05T09:30:00", input.Start)
	assert.Equal(t, "2024-06-05T10:30:00", input.End)
	assert.Equal(t, "primary", input.CalendarID)
	assert.Nil(t, input.Reminders)
	assert.Empty(t, input.Recurrence)
}

func TestStandardizeRejectsMissingStart(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{}, &fakePrefs{})

	_, err := svc.standardizeEvent(context.Background(), models.ExtractedEvent{
		Summary: "Mystery",
		Date:    "2024-06-07",
	}, nil, createNow)
	assert.Error(t, err)
}

func TestBuildRemindersDefaults(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{}, &fakePrefs{})

	// Methods given without offsets: the configured default offset applies.
	reminders := svc.buildReminders(nil, []string{"email"})
	require.Len(t, reminders.Overrides, 1)
	assert.Equal(t, models.ReminderOverride{Method: "email", Minutes: 10}, reminders.Overrides[0])

	// Offsets given without methods: the configured default method applies.
	reminders = svc.buildReminders([]int{5, 60}, nil)
	require.Len(t, reminders.Overrides, 2)
	assert.Equal(t, models.ReminderOverride{Method: "popup", Minutes: 5}, reminders.Overrides[0])
	assert.Equal(t, models.ReminderOverride{Method: "popup", Minutes: 60}, reminders.Overrides[1])
}

func TestScheduleSelectedSlot(t *testing.T) {
	cal := &fakeCalendar{}
	svc := newTestService(&fakeAI{}, cal, &fakePrefs{})

	event, err := svc.ScheduleSelectedSlot(context.Background(),
		SelectedSlot{
			Title: "Essay Draft",
			Start: "2024-06-06T09:00:00-07:00",
			End:   "2024-06-06T11:00:00-07:00",
		},
		SlotEventDetails{Location: "Library"},
	)
	require.NoError(t, err)
	require.NotNil(t, event)

	require.Len(t, cal.created, 1)
	input := cal.created[0]
	assert.Equal(t, "Essay Draft", input.Summary)
	assert.Equal(t, "Library", input.Location)
	assert.Equal(t, "2024-06-06T09:00:00-07:00", input.Start)
	assert.Equal(t, "2024-06-06T11:00:00-07:00", input.End)
}

func TestScheduleSelectedSlotSummaryPrecedence(t *testing.T) {
	cal := &fakeCalendar{}
	svc := newTestService(&fakeAI{}, cal, &fakePrefs{})

	_, err := svc.ScheduleSelectedSlot(context.Background(),
		SelectedSlot{Start: "2024-06-06T09:00:00-07:00", End: "2024-06-06T10:00:00-07:00"},
		SlotEventDetails{Summary: "Reading Group"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Reading Group", cal.created[0].Summary)

	_, err = svc.ScheduleSelectedSlot(context.Background(),
		SelectedSlot{Start: "2024-06-06T09:00:00-07:00", End: "2024-06-06T10:00:00-07:00"},
		SlotEventDetails{},
	)
	require.NoError(t, err)
	assert.Equal(t, "Scheduled Event", cal.created[1].Summary)
}

func TestResolveCalendarName(t *testing.T) {
	svc := newTestService(&fakeAI{}, &fakeCalendar{resolveTo: "api-resolved"}, &fakePrefs{})
	calendars := preferredTestCalendars()

	assert.Equal(t, "cal-cs", svc.resolveCalendarName(context.Background(), calendars, "CS 188"))
	assert.Equal(t, "cal-cs", svc.resolveCalendarName(context.Background(), calendars, "cs 188"))
	assert.Equal(t, "primary-id", svc.resolveCalendarName(context.Background(), calendars, "primary"))
	assert.Equal(t, "primary", svc.resolveCalendarName(context.Background(), calendars, "Unknown"))

	// Without stored preferences the live calendar list decides.
	assert.Equal(t, "api-resolved", svc.resolveCalendarName(context.Background(), nil, "CS 188"))
}
