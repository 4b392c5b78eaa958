package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewNow = time.Date(2024, 6, 5, 13, 0, 0, 0, assistantLoc)

func viewTestRecords() []models.EventRecord {
	return []models.EventRecord{
		{
			ID:       "rec-1",
			Summary:  "Daily Standup",
			Start:    time.Date(2024, 6, 5, 10, 0, 0, 0, assistantLoc),
			End:      time.Date(2024, 6, 5, 10, 30, 0, 0, assistantLoc),
			Calendar: "primary",
		},
		{
			ID:       "rec-2",
			Summary:  "Lunch with Sam",
			Location: "Cafe Presse",
			Start:    time.Date(2024, 6, 5, 12, 0, 0, 0, assistantLoc),
			End:      time.Date(2024, 6, 5, 13, 0, 0, 0, assistantLoc),
			Calendar: "primary",
		},
	}
}

func TestViewListEvents(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryListEvents, DateRange: "2024-06-05 to 2024-06-07"},
		humanized: "You have 2 events coming up.",
	}
	cal := &fakeCalendar{records: viewTestRecords()}
	svc := newTestService(aiSvc, cal, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "what's on my calendar this week", viewNow)
	require.NoError(t, err)

	assert.Equal(t, models.QueryListEvents, res.QueryType)
	assert.Equal(t, "2024-06-05 to 2024-06-07", res.DateRange)
	assert.Equal(t, 2, res.TotalEvents)
	require.Len(t, res.Events, 2)
	assert.Equal(t, "Daily Standup", res.Events[0].Summary)
	assert.Equal(t, "2024-06-05 10:00", res.Events[0].Start)
	assert.Equal(t, "0h 30m", res.Events[0].Duration)
	assert.Equal(t, "1h 0m", res.Events[1].Duration)
	assert.Equal(t, "You have 2 events coming up.", res.Humanized)
}

func TestViewListEventsAppliesFilters(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryListEvents, DateRange: "2024-06-05", Filters: "standup, review"},
	}
	cal := &fakeCalendar{records: viewTestRecords()}
	svc := newTestService(aiSvc, cal, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "show my standups today", viewNow)
	require.NoError(t, err)

	require.Len(t, res.Events, 1)
	assert.Equal(t, "Daily Standup", res.Events[0].Summary)
}

func TestViewDefaultsToTodayAndListQuery(t *testing.T) {
	aiSvc := &fakeAI{viewQuery: models.ViewQuery{}}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "what do i have", viewNow)
	require.NoError(t, err)

	assert.Equal(t, models.QueryListEvents, res.QueryType)
	assert.Equal(t, "2024-06-05", res.DateRange)
}

func TestViewUnusableDateRangeFallsBackToToday(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryListEvents, DateRange: "sometime soon"},
	}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "show my events sometime soon", viewNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", res.DateRange)
}

func TestViewCheckFreeTime(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryCheckFreeTime, DateRange: "2024-06-05"},
		humanized: "You're free this afternoon.",
	}
	cal := &fakeCalendar{
		busy: []models.BusyEvent{{
			Summary: "Sprint Review",
			Start:   time.Date(2024, 6, 5, 14, 0, 0, 0, assistantLoc),
			End:     time.Date(2024, 6, 5, 15, 0, 0, 0, assistantLoc),
		}},
	}
	svc := newTestService(aiSvc, cal, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "am i free today", viewNow)
	require.NoError(t, err)

	assert.Equal(t, models.QueryCheckFreeTime, res.QueryType)
	require.Equal(t, 2, res.TotalFreeSlots)
	assert.Equal(t, "13:00", res.FreeSlots[0].StartTime)
	assert.Equal(t, "14:00", res.FreeSlots[0].EndTime)
	assert.Equal(t, "15:00", res.FreeSlots[1].StartTime)
	assert.Equal(t, "20:00", res.FreeSlots[1].EndTime)
	assert.Equal(t, "You're free this afternoon.", res.Humanized)
}

func TestViewMatchEvents(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryEventDuration, DateRange: "2024-06-05", EventName: "Standup"},
	}
	cal := &fakeCalendar{records: viewTestRecords()}
	svc := newTestService(aiSvc, cal, &fakePrefs{})

	res, err := svc.viewEvents(context.Background(), "how long is my standup", viewNow)
	require.NoError(t, err)

	assert.Equal(t, models.QueryEventDuration, res.QueryType)
	assert.Equal(t, "Standup", res.EventName)
	require.Len(t, res.MatchingEvents, 1)
	match := res.MatchingEvents[0]
	assert.Equal(t, "Daily Standup", match.Summary)
	assert.Equal(t, 30, match.DurationMinutes)
	assert.Equal(t, "0h 30m", match.Duration)
}

func TestViewMatchEventsRequiresName(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: models.QueryEventDetails, DateRange: "2024-06-05"},
	}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	_, err := svc.viewEvents(context.Background(), "tell me about it", viewNow)
	assert.True(t, errors.Is(err, ErrEventNameMissing))
}

func TestViewUnsupportedQueryType(t *testing.T) {
	aiSvc := &fakeAI{
		viewQuery: models.ViewQuery{QueryType: "forecast", DateRange: "2024-06-05"},
	}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	_, err := svc.viewEvents(context.Background(), "forecast my week", viewNow)

	var unsupported *UnsupportedQueryTypeError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "forecast", unsupported.QueryType)
}

func TestViewQueryParseError(t *testing.T) {
	aiSvc := &fakeAI{viewQueryErr: errors.New("model unavailable")}
	svc := newTestService(aiSvc, &fakeCalendar{}, &fakePrefs{})

	_, err := svc.viewEvents(context.Background(), "show my events", viewNow)

	var parseErr *QueryParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Error(), "model unavailable")
}

func TestFilterRecords(t *testing.T) {
	records := viewTestRecords()

	assert.Len(t, filterRecords(records, ""), 2)
	assert.Len(t, filterRecords(records, "   "), 2)
	assert.Len(t, filterRecords(records, "standup"), 1)
	assert.Len(t, filterRecords(records, " lunch , standup"), 2)
	assert.Len(t, filterRecords(records, "orchestra"), 0)

	// Matches against descriptions too.
	records[0].Description = "Quarterly planning notes"
	assert.Len(t, filterRecords(records, "planning"), 1)
}

func TestFormatDurationHM(t *testing.T) {
	assert.Equal(t, "0h 30m", formatDurationHM(30*time.Minute))
	assert.Equal(t, "1h 0m", formatDurationHM(time.Hour))
	assert.Equal(t, "2h 45m", formatDurationHM(2*time.Hour+45*time.Minute))
}
