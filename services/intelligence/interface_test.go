package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	resp       string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.resp, f.err
}

var testNow = time.Date(2024, 6, 5, 13, 0, 0, 0, time.UTC)

func TestDetectIntent(t *testing.T) {
	gen := &fakeGenerator{resp: "  Find time to schedule event/ events\n"}
	svc := NewDefaultAIService(gen)

	intent := svc.DetectIntent(context.Background(), "find me 3 hours to study")
	assert.Equal(t, "Find time to schedule event/ events", intent)
	assert.Contains(t, gen.lastPrompt, `"find me 3 hours to study"`)
}

func TestDetectIntentFailsClosed(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewDefaultAIService(gen)

	assert.Equal(t, IntentOther, svc.DetectIntent(context.Background(), "anything"))
}

func TestExtractRequestedHours(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: "2.5\n"})
	assert.InDelta(t, 2.5, svc.ExtractRequestedHours(context.Background(), "need 2.5 hours"), 1e-9)

	svc = NewDefaultAIService(&fakeGenerator{resp: "no hours mentioned"})
	assert.Zero(t, svc.ExtractRequestedHours(context.Background(), "just find me time"))

	svc = NewDefaultAIService(&fakeGenerator{err: errors.New("boom")})
	assert.Zero(t, svc.ExtractRequestedHours(context.Background(), "anything"))
}

func TestExtractDateRangeEmbedsCurrentDate(t *testing.T) {
	gen := &fakeGenerator{resp: "2024-06-05 to 2024-06-09"}
	svc := NewDefaultAIService(gen)

	got, err := svc.ExtractDateRange(context.Background(), "finish by Sunday", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05 to 2024-06-09", got)
	assert.Contains(t, gen.lastPrompt, "Current date: 2024-06-05")
	assert.Contains(t, gen.lastPrompt, "Current time: 13:00")
}

func TestExtractDeadline(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: "```json\n{\"deadline_day\": \"Sunday\", \"deadline_time\": \"morning\"}\n```"})
	d := svc.ExtractDeadline(context.Background(), "due by Sunday morning")
	assert.Equal(t, "Sunday", d.Day)
	assert.Equal(t, models.Morning, d.TimeOfDay)
	assert.True(t, d.IsSet())

	svc = NewDefaultAIService(&fakeGenerator{resp: "{}"})
	assert.False(t, svc.ExtractDeadline(context.Background(), "no deadline here").IsSet())

	svc = NewDefaultAIService(&fakeGenerator{resp: "not even json"})
	assert.False(t, svc.ExtractDeadline(context.Background(), "garbage").IsSet())
}

func TestExtractQueryTime(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: "14:00\n"})
	assert.Equal(t, "14:00", svc.ExtractQueryTime(context.Background(), "am i free at 2pm"))

	svc = NewDefaultAIService(&fakeGenerator{resp: "two in the afternoon"})
	assert.Equal(t, "12:00", svc.ExtractQueryTime(context.Background(), "am i free"))

	svc = NewDefaultAIService(&fakeGenerator{err: errors.New("down")})
	assert.Equal(t, "12:00", svc.ExtractQueryTime(context.Background(), "am i free"))
}

func TestProposeSlots(t *testing.T) {
	gen := &fakeGenerator{resp: `[
		{"start": "2024-06-05T14:00:00-07:00", "end": "2024-06-05T16:00:00-07:00"},
		{"start": "2024-06-06T09:00:00-07:00", "end": "2024-06-06T11:00:00-07:00"}
	]`}
	svc := NewDefaultAIService(gen)

	free := []models.FreeSlot{
		models.NewFreeSlot(
			time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 5, 20, 0, 0, 0, time.UTC),
		),
	}

	slots, err := svc.ProposeSlots(context.Background(), "study time", "2024-06-05 to 2024-06-09", free, "00:30", "05:00", testNow)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "2024-06-05T14:00:00-07:00", slots[0].Start)

	assert.Contains(t, gen.lastPrompt, "Date Range: 2024-06-05 to 2024-06-09")
	assert.Contains(t, gen.lastPrompt, "between **00:30 and 05:00 hours**")
	assert.Contains(t, gen.lastPrompt, `"duration_minutes": 360`)
}

func TestProposeSlotsToleratesBadJSON(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: "I am sorry, I cannot do that."})

	slots, err := svc.ProposeSlots(context.Background(), "study", "2024-06-05", nil, "00:30", "05:00", testNow)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestExtractEventDetailsSingleObject(t *testing.T) {
	gen := &fakeGenerator{resp: "```json\n" + `{
		"summary": "Dentist",
		"date": "2024-06-07",
		"startTime": "14:00",
		"duration": "01:00",
		"calendarName": "primary",
		"notifications": [30],
		"notificationMethods": ["popup"]
	}` + "\n```"}
	svc := NewDefaultAIService(gen)

	events, err := svc.ExtractEventDetails(context.Background(), "dentist friday at 2pm", []string{"primary", "CS 188"}, testNow)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Summary)
	assert.Equal(t, []int{30}, events[0].Notifications)
	assert.Contains(t, gen.lastPrompt, "primary, CS 188")
}

func TestExtractEventDetailsArray(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: `[
		{"summary": "Gym", "date": "2024-06-08", "startTime": "08:00"},
		{"summary": "Gym", "date": "2024-06-12", "startTime": "08:00"}
	]`})

	events, err := svc.ExtractEventDetails(context.Background(), "gym saturday and wednesday", nil, testNow)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "2024-06-12", events[1].Date)
}

func TestExtractViewQuery(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: `{
		"query_type": "list_events",
		"date_range": "2024-06-05 to 2024-06-11",
		"filters": "meetings",
		"event_name": "",
		"calendar_name": ""
	}`})

	q, err := svc.ExtractViewQuery(context.Background(), "what meetings do I have this week", testNow)
	require.NoError(t, err)
	assert.Equal(t, models.QueryListEvents, q.QueryType)
	assert.Equal(t, "2024-06-05 to 2024-06-11", q.DateRange)
	assert.Equal(t, "meetings", q.Filters)
}

func TestHumanizeViewResponse(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{resp: "You have two meetings tomorrow morning."})
	out := svc.HumanizeViewResponse(context.Background(), ViewSummary{
		QueryType:   models.QueryListEvents,
		DateRange:   "2024-06-06",
		TotalEvents: 2,
	})
	assert.Equal(t, "You have two meetings tomorrow morning.", out)
}

func TestHumanizeViewResponseFallsBack(t *testing.T) {
	svc := NewDefaultAIService(&fakeGenerator{err: errors.New("model down")})

	out := svc.HumanizeViewResponse(context.Background(), ViewSummary{
		QueryType:   models.QueryListEvents,
		DateRange:   "2024-06-06",
		TotalEvents: 3,
	})
	assert.Equal(t, "You have 3 events scheduled for 2024-06-06.", out)

	out = svc.HumanizeViewResponse(context.Background(), ViewSummary{QueryType: models.QueryCheckFreeTime})
	assert.Equal(t, "I found some free time in your schedule.", out)

	out = svc.HumanizeViewResponse(context.Background(), ViewSummary{
		QueryType:      models.QueryEventDetails,
		EventName:      "standup",
		MatchingEvents: []models.EventMatch{{Summary: "Standup"}},
	})
	assert.Equal(t, "Found 1 events matching 'standup'.", out)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, "[]", stripFences("  []  "))
}
