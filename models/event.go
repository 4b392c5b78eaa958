package models

import "time"

// ReminderOverride is one notification override on an event.
type ReminderOverride struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// EventReminders configures notifications for an event.
type EventReminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// EventInput is a ready-to-insert event, either posted directly to the
// create endpoint or standardized from extracted details. Start and End
// accept RFC 3339 or naive "YYYY-MM-DDTHH:MM:SS" strings; Duration is an
// "HH:MM" string and, when present, takes precedence over End.
type EventInput struct {
	Summary     string          `json:"summary"`
	Location    string          `json:"location,omitempty"`
	Description string          `json:"description,omitempty"`
	CalendarID  string          `json:"calendarId,omitempty"`
	Duration    string          `json:"duration,omitempty"`
	Start       string          `json:"start"`
	End         string          `json:"end,omitempty"`
	ColorID     string          `json:"colorId,omitempty"`
	Recurrence  []string        `json:"recurrence,omitempty"`
	Reminders   *EventReminders `json:"reminders,omitempty"`
}

// ExtractedEvent is the raw event description pulled out of natural
// language, before it is standardized against the user's calendars.
type ExtractedEvent struct {
	Summary             string   `json:"summary"`
	Location            string   `json:"location"`
	Description         string   `json:"description"`
	Date                string   `json:"date"`
	StartTime           string   `json:"startTime"`
	EndTime             string   `json:"endTime"`
	Duration            string   `json:"duration"`
	CalendarName        string   `json:"calendarName"`
	Recurrence          string   `json:"recurrence"`
	RecurrenceDays      []string `json:"recurrenceDays"`
	RecurrenceCount     int      `json:"recurrenceCount"`
	Notifications       []int    `json:"notifications"`
	NotificationMethods []string `json:"notificationMethods"`
}

// EventRecord is a timed event fetched from a calendar, before any
// display shaping.
type EventRecord struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Calendar    string
}

// Interval returns the span the event occupies.
func (e EventRecord) Interval() Interval {
	return Interval{Start: e.Start, End: e.End}
}

// CalendarEvent is an existing event shaped for the frontend calendar.
type CalendarEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	CalendarID      string `json:"calendarId"`
	BackgroundColor string `json:"backgroundColor"`
	ExistingEvent   bool   `json:"existingEvent"`
}

// SuggestedEvent renders a validated candidate on the frontend calendar
// in the suggestion palette.
type SuggestedEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
	TextColor       string `json:"textColor"`
	SuggestedSlot   bool   `json:"suggestedSlot"`
}

// EventSummary is one listed event in a view-events response.
type EventSummary struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Location   string `json:"location,omitempty"`
	CalendarID string `json:"calendarId"`
}

// EventMatch is a name-matched event with full details, returned for
// event_duration and event_details queries.
type EventMatch struct {
	ID              string `json:"id"`
	Summary         string `json:"summary"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Duration        string `json:"duration"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	CalendarID      string `json:"calendarId"`
}
