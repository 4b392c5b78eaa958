package assistant

import (
	"context"
	"strings"
	"time"

	"tempora/models"
	calendarsvc "tempora/services/calendar"
	ai "tempora/services/intelligence"
	"tempora/services/preferences"
	"tempora/utils"

	gcal "google.golang.org/api/calendar/v3"
)

// Intent values surfaced on Outcome. These are the wire names, not the
// model's phrasing.
const (
	IntentCreateEvent = "create_event"
	IntentFindTime    = "find_time"
	IntentViewEvents  = "view_events"
	IntentDeleteEvent = "delete_event"
	IntentUnknown     = "unknown"
)

// Service turns free-form calendar requests into concrete calendar actions.
type Service interface {
	// ProcessText detects the request's intent and runs the matching
	// pipeline. summaryOverride, when non-empty, replaces the suggestion
	// title derived from the text.
	ProcessText(ctx context.Context, text, summaryOverride string, now time.Time) (*Outcome, error)

	// ScheduleSelectedSlot books one of the previously suggested slots.
	ScheduleSelectedSlot(ctx context.Context, slot SelectedSlot, details SlotEventDetails) (*gcal.Event, error)
}

// ScheduleSettings carries the scheduling knobs from configuration.
type ScheduleSettings struct {
	Location               *time.Location
	TimezoneName           string
	Window                 models.DailyWindow
	MinWork                time.Duration
	MaxWork                time.Duration
	PastTolerance          time.Duration
	TimeOfDayStarts        map[models.TimeOfDay]models.ClockTime
	DefaultReminderMinutes int
	NotificationMethods    []string
}

// Outcome is the result of one ProcessText call. Exactly one of the
// intent-specific fields is set, matching Intent.
type Outcome struct {
	Intent   string
	Create   *CreateResult
	FindTime *FindTimeResult
	View     *ViewResult
	Message  string
}

// CreateResult reports the events inserted for a create-event request.
type CreateResult struct {
	Events    []*gcal.Event
	Message   string
	Humanized string
}

// FindTimeResult carries the validated suggestions for a find-time request.
type FindTimeResult struct {
	Slots          []models.CandidateSlot
	Summary        string
	SuggestionID   string
	RequestedHours float64
	FoundHours     float64
	Insufficient   bool
	Message        string
	Humanized      string
}

// ViewResult answers a view-events request. The populated fields depend on
// QueryType.
type ViewResult struct {
	QueryType      string
	DateRange      string
	Events         []models.EventSummary
	TotalEvents    int
	FreeSlots      []models.FreeSlot
	TotalFreeSlots int
	EventName      string
	MatchingEvents []models.EventMatch
	Humanized      string
}

// SelectedSlot is a suggestion the user picked from a find-time response.
type SelectedSlot struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotEventDetails describes the event to build around a selected slot.
type SlotEventDetails struct {
	Summary     string                 `json:"summary"`
	Location    string                 `json:"location"`
	Description string                 `json:"description"`
	CalendarID  string                 `json:"calendarId"`
	Reminders   *models.EventReminders `json:"reminders"`
}

// DefaultAssistantService wires the language model, the calendar, and the
// stored preferences together.
type DefaultAssistantService struct {
	AI       ai.Service
	Calendar calendarsvc.Service
	Prefs    preferences.Service
	Settings ScheduleSettings
}

func NewDefaultAssistantService(aiSvc ai.Service, cal calendarsvc.Service, prefs preferences.Service, settings ScheduleSettings) *DefaultAssistantService {
	return &DefaultAssistantService{AI: aiSvc, Calendar: cal, Prefs: prefs, Settings: settings}
}

func (s *DefaultAssistantService) ProcessText(ctx context.Context, text, summaryOverride string, now time.Time) (*Outcome, error) {
	logger := utils.GetLogger().Sugar()

	intent := s.AI.DetectIntent(ctx, text)
	logger.Infof("Detected intent: %s", intent)

	switch {
	case strings.HasPrefix(intent, ai.IntentCreate):
		res, err := s.createEvents(ctx, text, now)
		if err != nil {
			return nil, err
		}
		return &Outcome{Intent: IntentCreateEvent, Create: res}, nil

	case strings.HasPrefix(intent, ai.IntentFindTime):
		res, err := s.findTime(ctx, text, summaryOverride, now)
		if err != nil {
			return nil, err
		}
		return &Outcome{Intent: IntentFindTime, FindTime: res}, nil

	case strings.HasPrefix(intent, ai.IntentView):
		res, err := s.viewEvents(ctx, text, now)
		if err != nil {
			return nil, err
		}
		return &Outcome{Intent: IntentViewEvents, View: res}, nil

	case strings.HasPrefix(intent, ai.IntentDelete):
		return &Outcome{
			Intent:  IntentDeleteEvent,
			Message: "I can't delete events yet, but you can remove them directly in Google Calendar.",
		}, nil

	default:
		return &Outcome{
			Intent:  IntentUnknown,
			Message: "I'm not sure what you'd like me to do. Try asking me to create an event, view your events, or find time to work on something.",
		}, nil
	}
}

// calendarIDList flattens preferred calendars to their IDs, defaulting to
// the primary calendar when no preference is stored.
func calendarIDList(calendars []models.CalendarInfo) []string {
	if len(calendars) == 0 {
		return []string{"primary"}
	}
	ids := make([]string, 0, len(calendars))
	for _, cal := range calendars {
		ids = append(ids, cal.ID)
	}
	return ids
}

// calendarNameList collects the preferred calendars' display names for the
// extraction prompt.
func calendarNameList(calendars []models.CalendarInfo) []string {
	if len(calendars) == 0 {
		return []string{"primary"}
	}
	names := make([]string, 0, len(calendars))
	for _, cal := range calendars {
		names = append(names, cal.Summary)
	}
	return names
}

// resolveCalendarName maps a calendar display name onto an ID using the
// stored preferences, querying the live calendar list only when no
// preferences exist.
func (s *DefaultAssistantService) resolveCalendarName(ctx context.Context, calendars []models.CalendarInfo, name string) string {
	if len(calendars) == 0 {
		id, err := s.Calendar.ResolveCalendarID(ctx, name)
		if err != nil {
			utils.GetLogger().Sugar().Errorf("Error resolving calendar %q: %v", name, err)
			return "primary"
		}
		return id
	}
	if strings.EqualFold(name, "primary") {
		for _, cal := range calendars {
			if cal.ID == "primary" || cal.Primary {
				return cal.ID
			}
		}
		return "primary"
	}
	for _, cal := range calendars {
		if strings.EqualFold(cal.Summary, name) {
			return cal.ID
		}
	}
	return "primary"
}

// preferredCalendars loads the stored calendar selection, degrading to the
// primary-only default when the store is unavailable.
func (s *DefaultAssistantService) preferredCalendars(ctx context.Context) []models.CalendarInfo {
	calendars, err := s.Prefs.GetPreferredCalendars(ctx)
	if err != nil {
		utils.GetLogger().Sugar().Errorf("Error loading preferred calendars: %v", err)
		return nil
	}
	return calendars
}

// rangeBounds expands a date range to the full-day fetch window used for
// event queries.
func (s *DefaultAssistantService) rangeBounds(rng models.DateRange) (time.Time, time.Time) {
	loc := s.Settings.Location
	from := time.Date(rng.Start.Year(), rng.Start.Month(), rng.Start.Day(), 0, 0, 0, 0, loc)
	to := time.Date(rng.End.Year(), rng.End.Month(), rng.End.Day(), 23, 59, 59, 0, loc)
	return from, to
}
