package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tempora/models"
	"tempora/utils"
)

// Intent strings returned by DetectIntent follow the assistant prompt
// wording, so callers match on prefixes rather than exact values.
const (
	IntentCreate   = "Create event"
	IntentDelete   = "Delete event"
	IntentView     = "View events"
	IntentFindTime = "Find time"
	IntentOther    = "Other"
)

// Service is the language-model oracle behind the assistant. Every method
// turns free-form text into structured scheduling data; none of them touch
// the calendar directly.
type Service interface {
	DetectIntent(ctx context.Context, text string) string
	ExtractRequestedHours(ctx context.Context, text string) float64
	ExtractDateRange(ctx context.Context, text string, now time.Time) (string, error)
	ExtractDeadline(ctx context.Context, text string) models.Deadline
	ExtractQueryTime(ctx context.Context, text string) string
	ProposeSlots(ctx context.Context, text, dateRange string, freeSlots []models.FreeSlot, minDuration, maxDuration string, now time.Time) ([]models.CandidateSlot, error)
	ExtractEventDetails(ctx context.Context, text string, calendarNames []string, now time.Time) ([]models.ExtractedEvent, error)
	ExtractViewQuery(ctx context.Context, text string, now time.Time) (models.ViewQuery, error)
	HumanizeViewResponse(ctx context.Context, summary ViewSummary) string
}

// Generator is the slice of GeminiClient the service needs, split out so
// tests can substitute canned responses.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// DefaultAIService drives a Gemini model with the assistant prompt set.
type DefaultAIService struct {
	Client Generator
}

func NewDefaultAIService(client Generator) *DefaultAIService {
	return &DefaultAIService{Client: client}
}

// DetectIntent classifies the request into one of the four supported
// intents. Failures collapse to "Other" so the caller can answer gracefully.
func (s *DefaultAIService) DetectIntent(ctx context.Context, text string) string {
	logger := utils.GetLogger().Sugar()
	logger.Infof("User's query: %s", text)

	resp, err := s.Client.GenerateContent(ctx, intentPrompt(text))
	if err != nil {
		logger.Errorf("Error getting user intent: %v", err)
		return IntentOther
	}
	return strings.TrimSpace(resp)
}

// ExtractRequestedHours pulls a total-hours figure out of the request, 0
// when none is mentioned or the response does not parse.
func (s *DefaultAIService) ExtractRequestedHours(ctx context.Context, text string) float64 {
	logger := utils.GetLogger().Sugar()

	resp, err := s.Client.GenerateContent(ctx, hoursPrompt(text))
	if err != nil {
		logger.Errorf("Error extracting requested hours: %v", err)
		return 0
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(resp), 64)
	if err != nil {
		logger.Warnf("Could not parse requested hours from: %s", resp)
		return 0
	}
	logger.Infof("Extracted requested hours: %v", hours)
	return hours
}

// ExtractDateRange returns the raw date or date range string; the assistant
// normalizes it before use.
func (s *DefaultAIService) ExtractDateRange(ctx context.Context, text string, now time.Time) (string, error) {
	resp, err := s.Client.GenerateContent(ctx, dateRangePrompt(text, now.Format("2006-01-02"), now.Format("15:04")))
	if err != nil {
		return "", fmt.Errorf("extract date range: %w", err)
	}
	dateRange := strings.TrimSpace(resp)
	utils.GetLogger().Sugar().Infof("Date range extracted: %s", dateRange)
	return dateRange, nil
}

// ExtractDeadline returns the day-of-week/time-of-day deadline constraint,
// zero-valued when the request has none or the response does not parse.
func (s *DefaultAIService) ExtractDeadline(ctx context.Context, text string) models.Deadline {
	logger := utils.GetLogger().Sugar()

	resp, err := s.Client.GenerateContent(ctx, deadlinePrompt(text))
	if err != nil {
		logger.Errorf("Error extracting deadline constraint: %v", err)
		return models.Deadline{}
	}

	var deadline models.Deadline
	if err := json.Unmarshal([]byte(stripFences(resp)), &deadline); err != nil {
		logger.Warnf("Could not parse deadline info from: %s", resp)
		return models.Deadline{}
	}
	logger.Infof("Extracted deadline constraint: %+v", deadline)
	return deadline
}

// ExtractQueryTime pulls the clock time out of an availability question
// ("Am I free at 2 PM?"), defaulting to noon when none is found.
func (s *DefaultAIService) ExtractQueryTime(ctx context.Context, text string) string {
	logger := utils.GetLogger().Sugar()

	resp, err := s.Client.GenerateContent(ctx, queryTimePrompt(text))
	if err != nil {
		logger.Errorf("Error extracting time from query: %v", err)
		return "12:00"
	}

	timeText := strings.TrimSpace(resp)
	if _, err := models.ParseClockTime(timeText); err != nil {
		logger.Warnf("Invalid time format extracted: %s, using default", timeText)
		return "12:00"
	}
	logger.Infof("Extracted time from query: %s", timeText)
	return timeText
}

// ProposeSlots asks the model to plan work sessions inside the given free
// slots. The returned candidates are unvalidated; the scheduling package
// screens them afterwards.
func (s *DefaultAIService) ProposeSlots(ctx context.Context, text, dateRange string, freeSlots []models.FreeSlot, minDuration, maxDuration string, now time.Time) ([]models.CandidateSlot, error) {
	logger := utils.GetLogger().Sugar()

	freeSlotsJSON, err := json.MarshalIndent(freeSlots, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal free slots: %w", err)
	}

	prompt := slotsPrompt(text, dateRange, string(freeSlotsJSON), minDuration, maxDuration,
		now.Format("2006-01-02"), now.Format("15:04"))
	resp, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("propose slots: %w", err)
	}

	logger.Infof("Processed slots: %s", stripFences(resp))

	slots, err := decodeCandidates(resp)
	if err != nil {
		logger.Errorf("Invalid JSON response: %s, Error: %v", resp, err)
		return []models.CandidateSlot{}, nil
	}
	return slots, nil
}

// ExtractEventDetails parses one or more events out of the request. The
// calendar names steer which calendar each event lands in.
func (s *DefaultAIService) ExtractEventDetails(ctx context.Context, text string, calendarNames []string, now time.Time) ([]models.ExtractedEvent, error) {
	if len(calendarNames) == 0 {
		calendarNames = []string{"primary"}
	}

	prompt := eventDetailsPrompt(text, strings.Join(calendarNames, ", "),
		now.Format("2006-01-02"), now.Format("15:04"))
	resp, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("extract event details: %w", err)
	}

	utils.GetLogger().Sugar().Debugf("Gemini response: %s", stripFences(resp))

	events, err := decodeEvents(resp)
	if err != nil {
		return nil, fmt.Errorf("parse event details: %w", err)
	}
	return events, nil
}

// ExtractViewQuery parses a view-events request into its query parameters.
func (s *DefaultAIService) ExtractViewQuery(ctx context.Context, text string, now time.Time) (models.ViewQuery, error) {
	resp, err := s.Client.GenerateContent(ctx, viewQueryPrompt(text, now.Format("2006-01-02"), now.Format("15:04")))
	if err != nil {
		return models.ViewQuery{}, fmt.Errorf("extract view query: %w", err)
	}

	utils.GetLogger().Sugar().Infof("Extracted query parameters for view events: %s", stripFences(resp))

	var query models.ViewQuery
	if err := json.Unmarshal([]byte(stripFences(resp)), &query); err != nil {
		return models.ViewQuery{}, fmt.Errorf("parse view query: %w", err)
	}
	return query, nil
}
