package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tempora/models"
	"tempora/utils"
)

// ViewSummary carries the data behind a view-events answer so the model can
// phrase it conversationally. Only the fields relevant to QueryType are set.
type ViewSummary struct {
	QueryType      string
	DateRange      string
	Events         []models.EventSummary
	TotalEvents    int
	FreeSlots      []models.FreeSlot
	TotalFreeSlots int
	EventName      string
	MatchingEvents []models.EventMatch
}

// HumanizeViewResponse phrases the view result for the user. When the model
// call fails the response degrades to a plain templated sentence.
func (s *DefaultAIService) HumanizeViewResponse(ctx context.Context, summary ViewSummary) string {
	prompt, err := viewSummaryPrompt(summary)
	if err == nil {
		if resp, genErr := s.Client.GenerateContent(ctx, prompt); genErr == nil {
			return strings.TrimSpace(resp)
		} else {
			err = genErr
		}
	}
	utils.GetLogger().Sugar().Errorf("Error generating humanized response: %v", err)
	return fallbackViewResponse(summary)
}

func viewSummaryPrompt(summary ViewSummary) (string, error) {
	switch summary.QueryType {
	case models.QueryListEvents:
		eventsJSON, err := json.MarshalIndent(summary.Events, "", "  ")
		if err != nil {
			return "", err
		}
		return listEventsSummaryPrompt(summary.DateRange, summary.TotalEvents, string(eventsJSON)), nil

	case models.QueryCheckFreeTime:
		slotsJSON, err := json.MarshalIndent(summary.FreeSlots, "", "  ")
		if err != nil {
			return "", err
		}
		return freeTimeSummaryPrompt(summary.DateRange, summary.TotalFreeSlots, string(slotsJSON)), nil

	case models.QueryEventDuration, models.QueryEventDetails:
		matchesJSON, err := json.MarshalIndent(summary.MatchingEvents, "", "  ")
		if err != nil {
			return "", err
		}
		return matchingEventsSummaryPrompt(summary.EventName, len(summary.MatchingEvents), string(matchesJSON)), nil

	default:
		dataJSON, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return "", err
		}
		return genericSummaryPrompt(string(dataJSON)), nil
	}
}

func fallbackViewResponse(summary ViewSummary) string {
	switch summary.QueryType {
	case models.QueryListEvents:
		dateRange := summary.DateRange
		if dateRange == "" {
			dateRange = "today"
		}
		return fmt.Sprintf("You have %d events scheduled for %s.", summary.TotalEvents, dateRange)
	case models.QueryCheckFreeTime:
		return "I found some free time in your schedule."
	case models.QueryEventDuration, models.QueryEventDetails:
		return fmt.Sprintf("Found %d events matching '%s'.", len(summary.MatchingEvents), summary.EventName)
	default:
		return "Here's your calendar information."
	}
}
