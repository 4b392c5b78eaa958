package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tempora/models"
	"tempora/services/assistant"
	"tempora/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Palette for rendering suggested slots on the frontend calendar.
const (
	suggestedSlotBackground = "#8bc34a"
	suggestedSlotBorder     = "#689f38"
	suggestedSlotText       = "#000"
)

// AssistantHandler serves the natural-language endpoints.
type AssistantHandler struct {
	Assistant assistant.Service
}

// NewAssistantHandler wires an AssistantHandler.
func NewAssistantHandler(svc assistant.Service) *AssistantHandler {
	return &AssistantHandler{Assistant: svc}
}

// NaturalLanguageEventHandler handles POST /api/natural-language-event.
// The response shape depends on the detected intent.
func (h *AssistantHandler) NaturalLanguageEventHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Text    string `json:"text"`
		Summary string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid natural language request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No text provided"})
		return
	}

	out, err := h.Assistant.ProcessText(c.Request.Context(), req.Text, req.Summary, time.Now())
	if err != nil {
		respondAssistantError(c, logger, err)
		return
	}

	switch out.Intent {
	case assistant.IntentCreateEvent:
		respondCreate(c, out.Create)
	case assistant.IntentFindTime:
		respondFindTime(c, out.FindTime)
	case assistant.IntentViewEvents:
		respondView(c, out.View)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":           false,
			"intent":            out.Intent,
			"message":           out.Message,
			"humanizedResponse": out.Message,
		})
	}
}

func respondCreate(c *gin.Context, res *assistant.CreateResult) {
	if len(res.Events) == 1 {
		c.JSON(http.StatusOK, gin.H{
			"success":           true,
			"message":           res.Message,
			"eventLink":         res.Events[0].HtmlLink,
			"event":             res.Events[0],
			"humanizedResponse": res.Humanized,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           res.Message,
		"events":            res.Events,
		"humanizedResponse": res.Humanized,
	})
}

func respondFindTime(c *gin.Context, res *assistant.FindTimeResult) {
	resp := gin.H{
		"success":           true,
		"intent":            assistant.IntentFindTime,
		"availableSlots":    res.Slots,
		"calendarEvents":    suggestedEvents(res.Slots, res.Summary),
		"summary":           res.Summary,
		"suggestionId":      res.SuggestionID,
		"humanizedResponse": res.Humanized,
	}
	if res.Insufficient {
		resp["insufficientTime"] = true
		resp["requestedHours"] = res.RequestedHours
		resp["foundHours"] = res.FoundHours
		resp["message"] = res.Message
	}
	c.JSON(http.StatusOK, resp)
}

func respondView(c *gin.Context, res *assistant.ViewResult) {
	resp := gin.H{
		"success":           true,
		"intent":            assistant.IntentViewEvents,
		"query_type":        res.QueryType,
		"date_range":        res.DateRange,
		"humanizedResponse": res.Humanized,
	}
	switch res.QueryType {
	case models.QueryListEvents:
		resp["events"] = res.Events
		resp["total_events"] = res.TotalEvents
	case models.QueryCheckFreeTime:
		resp["free_slots"] = res.FreeSlots
		resp["total_free_slots"] = res.TotalFreeSlots
	default:
		resp["event_name"] = res.EventName
		resp["matching_events"] = res.MatchingEvents
		resp["total_matching_events"] = len(res.MatchingEvents)
	}
	c.JSON(http.StatusOK, resp)
}

// suggestedEvents shapes validated slots for direct rendering on the
// frontend calendar in the suggestion palette.
func suggestedEvents(slots []models.CandidateSlot, title string) []models.SuggestedEvent {
	events := make([]models.SuggestedEvent, 0, len(slots))
	for i, slot := range slots {
		events = append(events, models.SuggestedEvent{
			ID:              fmt.Sprintf("%s%d", utils.SuggestedSlotIDPrefix, i),
			Title:           title,
			Start:           slot.Start,
			End:             slot.End,
			BackgroundColor: suggestedSlotBackground,
			BorderColor:     suggestedSlotBorder,
			TextColor:       suggestedSlotText,
			SuggestedSlot:   true,
		})
	}
	return events
}

func respondAssistantError(c *gin.Context, logger *zap.Logger, err error) {
	var findErr *assistant.FindTimeError
	var unsupported *assistant.UnsupportedQueryTypeError
	var parseErr *assistant.QueryParseError

	switch {
	case errors.As(err, &findErr):
		logger.Error("Find-time pipeline failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"intent":            assistant.IntentFindTime,
			"message":           findErr.Error(),
			"humanizedResponse": "I encountered a problem finding available time slots: " + findErr.Error(),
		})
	case errors.Is(err, assistant.ErrEventNameMissing):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"message":           "Event name not specified in the query",
			"humanizedResponse": "I couldn't find the event you're looking for. Could you specify the event name?",
		})
	case errors.As(err, &unsupported):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":           false,
			"message":           fmt.Sprintf("Unsupported query type: %s", unsupported.QueryType),
			"humanizedResponse": "I don't understand what calendar information you're looking for. Could you try asking in a different way?",
		})
	case errors.As(err, &parseErr):
		logger.Error("Failed to parse view query", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":           false,
			"message":           fmt.Sprintf("Failed to parse query parameters: %v", parseErr.Err),
			"humanizedResponse": "I had trouble understanding your calendar query. Could you try rephrasing it?",
		})
	default:
		logger.Error("Error processing natural language request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":           false,
			"message":           fmt.Sprintf("Error processing your request: %v", err),
			"humanizedResponse": "I encountered an error while processing your request. Please try again.",
		})
	}
}
