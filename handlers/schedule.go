package handlers

import (
	"fmt"
	"net/http"

	"tempora/services/assistant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleSelectedSlotHandler handles POST /api/schedule-selected-slot,
// turning a suggested slot the user picked into a real event.
func (h *AssistantHandler) ScheduleSelectedSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		SelectedSlot *assistant.SelectedSlot     `json:"selectedSlot"`
		EventDetails *assistant.SlotEventDetails `json:"eventDetails"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule-selected-slot request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	if req.SelectedSlot == nil || req.EventDetails == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing selected slot or event details",
		})
		return
	}

	event, err := h.Assistant.ScheduleSelectedSlot(c.Request.Context(), *req.SelectedSlot, *req.EventDetails)
	if err != nil {
		logger.Error("Failed to schedule selected slot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error scheduling event: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Event scheduled successfully",
		"eventLink": event.HtmlLink,
		"event":     event,
	})
}
