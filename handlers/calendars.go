package handlers

import (
	"fmt"
	"net/http"
	"time"

	"tempora/models"
	calendarsvc "tempora/services/calendar"
	"tempora/services/preferences"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the calendar surface: the calendar list, the
// preferred-calendar selection, and direct event reads and writes.
type CalendarHandler struct {
	Calendar calendarsvc.Service
	Prefs    preferences.Service
	Location *time.Location
}

// NewCalendarHandler wires a CalendarHandler.
func NewCalendarHandler(calendar calendarsvc.Service, prefs preferences.Service, loc *time.Location) *CalendarHandler {
	return &CalendarHandler{Calendar: calendar, Prefs: prefs, Location: loc}
}

// GetCalendarsHandler handles GET /api/get-calendars.
func (h *CalendarHandler) GetCalendarsHandler(c *gin.Context) {
	logger := getLogger(c)

	calendars, err := h.Calendar.ListCalendars(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list calendars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error fetching calendars: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"calendars": calendars,
	})
}

// SetPreferredCalendarsHandler handles POST /api/set-preferred-calendars.
func (h *CalendarHandler) SetPreferredCalendarsHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Calendars []models.CalendarInfo `json:"calendars"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid preferred calendars request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Prefs.SetPreferredCalendars(c.Request.Context(), req.Calendars); err != nil {
		logger.Error("Failed to save preferred calendars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to save preferences: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Preferred calendars set successfully",
	})
}

// GetPreferredCalendarsHandler handles GET /api/get-preferred-calendars.
func (h *CalendarHandler) GetPreferredCalendarsHandler(c *gin.Context) {
	logger := getLogger(c)

	calendars, err := h.Prefs.GetPreferredCalendars(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load preferred calendars", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Failed to load preferences: %v", err),
		})
		return
	}
	if calendars == nil {
		calendars = []models.CalendarInfo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"calendars": calendars,
	})
}
