package handlers

import (
	"fmt"
	"net/http"
	"time"

	"tempora/models"
	calendarsvc "tempora/services/calendar"
	"tempora/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateEventHandler handles POST /api/create-event. The body is a full
// event input, so callers that already know the exact times can bypass
// the assistant.
func (h *CalendarHandler) CreateEventHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid create-event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Calendar.CreateEvent(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to create event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error creating event: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Event created successfully",
		"eventLink": created.HtmlLink,
	})
}

// GetEventsHandler handles GET /api/get-events. Without start and end
// query parameters it returns the week beginning today.
func (h *CalendarHandler) GetEventsHandler(c *gin.Context) {
	logger := getLogger(c)
	ctx := c.Request.Context()

	startDate := c.Query("start")
	endDate := c.Query("end")
	if startDate == "" || endDate == "" {
		today := time.Now().In(h.Location)
		startDate = today.Format("2006-01-02")
		endDate = today.AddDate(0, 0, 6).Format("2006-01-02")
	}

	rng, err := scheduling.ParseDateRange(fmt.Sprintf("%s to %s", startDate, endDate), h.Location)
	if err != nil {
		logger.Error("Invalid get-events date range", zap.String("start", startDate), zap.String("end", endDate), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	from := rng.Start
	to := time.Date(rng.End.Year(), rng.End.Month(), rng.End.Day(), 23, 59, 59, 0, h.Location)

	calendars, err := h.Prefs.GetPreferredCalendars(ctx)
	if err != nil {
		logger.Error("Failed to load preferred calendars for get-events", zap.Error(err))
		calendars = nil
	}
	calendarIDs := make([]string, 0, len(calendars))
	for _, cal := range calendars {
		calendarIDs = append(calendarIDs, cal.ID)
	}
	if len(calendarIDs) == 0 {
		calendarIDs = []string{"primary"}
	}

	records, err := h.Calendar.FetchEvents(ctx, calendarIDs, from, to)
	if err != nil {
		logger.Error("Failed to fetch events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": fmt.Sprintf("Error fetching events: %v", err),
		})
		return
	}

	// One color lookup per calendar, not per event.
	colors := make(map[string]string, len(calendarIDs))
	for _, id := range calendarIDs {
		colors[id] = calendarsvc.DisplayColor(h.Calendar.CalendarColorID(ctx, id))
	}

	events := make([]models.CalendarEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, models.CalendarEvent{
			ID:              rec.ID,
			Title:           rec.Summary,
			Start:           rec.Start.Format(time.RFC3339),
			End:             rec.End.Format(time.RFC3339),
			CalendarID:      rec.Calendar,
			BackgroundColor: colors[rec.Calendar],
			ExistingEvent:   true,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"events":  events,
	})
}
