package routes

import (
	"net/http"
	"time"

	"tempora/handlers"
	"tempora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the calendar and preference endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/get-calendars", hb.GetCalendarsHandler)
		api.GET("/get-events", hb.GetEventsHandler)
		api.POST("/create-event", hb.CreateEventHandler)
		api.POST("/set-preferred-calendars", hb.SetPreferredCalendarsHandler)
		api.GET("/get-preferred-calendars", hb.GetPreferredCalendarsHandler)
	}
}

// RegisterAssistantRoutes registers the natural-language endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/natural-language-event", hb.NaturalLanguageEventHandler)
		api.POST("/schedule-selected-slot", hb.ScheduleSelectedSlotHandler)
		api.POST("/speech-to-text", hb.SpeechToTextHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCalendarRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
