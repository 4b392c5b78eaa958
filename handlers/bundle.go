// File: tempora/handlers/handlerBundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Calendar endpoints
	GetCalendarsHandler          gin.HandlerFunc
	GetEventsHandler             gin.HandlerFunc
	CreateEventHandler           gin.HandlerFunc
	SetPreferredCalendarsHandler gin.HandlerFunc
	GetPreferredCalendarsHandler gin.HandlerFunc

	// Assistant endpoints
	NaturalLanguageEventHandler gin.HandlerFunc
	ScheduleSelectedSlotHandler gin.HandlerFunc
	SpeechToTextHandler         gin.HandlerFunc
}
