// File: tempora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tempora/config"
	"tempora/database"
	preferencesRepo "tempora/database/repository/preferences"
	"tempora/handlers"
	"tempora/middleware"
	"tempora/models"
	"tempora/routes"
	"tempora/services/assistant"
	calendarsvc "tempora/services/calendar"
	ai "tempora/services/intelligence"
	"tempora/services/preferences"
	"tempora/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc, err := config.AppConfig.Location()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}
	window, err := config.AppConfig.DailyWindow()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid day window: %v", err)
	}
	minWork, maxWork, err := config.AppConfig.WorkDurations()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid work durations: %v", err)
	}
	bucketStarts, err := config.AppConfig.TimeOfDayStarts()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid time-of-day starts: %v", err)
	}

	calendarAPI, err := calendarsvc.NewService(context.Background(),
		config.AppConfig.GoogleCredentialsFile, config.AppConfig.GoogleTokenFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	prefsRepo := preferencesRepo.NewMongoPreferenceRepo()

	// services.
	calendarService := calendarsvc.NewDefaultCalendarService(calendarAPI, config.AppConfig.Timezone, loc)

	preferenceService := &preferences.DefaultPreferenceService{
		Repo:      prefsRepo,
		Cache:     utils.GetCacheClient(),
		ProfileID: models.DefaultPreferenceProfile,
	}

	aiSvc := ai.NewDefaultAIService(
		ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel),
	)

	assistantService := &assistant.DefaultAssistantService{
		AI:       aiSvc,
		Calendar: calendarService,
		Prefs:    preferenceService,
		Settings: assistant.ScheduleSettings{
			Location:               loc,
			TimezoneName:           config.AppConfig.Timezone,
			Window:                 window,
			MinWork:                minWork,
			MaxWork:                maxWork,
			PastTolerance:          config.AppConfig.PastTolerance(),
			TimeOfDayStarts:        bucketStarts,
			DefaultReminderMinutes: config.AppConfig.DefaultReminderMins,
			NotificationMethods:    config.AppConfig.NotificationMethods,
		},
	}

	calendarHandler := handlers.NewCalendarHandler(calendarService, preferenceService, loc)
	assistantHandler := handlers.NewAssistantHandler(assistantService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Calendar endpoints.
		GetCalendarsHandler:          calendarHandler.GetCalendarsHandler,
		GetEventsHandler:             calendarHandler.GetEventsHandler,
		CreateEventHandler:           calendarHandler.CreateEventHandler,
		SetPreferredCalendarsHandler: calendarHandler.SetPreferredCalendarsHandler,
		GetPreferredCalendarsHandler: calendarHandler.GetPreferredCalendarsHandler,

		// Assistant endpoints.
		NaturalLanguageEventHandler: assistantHandler.NaturalLanguageEventHandler,
		ScheduleSelectedSlotHandler: assistantHandler.ScheduleSelectedSlotHandler,
		SpeechToTextHandler:         handlers.SpeechToTextHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
