package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"tempora/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Google Calendar OAuth files.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleTokenFile       string `mapstructure:"GOOGLE_TOKEN_FILE"`

	// Service account used by the speech-to-text endpoint.
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Scheduling preferences.
	Timezone             string   `mapstructure:"TIMEZONE"`
	DayStart             string   `mapstructure:"DAY_START"`
	DayEnd               string   `mapstructure:"DAY_END"`
	MinWorkDuration      string   `mapstructure:"MIN_WORK_DURATION"`
	MaxWorkDuration      string   `mapstructure:"MAX_WORK_DURATION"`
	PastToleranceMin     int      `mapstructure:"PAST_TOLERANCE_MIN"`
	MorningStart         string   `mapstructure:"MORNING_START"`
	AfternoonStart       string   `mapstructure:"AFTERNOON_START"`
	EveningStart         string   `mapstructure:"EVENING_START"`
	NightStart           string   `mapstructure:"NIGHT_START"`
	NotificationMethods  []string `mapstructure:"NOTIFICATION_METHODS"`
	DefaultReminderMins  int      `mapstructure:"DEFAULT_REMINDER_MINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tempora")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-2.0-flash")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("GOOGLE_TOKEN_FILE", "token.json")
	viper.SetDefault("GOOGLE_SERVICE_ACCOUNT_FILE", "service-account.json")
	viper.SetDefault("TIMEZONE", "America/Vancouver")
	viper.SetDefault("DAY_START", "07:00")
	viper.SetDefault("DAY_END", "20:00")
	viper.SetDefault("MIN_WORK_DURATION", "00:30")
	viper.SetDefault("MAX_WORK_DURATION", "05:00")
	viper.SetDefault("PAST_TOLERANCE_MIN", 1)
	viper.SetDefault("MORNING_START", "00:00")
	viper.SetDefault("AFTERNOON_START", "12:00")
	viper.SetDefault("EVENING_START", "18:00")
	viper.SetDefault("NIGHT_START", "22:00")
	viper.SetDefault("NOTIFICATION_METHODS", []string{"popup"})
	viper.SetDefault("DEFAULT_REMINDER_MINS", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// DailyWindow parses the configured day start and end times.
func (c Config) DailyWindow() (models.DailyWindow, error) {
	start, err := models.ParseClockTime(c.DayStart)
	if err != nil {
		return models.DailyWindow{}, err
	}
	end, err := models.ParseClockTime(c.DayEnd)
	if err != nil {
		return models.DailyWindow{}, err
	}
	return models.DailyWindow{Start: start, End: end}, nil
}

// WorkDurations parses the configured per-session duration bounds.
func (c Config) WorkDurations() (min, max time.Duration, err error) {
	min, err = models.ParseClockDuration(c.MinWorkDuration)
	if err != nil {
		return 0, 0, err
	}
	max, err = models.ParseClockDuration(c.MaxWorkDuration)
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

// TimeOfDayStarts parses the configured bucket start times.
func (c Config) TimeOfDayStarts() (map[models.TimeOfDay]models.ClockTime, error) {
	starts := map[models.TimeOfDay]string{
		models.Morning:   c.MorningStart,
		models.Afternoon: c.AfternoonStart,
		models.Evening:   c.EveningStart,
		models.Night:     c.NightStart,
	}
	parsed := make(map[models.TimeOfDay]models.ClockTime, len(starts))
	for bucket, raw := range starts {
		ct, err := models.ParseClockTime(raw)
		if err != nil {
			return nil, err
		}
		parsed[bucket] = ct
	}
	return parsed, nil
}

// PastTolerance returns the grace period applied to the past check.
func (c Config) PastTolerance() time.Duration {
	if c.PastToleranceMin < 0 {
		return 0
	}
	return time.Duration(c.PastToleranceMin) * time.Minute
}
