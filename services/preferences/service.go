package preferences

import (
	"context"

	"github.com/go-redis/redis/v8"

	preferencesRepo "tempora/database/repository/preferences"
	"tempora/models"
	"tempora/utils"
)

// Service manages the user's preferred calendars. Preferences are
// persisted in Mongo and cached in Redis; the cache is refreshed on
// every write.
type Service interface {
	SetPreferredCalendars(ctx context.Context, calendars []models.CalendarInfo) error
	GetPreferredCalendars(ctx context.Context) ([]models.CalendarInfo, error)
}

// DefaultPreferenceService is the production implementation.
type DefaultPreferenceService struct {
	Repo      preferencesRepo.CalendarPreferenceRepository
	Cache     *redis.Client
	ProfileID string
}

func (s *DefaultPreferenceService) profileID() string {
	if s.ProfileID != "" {
		return s.ProfileID
	}
	return models.DefaultPreferenceProfile
}

func (s *DefaultPreferenceService) cacheKey() string {
	return utils.PrefsCachePrefix + s.profileID()
}

// SetPreferredCalendars replaces the stored calendar selection.
func (s *DefaultPreferenceService) SetPreferredCalendars(ctx context.Context, calendars []models.CalendarInfo) error {
	profile := models.PreferenceProfile{
		ID:        s.profileID(),
		Calendars: calendars,
	}
	if err := s.Repo.Save(ctx, profile); err != nil {
		return err
	}
	utils.StoreJSON(ctx, s.Cache, s.cacheKey(), calendars, utils.PrefsCacheTTL)
	return nil
}

// GetPreferredCalendars returns the stored selection, reading through
// the cache. An empty selection is returned when nothing is stored.
func (s *DefaultPreferenceService) GetPreferredCalendars(ctx context.Context) ([]models.CalendarInfo, error) {
	var cached []models.CalendarInfo
	if utils.LookupJSON(ctx, s.Cache, s.cacheKey(), &cached) {
		return cached, nil
	}

	profile, err := s.Repo.Get(ctx, s.profileID())
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []models.CalendarInfo{}, nil
	}
	utils.StoreJSON(ctx, s.Cache, s.cacheKey(), profile.Calendars, utils.PrefsCacheTTL)
	return profile.Calendars, nil
}
