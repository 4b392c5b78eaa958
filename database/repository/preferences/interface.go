package preferencesRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"tempora/database"
	"tempora/models"
	"tempora/utils"
)

type CalendarPreferenceRepository interface {
	Save(ctx context.Context, profile models.PreferenceProfile) error
	Get(ctx context.Context, id string) (*models.PreferenceProfile, error)
}

type mongoPreferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoPreferenceRepo returns a new CalendarPreferenceRepository instance using MongoDB.
func NewMongoPreferenceRepo() CalendarPreferenceRepository {
	repo := &mongoPreferenceRepo{
		coll: database.Collection("calendar_preferences"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to create preference indexes: %v", err)
	}
	return repo
}
