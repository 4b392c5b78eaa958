package preferencesRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tempora/models"
)

// Save upserts the preference profile.
func (r *mongoPreferenceRepo) Save(ctx context.Context, profile models.PreferenceProfile) error {
	if profile.ID == "" {
		profile.ID = models.DefaultPreferenceProfile
	}
	profile.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile, opts)
	return err
}

// Get returns the stored profile, or nil when none has been saved yet.
func (r *mongoPreferenceRepo) Get(ctx context.Context, id string) (*models.PreferenceProfile, error) {
	var profile models.PreferenceProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
