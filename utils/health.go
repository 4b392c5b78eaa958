package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the latest probe result for the backing stores.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and Redis once immediately and then on
// an interval, keeping an in-memory snapshot for the health endpoint.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		probeStores(redisClient, mongoClient)

		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			probeStores(redisClient, mongoClient)
		}
	}()
}

// probeStores pings both stores with a bounded context so a hung store
// cannot stall the monitor loop.
func probeStores(redisClient *redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Redis:     redisClient.Ping(ctx).Err() == nil,
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		CheckedAt: time.Now(),
	}

	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}
