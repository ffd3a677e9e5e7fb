package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest liveness snapshot of the backing stores: the
// booking database, the session cache and the notice-delivery queue.
type HealthStatus struct {
	Bookings     bool      `json:"bookings"`
	SessionCache bool      `json:"sessionCache"`
	NoticeQueue  bool      `json:"noticeQueue"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings each store once a minute and keeps the snapshot
// current.
func StartHealthMonitor(mongoClient *mongo.Client, sessionCache, noticeQueue *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			snapshot := HealthStatus{
				Bookings:     mongoClient.Ping(ctx, nil) == nil,
				SessionCache: sessionCache.Ping(ctx).Err() == nil,
				NoticeQueue:  noticeQueue.Ping(ctx).Err() == nil,
				CheckedAt:    time.Now(),
			}

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}
