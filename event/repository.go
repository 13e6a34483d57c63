// Package event records which cart commands have already been applied, so
// a redelivered command does not change the cart twice.
package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultRetention is how long a processed command ID is remembered.
const DefaultRetention = 24 * time.Hour

type Repository interface {
	// Claim marks id as processed. It returns false when id was claimed before.
	Claim(ctx context.Context, id string) (bool, error)
}

var (
	_ Repository = (*redisRepository)(nil)
	_ Repository = (*memoryRepository)(nil)
)

type redisRepository struct {
	client    redis.UniversalClient
	retention time.Duration
	logger    *zap.Logger
}

func NewRedisRepository(client redis.UniversalClient, retention time.Duration, logger *zap.Logger) Repository {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &redisRepository{
		client:    client,
		retention: retention,
		logger:    logger,
	}
}

func (r *redisRepository) Claim(ctx context.Context, id string) (bool, error) {
	ok, err := r.client.SetNX(ctx, commandKey(id), time.Now().Unix(), r.retention).Result()
	if err != nil {
		r.logger.Error("Failed to claim command", zap.String("command_id", id), zap.Error(err))
		return false, fmt.Errorf("claim command %s: %w", id, err)
	}
	return ok, nil
}

func commandKey(id string) string {
	return "cart:command:" + id
}

type memoryRepository struct {
	mu        sync.Mutex
	claimed   map[string]time.Time
	retention time.Duration
	now       func() time.Time
}

// NewMemoryRepository keeps processed IDs in process memory. Used when no
// Redis is configured.
func NewMemoryRepository(retention time.Duration) Repository {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &memoryRepository{
		claimed:   make(map[string]time.Time),
		retention: retention,
		now:       time.Now,
	}
}

func (r *memoryRepository) Claim(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, at := range r.claimed {
		if now.Sub(at) > r.retention {
			delete(r.claimed, key)
		}
	}

	if _, ok := r.claimed[id]; ok {
		return false, nil
	}
	r.claimed[id] = now
	return true, nil
}
