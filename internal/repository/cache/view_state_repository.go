package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/domain/repository"
)

const viewStateKeyPrefix = "session:view:"

type viewStateRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewViewStateRepository - Redis-backed storage of session view state
func NewViewStateRepository(redis *Redis) repository.ViewStateRepository {
	return &viewStateRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func viewStateKey(sessionID string) string {
	return viewStateKeyPrefix + sessionID
}

func (r *viewStateRepository) Get(ctx context.Context, sessionID string) (*domain.ViewState, error) {
	key := viewStateKey(sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get view state", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("view state get: %w", err)
	}

	var state domain.ViewState
	if err := json.Unmarshal(data, &state); err != nil {
		r.logger.Warn("Dropping unreadable view state", zap.String("key", key), zap.Error(err))
		return nil, nil
	}

	return &state, nil
}

func (r *viewStateRepository) Save(ctx context.Context, sessionID string, state domain.ViewState, ttl time.Duration) error {
	key := viewStateKey(sessionID)

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal view state: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.Error("Failed to save view state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("view state set: %w", err)
	}

	r.logger.Debug("View state saved", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *viewStateRepository) Delete(ctx context.Context, sessionID string) error {
	key := viewStateKey(sessionID)

	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete view state", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("view state delete: %w", err)
	}
	return nil
}
