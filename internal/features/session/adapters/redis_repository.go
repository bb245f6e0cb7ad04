package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ongkir-api/internal/core/cache"
	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/session/domain"

	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository persists sessions in Redis, one key per token.
type RedisSessionRepository struct {
	store cache.Store
}

// NewRedisSessionRepository creates a new Redis-backed session repository.
func NewRedisSessionRepository(store cache.Store) *RedisSessionRepository {
	return &RedisSessionRepository{store: store}
}

// Save persists a session under the given token.
func (r *RedisSessionRepository) Save(ctx context.Context, token string, session domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	if err := r.store.Set(ctx, sessionKeyPrefix+token, payload, 0); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// Get returns the session stored under the token. An absent key and an
// unreadable payload both resolve to nil without error.
func (r *RedisSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := r.store.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		logger.Get().Warn("Discarding unreadable session payload", zap.Error(err))
		return nil, nil
	}
	return &session, nil
}

// Delete removes the session stored under the token.
func (r *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
