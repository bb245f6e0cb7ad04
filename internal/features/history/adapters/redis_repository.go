package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"ongkir-api/internal/core/cache"
	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/features/history/domain"
	rates "ongkir-api/internal/features/rates/domain"

	"go.uber.org/zap"
)

const historyKeyPrefix = "history:"

// RedisHistoryRepository implements ports.HistoryRepository on the shared store.
// The journal read-modify-write is serialized with a mutex so concurrent
// appends cannot break the capacity or ordering invariants.
type RedisHistoryRepository struct {
	store cache.Store
	mu    sync.Mutex
	now   func() time.Time
}

// NewRedisHistoryRepository creates a new RedisHistoryRepository.
func NewRedisHistoryRepository(store cache.Store) *RedisHistoryRepository {
	return &RedisHistoryRepository{
		store: store,
		now:   time.Now,
	}
}

func historyKey(userID string) string {
	return historyKeyPrefix + userID
}

// Append stamps and prepends the calculation, truncates to capacity, and
// persists the updated journal.
func (r *RedisHistoryRepository) Append(ctx context.Context, userID string, calc rates.ShippingCalculation) (domain.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	journal, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	journal = journal.Insert(calc, r.now().UTC())

	data, err := json.Marshal(journal)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal history journal: %w", err)
	}

	if err := r.store.Set(ctx, historyKey(userID), data, 0); err != nil {
		return nil, fmt.Errorf("failed to save history journal: %w", err)
	}

	return journal, nil
}

// List returns the persisted journal for the user.
func (r *RedisHistoryRepository) List(ctx context.Context, userID string) (domain.Journal, error) {
	return r.load(ctx, userID)
}

// Clear deletes the user's journal.
func (r *RedisHistoryRepository) Clear(ctx context.Context, userID string) error {
	if err := r.store.Delete(ctx, historyKey(userID)); err != nil {
		return fmt.Errorf("failed to clear history journal: %w", err)
	}
	return nil
}

// load reads the journal from the store. A missing key or an unreadable
// payload degrades to an empty journal.
func (r *RedisHistoryRepository) load(ctx context.Context, userID string) (domain.Journal, error) {
	data, err := r.store.Get(ctx, historyKey(userID))
	if errors.Is(err, cache.ErrKeyNotFound) {
		return domain.Journal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history journal: %w", err)
	}

	var journal domain.Journal
	if err := json.Unmarshal(data, &journal); err != nil {
		logger.Get().Warn("Discarding malformed history journal",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return domain.Journal{}, nil
	}

	return journal, nil
}
