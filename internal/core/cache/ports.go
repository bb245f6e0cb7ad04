package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
// Callers that treat absence as "empty state" should check with errors.Is.
var ErrKeyNotFound = errors.New("key not found")

// Store defines the persisted key/value operations following hexagonal architecture.
// This is a port that can be implemented by different providers (Redis, Memcached, etc.).
type Store interface {
	// Get retrieves a value by key. Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
