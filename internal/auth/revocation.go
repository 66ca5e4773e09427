package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers revoked token ids until they expire.
// Implementations must be safe for concurrent use.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewRevocationStore picks the best available backend. If redisClient is
// non-nil, revocations are shared across instances through Redis.
// Otherwise they are kept in this process only.
func NewRevocationStore(redisClient *redis.Client) RevocationStore {
	if redisClient != nil {
		return NewRedisRevocations(redisClient)
	}
	return NewMemoryRevocations()
}

// RedisRevocations stores each revoked jti as a key that expires with the
// token.
type RedisRevocations struct {
	client *redis.Client
	prefix string
}

// NewRedisRevocations creates a Redis-backed revocation store.
func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client, prefix: "bulkmail:revoked:"}
}

// Revoke implements RevocationStore.
func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", tokenID, err)
	}
	return nil
}

// IsRevoked implements RevocationStore.
func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, r.prefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup revoked token %s: %w", tokenID, err)
	}
	return true, nil
}

// MemoryRevocations is the single-process fallback.
type MemoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expiry
	now     func() time.Time
}

// NewMemoryRevocations creates an in-process revocation store.
func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke implements RevocationStore. Expired entries are pruned on write.
func (m *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for id, exp := range m.revoked {
		if !now.Before(exp) {
			delete(m.revoked, id)
		}
	}
	m.revoked[tokenID] = now.Add(ttl)
	return nil
}

// IsRevoked implements RevocationStore.
func (m *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.revoked[tokenID]
	return ok && m.now().Before(exp), nil
}
