package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rathoremon/car-repair-sub000/domain"
)

// RedisDraftStore implements domain.DraftStore. Onboarding drafts are
// deliberately external state: nothing in-process caches them.
type RedisDraftStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisDraftStore creates a new Redis-backed draft store
func NewRedisDraftStore(client *redis.Client, ttl time.Duration) domain.DraftStore {
	return &RedisDraftStore{
		client: client,
		prefix: "onboarding:draft:",
		ttl:    ttl,
	}
}

// Get implements domain.DraftStore
func (s *RedisDraftStore) Get(ctx context.Context, providerID string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+providerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put implements domain.DraftStore
func (s *RedisDraftStore) Put(ctx context.Context, providerID string, draft []byte) error {
	return s.client.Set(ctx, s.prefix+providerID, draft, s.ttl).Err()
}
