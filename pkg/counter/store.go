package counter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store records client IPs and counts the distinct ones.
type Store interface {
	Hit(ctx context.Context, ip string) error
	Total(ctx context.Context) (int64, error)
}

// MemoryStore keeps distinct IPs in a map. Safe for concurrent use.
type MemoryStore struct {
	mu  sync.RWMutex
	ips map[string]struct{}
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ips: make(map[string]struct{})}
}

func (s *MemoryStore) Hit(ctx context.Context, ip string) error {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return ErrEmptyIP
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.ips[ip] = struct{}{}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Total(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.ips)), nil
}

// RedisStore counts distinct IPs with a Redis HyperLogLog.
// Counts are approximate (standard error ~0.81%) and memory is bounded.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore returns a store writing to the HyperLogLog at key.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Hit(ctx context.Context, ip string) error {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return ErrEmptyIP
	}
	if err := s.client.PFAdd(ctx, s.key, ip).Err(); err != nil {
		return fmt.Errorf("counter: pfadd: %w", err)
	}
	return nil
}

func (s *RedisStore) Total(ctx context.Context) (int64, error) {
	n, err := s.client.PFCount(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("counter: pfcount: %w", err)
	}
	return n, nil
}
