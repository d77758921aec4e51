package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxAuthAttempts   = 5
	authAttemptWindow = time.Hour
)

type RateLimitResult struct {
	Allowed           bool
	RemainingAttempts int
	ResetTime         time.Time
}

// AttemptStore tracks failed admin-auth attempts per client IP. The
// in-memory implementation is the default; the Redis one serves
// multi-process deployments sharing a cache.
type AttemptStore interface {
	Check(ctx context.Context, ip string) (RateLimitResult, error)
	RecordFailure(ctx context.Context, ip string) error
	Clear(ctx context.Context, ip string) error
}

type attemptEntry struct {
	attempts     int
	firstAttempt time.Time
}

// MemoryAttemptStore keeps attempt counters in a process-lifetime map.
// Entries expire by wall-clock comparison on each call, not via a
// background sweep; state resets on process restart.
type MemoryAttemptStore struct {
	mu      sync.Mutex
	entries map[string]*attemptEntry
	now     func() time.Time
}

func NewMemoryAttemptStore() *MemoryAttemptStore {
	return &MemoryAttemptStore{
		entries: make(map[string]*attemptEntry),
		now:     time.Now,
	}
}

func (s *MemoryAttemptStore) cleanupExpired(now time.Time) {
	for ip, entry := range s.entries {
		if now.Sub(entry.firstAttempt) > authAttemptWindow {
			delete(s.entries, ip)
		}
	}
}

func (s *MemoryAttemptStore) Check(_ context.Context, ip string) (RateLimitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cleanupExpired(now)

	entry, ok := s.entries[ip]
	if !ok {
		return RateLimitResult{
			Allowed:           true,
			RemainingAttempts: maxAuthAttempts,
			ResetTime:         now.Add(authAttemptWindow),
		}, nil
	}

	remaining := maxAuthAttempts - entry.attempts
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:           remaining > 0,
		RemainingAttempts: remaining,
		ResetTime:         entry.firstAttempt.Add(authAttemptWindow),
	}, nil
}

func (s *MemoryAttemptStore) RecordFailure(_ context.Context, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.cleanupExpired(now)

	entry, ok := s.entries[ip]
	if !ok {
		s.entries[ip] = &attemptEntry{attempts: 1, firstAttempt: now}
		return nil
	}

	entry.attempts++
	return nil
}

func (s *MemoryAttemptStore) Clear(_ context.Context, ip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, ip)
	return nil
}

// RedisAttemptStore is the shared-cache variant. Window expiry rides on
// the key TTL instead of per-call comparison.
type RedisAttemptStore struct {
	client *redis.Client
}

func NewRedisAttemptStore(client *redis.Client) *RedisAttemptStore {
	return &RedisAttemptStore{client: client}
}

func (s *RedisAttemptStore) key(ip string) string {
	return fmt.Sprintf("authfail:%s", ip)
}

func (s *RedisAttemptStore) Check(ctx context.Context, ip string) (RateLimitResult, error) {
	attempts, err := s.client.Get(ctx, s.key(ip)).Int()
	if err == redis.Nil {
		return RateLimitResult{
			Allowed:           true,
			RemainingAttempts: maxAuthAttempts,
			ResetTime:         time.Now().Add(authAttemptWindow),
		}, nil
	}
	if err != nil {
		return RateLimitResult{}, err
	}

	ttl, err := s.client.TTL(ctx, s.key(ip)).Result()
	if err != nil || ttl < 0 {
		ttl = authAttemptWindow
	}

	remaining := maxAuthAttempts - attempts
	if remaining < 0 {
		remaining = 0
	}

	return RateLimitResult{
		Allowed:           remaining > 0,
		RemainingAttempts: remaining,
		ResetTime:         time.Now().Add(ttl),
	}, nil
}

func (s *RedisAttemptStore) RecordFailure(ctx context.Context, ip string) error {
	attempts, err := s.client.Incr(ctx, s.key(ip)).Result()
	if err != nil {
		return err
	}
	if attempts == 1 {
		return s.client.Expire(ctx, s.key(ip), authAttemptWindow).Err()
	}
	return nil
}

func (s *RedisAttemptStore) Clear(ctx context.Context, ip string) error {
	return s.client.Del(ctx, s.key(ip)).Err()
}
