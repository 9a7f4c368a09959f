package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

const redisPingTimeout = 2 * time.Second

// Redis stores results in Redis. When the server is unreachable at construction the
// cache degrades to always missing instead of failing scoring.
type Redis struct {
	client *redis.Client
	logger *zap.Logger

	warnedUnavailable atomic.Bool
}

// NewRedis connects to addr and pings it
func NewRedis(ctx context.Context, addr, password string, db int, logger *zap.Logger) *Redis {
	if logger == nil {
		logger = zap.NewNop()
	}
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return &Redis{logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

// Available reports whether a live client is attached
func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Warn("redis cache error, continuing without cache", zap.Error(err))
	}
}

// Get returns the cached result for key
func (r *Redis) Get(ctx context.Context, key string) (*types.ScoringResult, bool, error) {
	if !r.Available() {
		return nil, false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		r.warnOnce(err)
		return nil, false, err
	}
	if len(b) == 0 {
		return nil, false, nil
	}

	var result types.ScoringResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result: %w", err)
	}
	return &result, true, nil
}

// Set stores result under key for ttl (DefaultTTL when ttl <= 0)
func (r *Redis) Set(ctx context.Context, key string, result *types.ScoringResult, ttl time.Duration) error {
	if !r.Available() || result == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

// Delete removes key
func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

// Close releases the client
func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
