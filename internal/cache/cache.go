// Package cache stores scoring results for a time-boxed TTL keyed by resume id, job title and company.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/job-fit-scorer/internal/types"
)

// DefaultTTL is used when a Set call passes a non-positive ttl
const DefaultTTL = 10 * time.Minute

// Backend names
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

const keyPrefix = "fitscore:"

// Cache is a result store safe for concurrent use. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*types.ScoringResult, bool, error)
	Set(ctx context.Context, key string, result *types.ScoringResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Key builds the cache key for one resume scored against one job
func Key(resumeID, jobTitle, company string) string {
	parts := []string{resumeID, jobTitle, company}
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(p)), "|", "/")
	}
	return keyPrefix + strings.Join(parts, "|")
}

// Options selects and configures a backend
type Options struct {
	Backend       string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Logger        *zap.Logger
}

// New builds the configured backend. An empty backend selects memory.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemory(nil), nil
	case BackendRedis:
		return NewRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.Logger), nil
	case BackendNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// Noop never stores anything
type Noop struct{}

// Get always misses
func (Noop) Get(context.Context, string) (*types.ScoringResult, bool, error) { return nil, false, nil }

// Set discards the result
func (Noop) Set(context.Context, string, *types.ScoringResult, time.Duration) error { return nil }

// Delete does nothing
func (Noop) Delete(context.Context, string) error { return nil }
