// Package kv contains expiring key value stores scoped to a collection
package kv

import (
	"context"
	"errors"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/pkg/redis"
	"go.uber.org/zap"
)

// ErrNotFound is returned for missing or expired keys
var ErrNotFound = errors.New("key not found")

// ExpirableStore is a key value store whose entries expire
type ExpirableStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithExpire(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Factory hands out collection scoped stores of one backend
type Factory interface {
	Collection(name string) ExpirableStore
}

// NewFactory returns the store factory for the configured backend
func NewFactory(log *zap.Logger, cfg *config.KeyValueConfiguration, client *redis.Client) (Factory, error) {
	switch cfg.Type {
	case "memory":
		log.Info("Using in memory key value store")
		return NewMemoryFactory(), nil
	case "redis":
		if client == nil {
			return nil, errors.New("redis key value store requires a redis client")
		}
		return &redisFactory{client: client}, nil
	default:
		return nil, errors.New("unknown key value store type")
	}
}
