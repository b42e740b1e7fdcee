// Package cache invalidates cache tags shared with the page cache in front of the portal
package cache

import (
	"context"

	"go.uber.org/zap"
)

// Invalidator invalidates cache tags
type Invalidator interface {
	InvalidateTags(ctx context.Context, tags ...string) error
}

type counter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// RedisInvalidator bumps a version counter per tag, readers compare the
// counter against the version their entry was cached with
type RedisInvalidator struct {
	log    *zap.Logger
	client counter
}

// NewRedisInvalidator returns a tag invalidator backed by redis
func NewRedisInvalidator(log *zap.Logger, client counter) *RedisInvalidator {
	return &RedisInvalidator{log: log, client: client}
}

// InvalidateTags increments cachetag:<tag> for every tag
func (r *RedisInvalidator) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		v, err := r.client.Incr(ctx, "cachetag:"+tag)
		if err != nil {
			return err
		}
		r.log.Debug("cache tag invalidated", zap.String("tag", tag), zap.Int64("version", v))
	}
	return nil
}

// NoopInvalidator is used when no shared cache backend is configured
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateTags(context.Context, ...string) error {
	return nil
}
