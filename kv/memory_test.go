package kv

import (
	"context"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestMemoryStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.SetWithExpire(ctx, "a", []byte("1"), time.Minute))
	v, err := s.Get(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, []byte("1"), v)

	assert.NoError(t, s.Delete(ctx, "a"))
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	assert.NoError(t, s.SetWithExpire(ctx, "a", []byte("1"), time.Minute))
	now = now.Add(59 * time.Second)
	_, err := s.Get(ctx, "a")
	assert.NoError(t, err)

	now = now.Add(time.Second)
	_, err = s.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFactoryCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	f, err := NewFactory(zaptest.NewLogger(t), &config.KeyValueConfiguration{Type: "memory"}, nil)
	assert.NoError(t, err)

	a := f.Collection("a")
	b := f.Collection("b")
	assert.NoError(t, a.SetWithExpire(ctx, "k", []byte("a"), 0))

	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err := f.Collection("a").Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("a"), v)
}

func TestFactoryRequiresRedisClient(t *testing.T) {
	_, err := NewFactory(zaptest.NewLogger(t), &config.KeyValueConfiguration{Type: "redis"}, nil)
	assert.Error(t, err)
}
