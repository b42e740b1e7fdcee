package kv

import (
	"context"
	"time"

	"github.com/eisenwinter/apicportal/pkg/redis"
)

type redisFactory struct {
	client *redis.Client
}

func (f *redisFactory) Collection(name string) ExpirableStore {
	return NewRedisStore(f.client, name)
}

// RedisStore keeps its entries as redis keys prefixed by the collection
type RedisStore struct {
	client     *redis.Client
	collection string
}

// NewRedisStore returns a store for the given collection
func NewRedisStore(client *redis.Client, collection string) *RedisStore {
	return &RedisStore{client: client, collection: collection}
}

func (r *RedisStore) key(key string) string {
	return "kv:" + r.collection + ":" + key
}

// Get returns the value or ErrNotFound
func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.key(key))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// SetWithExpire stores the value for ttl
func (r *RedisStore) SetWithExpire(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(key), value, ttl)
}

// Delete removes the key, deleting a missing key is not an error
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key))
}
