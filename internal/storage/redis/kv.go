package redis

import (
	"context"

	"fireReport/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

// KV stores form blobs as plain string values under prefix+key, without expiry.
type KV struct {
	client *goredis.Client
	prefix string
}

func NewKV(r *Redis, prefix string) *KV {
	return &KV{client: r.Client, prefix: prefix}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "redis.KV.Get"

	data, err := k.client.Get(ctx, k.prefix+key).Bytes()
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return data, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	const op = "redis.KV.Set"

	if err := k.client.Set(ctx, k.prefix+key, value, 0).Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
