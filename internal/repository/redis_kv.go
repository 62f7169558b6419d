package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisKV struct{ rdb *redis.Client }

// NewRedisKV adapta um cliente go-redis ao contrato KV.
// Cada coleção vive inteira sob uma única chave (valor JSON), sem TTL.
func NewRedisKV(rdb *redis.Client) KV { return &redisKV{rdb: rdb} }

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNaoEncontrado
	}
	return b, err
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}
