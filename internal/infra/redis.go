package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis cria e valida um cliente go-redis.
// O Redis é o armazenamento durável das coleções (chave → JSON).
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Valida conectividade na inicialização
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
