package candle

import (
	"context"
	"time"
)

// Backend is the part of the Redis client a Store talks to.
// pkg/redis.Client satisfies it.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=candle_mock
type Backend interface {
	RPush(ctx context.Context, key string, values ...any) (int64, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}
