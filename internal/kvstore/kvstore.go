// Package kvstore is the key-value storage the user registry and session
// live in. Values are opaque strings; callers store JSON.
package kvstore

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"betterBiteAPI/internal/kvstore/local"
	kvredis "betterBiteAPI/internal/kvstore/redis"
)

// ErrNotFound is returned by every backend when a key does not exist.
var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New returns a Redis-backed store when RedisAddr is set, otherwise an
// in-process one.
func New(cfg Config, logger *zap.Logger) (Store, error) {
	if cfg.RedisAddr != "" {
		rs, err := kvredis.New(kvredis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("kvstore: using redis", zap.String("addr", cfg.RedisAddr))
		return &adapter{backend: rs, notFound: kvredis.ErrNotFound}, nil
	}
	logger.Info("kvstore: using in-process store")
	return &adapter{backend: local.New(), notFound: local.ErrNotFound}, nil
}

// NewLocal returns an in-process store, mostly for tests.
func NewLocal() Store {
	return &adapter{backend: local.New(), notFound: local.ErrNotFound}
}

// adapter maps the backend's not-found error onto ErrNotFound.
type adapter struct {
	backend  Store
	notFound error
}

func (a *adapter) Get(ctx context.Context, key string) (string, error) {
	v, err := a.backend.Get(ctx, key)
	if errors.Is(err, a.notFound) {
		return "", ErrNotFound
	}
	return v, err
}

func (a *adapter) Set(ctx context.Context, key, value string) error {
	return a.backend.Set(ctx, key, value)
}

func (a *adapter) Del(ctx context.Context, keys ...string) error {
	return a.backend.Del(ctx, keys...)
}

func (a *adapter) Ping(ctx context.Context) error {
	return a.backend.Ping(ctx)
}

func (a *adapter) Close() error {
	return a.backend.Close()
}
