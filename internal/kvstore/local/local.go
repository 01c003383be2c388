package local

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("kvstore/local: key not found")

// Store is an in-process key-value store. It lives as long as the process.
type Store struct {
	kv sync.Map // key -> string
}

func New() *Store {
	return &Store{}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	v, ok := s.kv.Load(key)
	if !ok {
		return "", ErrNotFound
	}
	return v.(string), nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.kv.Store(key, value)
	return nil
}

func (s *Store) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.kv.Delete(k)
	}
	return nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
