// Package kvstore is the durable key->string storage used for per-client
// session linkage: the persisted profile id and the remembered profile-name
// list. Redis backs it in production; an in-memory store backs tests.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for keys that were never set or were
// deleted.
var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
