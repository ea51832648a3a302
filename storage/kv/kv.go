// Package kv defines the durable key-value storage contract backing the
// entity stores: one record per entity-type key, each holding the
// JSON-serialized collection for that type.
package kv

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
// Callers treat it as "use seed data".
var ErrKeyNotFound = errors.New("kv: key not found")

// DB is a minimal durable key-value store. Implementations must be safe for
// concurrent use.
type DB interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
