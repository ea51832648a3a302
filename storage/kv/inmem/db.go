// Package inmemkv provides the in-memory kv.DB used in tests and as the
// zero-setup default backend.
package inmemkv

import (
	"context"
	"sync"

	"github.com/edumanage/backend/storage/kv"
)

type DB struct {
	mutex sync.RWMutex
	table map[string][]byte
}

var _ kv.DB = (*DB)(nil)

func NewDB() *DB {
	return &DB{table: make(map[string][]byte)}
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	val, ok := db.table[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (db *DB) Put(_ context.Context, key string, value []byte) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	db.table[key] = cp
	return nil
}

func (db *DB) Delete(_ context.Context, key string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	delete(db.table, key)
	return nil
}

func (db *DB) Close() error { return nil }
