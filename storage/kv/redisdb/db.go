// Package redisdb provides a Redis-backed kv.DB.
package redisdb

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/storage/kv"
)

type DB struct {
	client *redis.Client
}

var _ kv.DB = (*DB)(nil)

func Open(conf *core.Config) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Storage.Redis.Addr,
		Password: conf.Storage.Redis.Password,
		DB:       conf.Storage.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &DB{client: client}, nil
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := db.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting key %q", key)
	}
	return val, nil
}

func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	if err := db.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "setting key %q", key)
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, key string) error {
	if err := db.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "deleting key %q", key)
	}
	return nil
}

func (db *DB) Close() error {
	return db.client.Close()
}
