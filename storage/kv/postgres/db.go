// Package postgres provides a PostgreSQL-backed kv.DB. Each key maps to a
// single row holding the collection payload as jsonb.
package postgres

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/storage/kv"
)

type DB struct {
	db *sqlx.DB
}

var _ kv.DB = (*DB)(nil)

func Open(conf *core.Config) (*DB, error) {
	sslMode := "require"
	if conf.Storage.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.Storage.Database.User, conf.Storage.Database.Password),
		Host:     conf.DatabaseAddress(),
		Path:     conf.Storage.Database.Name,
		RawQuery: q.Encode(),
	}

	db, err := sqlx.Connect("postgres", u.String())
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}
	if err = Migrate(db.DB); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "migrating database")
	}
	return &DB{db: db}, nil
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	err := db.db.GetContext(ctx, &val, "SELECT value FROM kv_entries WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "getting key %q", key)
	}
	return val, nil
}

func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	_, err := db.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return errors.Wrapf(err, "setting key %q", key)
	}
	return nil
}

func (db *DB) Delete(ctx context.Context, key string) error {
	if _, err := db.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE key = $1", key); err != nil {
		return errors.Wrapf(err, "deleting key %q", key)
	}
	return nil
}

func (db *DB) Close() error {
	return db.db.Close()
}

// StatusCheck returns nil if it can successfully talk to the database.
func (db *DB) StatusCheck(ctx context.Context) error {
	var tmp bool
	return db.db.QueryRowContext(ctx, "SELECT true").Scan(&tmp)
}
