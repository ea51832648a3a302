package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/storage/kv"
)

// Store is the durable single source of truth for one entity collection.
// State is read from the KV backend on first access; an absent key or a
// stale envelope version falls back to the seed list. Every mutation
// re-serializes the full collection.
type Store[T Record, PT recordPtr[T]] struct {
	mutex  sync.RWMutex
	db     kv.DB
	key    string
	seed   []T
	idGen  *IDGenerator
	logger core.Logger

	prepend bool
	items   []T
	loaded  bool
}

type StoreOption func(prepend *bool, clock *Clock)

// Prepend makes Create insert new records at the front of the collection.
func Prepend() StoreOption {
	return func(prepend *bool, _ *Clock) { *prepend = true }
}

// WithClock overrides the ID generator's clock.
func WithClock(now Clock) StoreOption {
	return func(_ *bool, clock *Clock) { *clock = now }
}

func NewStore[T Record, PT recordPtr[T]](
	db kv.DB,
	key, idPrefix string,
	seed []T,
	logger core.Logger,
	opts ...StoreOption,
) *Store[T, PT] {
	var (
		prepend bool
		clock   Clock
	)
	for _, opt := range opts {
		opt(&prepend, &clock)
	}
	return &Store[T, PT]{
		db:      db,
		key:     key,
		seed:    seed,
		idGen:   NewIDGenerator(idPrefix, clock),
		logger:  logger,
		prepend: prepend,
	}
}

// Key returns the KV key the store persists under.
func (s *Store[T, PT]) Key() string { return s.key }

// Load reads persisted state, falling back to seed data when no usable
// state exists. Persisted state fully shadows the seed, never merges.
func (s *Store[T, PT]) Load(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store[T, PT]) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	raw, err := s.db.Get(ctx, s.key)
	switch {
	case errors.Is(err, kv.ErrKeyNotFound):
		s.items = append([]T(nil), s.seed...)
	case err != nil:
		return errors.Wrapf(err, "loading %s", s.key)
	default:
		var env envelope[T]
		if uErr := json.Unmarshal(raw, &env); uErr != nil || env.Version != envelopeVersion {
			if s.logger != nil {
				s.logger.Warn(fmt.Sprintf("discarding stale state for %s, reseeding", s.key))
			}
			s.items = append([]T(nil), s.seed...)
		} else {
			s.items = env.Items
		}
	}
	s.loaded = true
	return nil
}

// List returns a snapshot of the collection in insertion order. Callers
// must treat it as read-only.
func (s *Store[T, PT]) List(ctx context.Context) ([]T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return append([]T(nil), s.items...), nil
}

// Get returns the record with the given ID or ErrNotFound.
func (s *Store[T, PT]) Get(ctx context.Context, id string) (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var zero T
	if err := s.loadLocked(ctx); err != nil {
		return zero, err
	}
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, nil
		}
	}
	return zero, ErrNotFound
}

// Create assigns a fresh ID to the record, inserts it and persists.
func (s *Store[T, PT]) Create(ctx context.Context, rec T) (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var zero T
	if err := s.loadLocked(ctx); err != nil {
		return zero, err
	}

	PT(&rec).SetEntityID(s.idGen.Next())
	if s.prepend {
		s.items = append([]T{rec}, s.items...)
	} else {
		s.items = append(s.items, rec)
	}
	if err := s.persistLocked(ctx); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies mutate to a copy of the stored record, restores the
// original ID and persists. Returns ErrNotFound if no record matches.
func (s *Store[T, PT]) Update(ctx context.Context, id string, mutate func(*T)) (T, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var zero T
	if err := s.loadLocked(ctx); err != nil {
		return zero, err
	}

	for i, item := range s.items {
		if item.EntityID() != id {
			continue
		}
		updated := item
		mutate(&updated)
		PT(&updated).SetEntityID(id) // id is immutable
		s.items[i] = updated
		if err := s.persistLocked(ctx); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given ID. Returns ErrNotFound if
// absent; the collection is left unchanged in that case.
func (s *Store[T, PT]) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.loadLocked(ctx); err != nil {
		return err
	}

	for i, item := range s.items {
		if item.EntityID() != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return s.persistLocked(ctx)
	}
	return ErrNotFound
}

// Reset discards all state and re-persists the seed list.
func (s *Store[T, PT]) Reset(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items = append([]T(nil), s.seed...)
	s.loaded = true
	return s.persistLocked(ctx)
}

func (s *Store[T, PT]) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(envelope[T]{Version: envelopeVersion, Items: s.items})
	if err != nil {
		return errors.Wrapf(err, "serializing %s", s.key)
	}
	if err = s.db.Put(ctx, s.key, raw); err != nil {
		return errors.Wrapf(err, "persisting %s", s.key)
	}
	return nil
}
