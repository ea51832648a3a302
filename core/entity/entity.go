// Package entity provides the generic building blocks shared by every
// collection in the app: a durable Store with optimistic CRUD, a pure
// filtering Pipeline and a FormSession state machine for create/edit flows.
package entity

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("entity not found")

// Record is implemented by every stored entity type.
type Record interface {
	EntityID() string
}

// recordPtr lets the store assign a generated ID to a new record.
type recordPtr[T any] interface {
	*T
	SetEntityID(id string)
}

// Clock abstracts time.Now for deterministic tests.
type Clock func() time.Time

// envelopeVersion guards persisted payloads; a mismatch means the stored
// state predates the current schema and seed data is used instead.
const envelopeVersion = 1

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// IDGenerator issues timestamp-derived IDs, bumped monotonically so two
// records created within the same millisecond never collide.
type IDGenerator struct {
	mutex  sync.Mutex
	prefix string
	now    Clock
	last   int64
}

func NewIDGenerator(prefix string, now Clock) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{prefix: prefix, now: now}
}

func (g *IDGenerator) Next() string {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.prefix + strconv.FormatInt(ms, 10)
}
