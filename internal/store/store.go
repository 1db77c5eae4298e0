// Package store implements the in-memory record collections backing the
// clinic state. All state lives in process memory and is lost on exit;
// durability, when wanted, is handled downstream by the change journal.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Order is the insertion policy of a collection.
type Order int

const (
	// Append adds new records at the end (rooms, professionals).
	Append Order = iota
	// Prepend adds new records at the front (transactions, newest first).
	Prepend
)

// Store is a generic ordered collection keyed by an opaque string id.
// Snapshots returned by List and Get are copies: mutating them never
// mutates the store.
type Store[T any] struct {
	mu    sync.Mutex
	items []T
	order Order
	id    func(T) string
	newID func() string
	clone func(T) T
}

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithNewID overrides id generation, mainly for deterministic tests.
func WithNewID[T any](fn func() string) Option[T] {
	return func(s *Store[T]) { s.newID = fn }
}

// WithClone installs a deep-clone hook for entities that carry reference
// fields (e.g. a Room's schedule slice). Without it records are copied by
// value, which is enough for flat structs.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(s *Store[T]) { s.clone = fn }
}

// New creates an empty store. id extracts the identifier from a record.
func New[T any](order Order, id func(T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		order: order,
		id:    id,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert assigns a fresh unique id, hands it to build to construct the
// record, appends or prepends it per the store's order policy, and returns
// the created record. The store never rejects a record; validation is the
// caller's job.
func (s *Store[T]) Insert(build func(id string) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := build(s.newID())
	if s.order == Prepend {
		s.items = append([]T{item}, s.items...)
	} else {
		s.items = append(s.items, item)
	}
	return s.copyOf(item)
}

// Update applies merge to the record matching id and stores the result,
// keeping its position. It returns false when no record matches; every
// other record is left untouched.
func (s *Store[T]) Update(id string, merge func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.id(item) == id {
			s.items[i] = merge(s.copyOf(item))
			return s.copyOf(s.items[i]), true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the record matching id. Deleting an absent id is a benign
// no-op; the return value only reports whether anything was removed.
func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if s.id(item) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the record matching id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if s.id(item) == id {
			return s.copyOf(item), true
		}
	}
	var zero T
	return zero, false
}

// List returns the current ordered snapshot.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = s.copyOf(item)
	}
	return out
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[T]) copyOf(item T) T {
	if s.clone != nil {
		return s.clone(item)
	}
	return item
}
