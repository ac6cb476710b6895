// Package mirror keeps a single named value synchronized with its persisted
// counterpart: every write goes through to the store immediately, and the
// initial value is loaded from the store or falls back to a default.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zenith-sms/zenith/internal/storage"
)

// Mirror wraps one persisted value. All access goes through a single-writer
// lock, preserving read-modify-write semantics for Update callers.
type Mirror[T any] struct {
	store  storage.Store
	key    string
	logger *slog.Logger

	mu    sync.Mutex
	value T
}

// New creates a mirror for key, seeding the in-memory value from the store.
// A missing or unparseable persisted value falls back to defaultValue; a
// corrupt value is logged, never fatal.
func New[T any](store storage.Store, key string, defaultValue T, logger *slog.Logger) *Mirror[T] {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Mirror[T]{
		store:  store,
		key:    key,
		logger: logger,
		value:  defaultValue,
	}

	data, err := store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to load persisted value, using default", "key", key, "error", err)
		}
		return m
	}

	var loaded T
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Warn("corrupt persisted value, using default", "key", key, "error", err)
		return m
	}
	m.value = loaded

	return m
}

// Key returns the persisted storage key.
func (m *Mirror[T]) Key() string {
	return m.key
}

// Get returns the current in-memory value.
func (m *Mirror[T]) Get() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

// Set replaces the value and writes it through to the store. The in-memory
// value is updated even when the write fails, so callers keep working with
// the latest state at the cost of memory/storage divergence.
func (m *Mirror[T]) Set(value T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return m.persist()
}

// Update applies fn to the latest value and writes the result through,
// holding the lock across the read-modify-write.
func (m *Mirror[T]) Update(fn func(T) T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = fn(m.value)
	return m.persist()
}

func (m *Mirror[T]) persist() error {
	data, err := json.Marshal(m.value)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", m.key, err)
	}
	if err := m.store.Put(m.key, data); err != nil {
		return fmt.Errorf("persisting %q: %w", m.key, err)
	}
	return nil
}
