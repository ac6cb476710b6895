// Package storage provides the durable key-value backends the collection
// mirrors persist through. Values are opaque JSON blobs keyed by collection
// name; the store is single-owner and all operations are synchronous.
package storage

import (
	"errors"
	"fmt"

	"github.com/zenith-sms/zenith/internal/config"
)

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("key not found")

// Store is a flat key-value store of JSON-encoded collection values.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Keys() ([]string, error)
	Close() error
}

// Open creates a Store for the configured driver.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", "sqlite":
		return NewSQLite(cfg.Path)
	case "bolt":
		return NewBolt(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
