// Package storage provides the durable key/value media the preference store
// persists through. The interface mirrors browser localStorage: values are
// opaque byte strings addressed by a name.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"storefront/pkg/config"
)

// ErrNotFound is returned by GetItem when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Storage is a durable key/value medium.
type Storage interface {
	GetItem(key string) ([]byte, error)
	SetItem(key string, value []byte) error
	RemoveItem(key string) error
}

// Open returns the storage backend selected by cfg. The returned close
// function releases backend resources and is never nil.
func Open(cfg *config.Config) (Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStorage(), noop, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.BackendFile, "":
		return NewFileStorage(filepath.Join(cfg.DataDir, StateFileName)), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
