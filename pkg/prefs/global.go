package prefs

import (
	"errors"
	"sync"

	"storefront/pkg/storage"
)

// The process-wide handle is optional. Components should receive a *Store
// at construction; the handle exists for call sites with no route to one.
var (
	globalMu sync.RWMutex
	global   *Store
)

// ErrNotInitialized is returned by Shutdown when Init has not been called.
var ErrNotInitialized = errors.New("prefs: store not initialized")

// Init creates the process-wide store backed by s. Calling Init again
// without Shutdown returns the existing store.
func Init(s storage.Storage, opts ...Option) *Store {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		global = New(s, opts...)
	}
	return global
}

// Default returns the process-wide store. It panics if Init has not been
// called.
func Default() *Store {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if global == nil {
		panic("prefs: Default called before Init")
	}
	return global
}

// Shutdown flushes and closes the process-wide store and clears the handle.
func Shutdown() error {
	globalMu.Lock()
	st := global
	global = nil
	globalMu.Unlock()

	if st == nil {
		return ErrNotInitialized
	}
	return st.Close()
}
