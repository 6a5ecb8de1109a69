// Package prefs implements the UI preference store: the theme, sidebar and
// loading flags shared by every storefront component. Only the theme is
// durable; it is written to storage under StorageKey after each change.
package prefs

import (
	"errors"
	"fmt"
	"sync"

	"storefront/internal/debug"
	"storefront/pkg/storage"
)

// Listener is called after a change with the new and previous state.
type Listener func(next, prev State)

// Option configures a Store.
type Option func(*Store)

// WithKey stores the durable snapshot under key instead of StorageKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store holds the preference state. All methods are safe for concurrent
// use; mutations are visible to every reader as soon as they return.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
	// themeGen counts SetTheme calls; Rehydrate drops reads that race one.
	themeGen uint64

	key     string
	storage storage.Storage

	// persistence
	pmu     sync.Mutex
	dirty   bool
	writing bool
	lastErr error
	kick    chan struct{}
	flushCh chan chan struct{}
	stop    chan struct{}
	done    chan struct{}
	closed  bool
	once    sync.Once
}

// New constructs a store backed by s and overlays the durable snapshot if
// one is present and valid. A nil s yields an in-memory-only store.
func New(s storage.Storage, opts ...Option) *Store {
	st := &Store{
		state:     DefaultState(),
		listeners: make(map[int]Listener),
		key:       StorageKey,
		storage:   s,
	}
	for _, opt := range opts {
		opt(st)
	}

	if st.storage != nil {
		if d, ok := st.load(); ok {
			st.state.DurablePreferences = d
		}
		st.kick = make(chan struct{}, 1)
		st.flushCh = make(chan chan struct{})
		st.stop = make(chan struct{})
		st.done = make(chan struct{})
		go st.writeLoop()
	}

	debug.Log("prefs: store created theme=%s", st.state.Theme)
	return st
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Theme returns the current theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme
}

// SidebarOpen reports whether the sidebar is shown.
func (s *Store) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SidebarOpen
}

// IsLoading reports the loading flag.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsLoading
}

// SetTheme replaces the theme and schedules a write of the durable
// snapshot. Themes outside the enumeration are rejected with
// ErrInvalidArgument and leave the state unchanged.
func (s *Store) SetTheme(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: theme %q", ErrInvalidArgument, string(t))
	}

	next, prev := s.update("setTheme", func(st *State) {
		st.Theme = t
		s.themeGen++
	})
	s.schedule()
	s.notify(next, prev)
	return nil
}

// ToggleSidebar flips the sidebar flag.
func (s *Store) ToggleSidebar() {
	next, prev := s.update("toggleSidebar", func(st *State) { st.SidebarOpen = !st.SidebarOpen })
	s.notify(next, prev)
}

// SetLoading replaces the loading flag.
func (s *Store) SetLoading(loading bool) {
	next, prev := s.update("setLoading", func(st *State) { st.IsLoading = loading })
	s.notify(next, prev)
}

// Rehydrate re-reads the durable snapshot and overlays it on the current
// state. It reports whether the state changed. Transient fields are kept.
// A snapshot read while a theme change is pending, being written, or made
// during the read is stale and is discarded.
func (s *Store) Rehydrate() bool {
	if s.storage == nil {
		return false
	}

	s.mu.RLock()
	gen := s.themeGen
	s.mu.RUnlock()
	if s.writeBusy() {
		return false
	}

	d, ok := s.load()
	if !ok {
		return false
	}

	s.mu.Lock()
	if s.themeGen != gen || s.writeBusy() {
		s.mu.Unlock()
		debug.Log("prefs: rehydrate discarded, theme changed during read")
		return false
	}
	prev := s.state
	s.state.DurablePreferences = d
	next := s.state
	s.mu.Unlock()

	if next == prev {
		return false
	}
	debug.Log("prefs: rehydrate theme=%s sidebarOpen=%t isLoading=%t", next.Theme, next.SidebarOpen, next.IsLoading)
	s.notify(next, prev)
	return true
}

// writeBusy reports whether a snapshot is scheduled or being written.
// It may be called with mu held; pmu is never held while taking mu.
func (s *Store) writeBusy() bool {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	return s.dirty || s.writing
}

// Subscribe registers l for state changes and returns a function that
// removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Err returns the most recent persistence failure, wrapped in
// ErrPersistenceUnavailable, or nil after a successful write.
func (s *Store) Err() error {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	return s.lastErr
}

// Flush blocks until every scheduled snapshot has been written.
func (s *Store) Flush() {
	if s.storage == nil {
		return
	}
	s.pmu.Lock()
	closed := s.closed
	s.pmu.Unlock()
	if closed {
		return
	}

	ack := make(chan struct{})
	select {
	case s.flushCh <- ack:
		<-ack
	case <-s.done:
	}
}

// Close flushes pending writes and stops the writer. The store keeps
// working in memory afterwards; later theme changes are not persisted.
func (s *Store) Close() error {
	if s.storage == nil {
		return nil
	}
	s.once.Do(func() {
		s.Flush()
		s.pmu.Lock()
		s.closed = true
		s.pmu.Unlock()
		close(s.stop)
		<-s.done
	})
	return s.Err()
}

func (s *Store) update(action string, fn func(*State)) (next, prev State) {
	s.mu.Lock()
	prev = s.state
	fn(&s.state)
	next = s.state
	s.mu.Unlock()

	debug.Log("prefs: %s theme=%s sidebarOpen=%t isLoading=%t", action, next.Theme, next.SidebarOpen, next.IsLoading)
	return next, prev
}

func (s *Store) notify(next, prev State) {
	if next == prev {
		return
	}

	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(next, prev)
	}
}

func (s *Store) load() (DurablePreferences, bool) {
	data, err := s.storage.GetItem(s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return DurablePreferences{}, false
	}
	if err != nil {
		s.setErr(fmt.Errorf("%w: read %s: %v", ErrPersistenceUnavailable, s.key, err))
		return DurablePreferences{}, false
	}

	d, ok := decodeSnapshot(data)
	if !ok {
		debug.Log("prefs: ignoring malformed snapshot under %s", s.key)
	}
	return d, ok
}

// schedule marks the snapshot dirty. The writer projects the state at
// write time, so bursts of changes collapse into one write of the latest
// theme.
func (s *Store) schedule() {
	if s.storage == nil {
		return
	}

	s.pmu.Lock()
	if s.closed {
		s.pmu.Unlock()
		return
	}
	s.dirty = true
	s.pmu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

func (s *Store) writeLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.kick:
			s.writePending()
		case ack := <-s.flushCh:
			s.writePending()
			close(ack)
		case <-s.stop:
			s.writePending()
			return
		}
	}
}

func (s *Store) writePending() {
	s.pmu.Lock()
	dirty := s.dirty
	s.dirty = false
	s.writing = dirty
	s.pmu.Unlock()
	if !dirty {
		return
	}
	defer func() {
		s.pmu.Lock()
		s.writing = false
		s.pmu.Unlock()
	}()

	data, err := encodeSnapshot(Project(s.State()))
	if err == nil {
		err = s.storage.SetItem(s.key, data)
	}
	if err != nil {
		s.setErr(fmt.Errorf("%w: write %s: %v", ErrPersistenceUnavailable, s.key, err))
		return
	}
	s.setErr(nil)
}

func (s *Store) setErr(err error) {
	if err != nil {
		debug.Log("prefs: %v", err)
	}
	s.pmu.Lock()
	s.lastErr = err
	s.pmu.Unlock()
}
