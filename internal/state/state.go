// Package state owns the live task collection for a session. There is
// exactly one writer; views subscribe to be recomputed after each
// successful replace.
package state

import (
	"sync"

	"github.com/jyang234/taskdeck/internal/model"
	"github.com/jyang234/taskdeck/internal/storage"
)

// Listener receives the new snapshot after a successful replace.
type Listener func(tasks []model.Task)

// Store holds the current collection snapshot, persists every accepted
// replacement, and notifies subscribers in registration order. Dispatch is
// synchronous: by the time Replace returns, storage and all views have
// seen the new snapshot.
type Store struct {
	mu        sync.Mutex
	tasks     []model.Task
	persist   *storage.Store
	listeners []Listener
}

// New creates a Store backed by the given persistence adapter.
func New(persist *storage.Store) *Store {
	return &Store{persist: persist}
}

// Load hydrates the store from persistent storage. Call once at startup.
func (s *Store) Load() error {
	tasks, err := s.persist.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the current snapshot.
func (s *Store) Get() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Subscribe registers a listener for future replacements.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Replace persists the new snapshot, installs it, and notifies all
// subscribers. If persistence fails the old snapshot stays in place and
// nobody is notified.
func (s *Store) Replace(tasks []model.Task) error {
	if err := s.persist.Save(tasks); err != nil {
		return err
	}

	s.mu.Lock()
	s.tasks = tasks
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(tasks)
	}
	return nil
}
