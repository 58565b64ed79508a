// Package state holds the one piece of derived state the app reacts to:
// the current blocked-function set. The set is recomputed in full on every
// snapshot and replaced wholesale, so observers always see a consistent
// snapshot and no in-place mutation ever happens.
package state

import (
	"sync"

	"github.com/driveaware/restrictwatch/internal/model"
)

// Store is the reactive container for the current restriction state.
type Store struct {
	mu       sync.RWMutex
	snapshot model.Snapshot
	blocked  model.BlockedSet
	subs     []func(model.BlockedSet)
}

// NewStore creates a store with the no-restriction state installed.
func NewStore() *Store {
	return &Store{blocked: model.Decode(nil)}
}

// Apply installs a new restriction snapshot: decodes it, replaces the
// blocked set atomically, and notifies subscribers outside the lock.
// Most-recent-wins; subscribers are called in subscription order.
func (s *Store) Apply(snap model.Snapshot) {
	blocked := model.Decode(&snap)

	s.mu.Lock()
	s.snapshot = snap
	s.blocked = blocked
	subs := make([]func(model.BlockedSet), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(blocked)
	}
}

// Subscribe registers fn for blocked-set replacements and immediately
// delivers the current set, mirroring the platform's subscription contract
// of one synchronous initial value.
func (s *Store) Subscribe(fn func(model.BlockedSet)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	current := s.blocked
	s.mu.Unlock()

	fn(current)
}

// Blocked returns the current blocked-function set.
func (s *Store) Blocked() model.BlockedSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blocked
}

// Snapshot returns the most recently applied restriction snapshot.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
