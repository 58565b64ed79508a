// Package source supplies restriction snapshots to the core. A Source stands
// in for the host platform's restriction manager: it delivers one snapshot
// synchronously at subscription time and pushes a new one on every state
// change. Most-recent-wins; the core holds no queue.
package source

import (
	"context"

	"github.com/driveaware/restrictwatch/internal/model"
)

// Source delivers restriction snapshots to a callback.
type Source interface {
	// Run delivers the current snapshot synchronously, then pushes updates
	// until ctx is cancelled. Run blocks for its whole lifetime.
	Run(ctx context.Context, fn func(model.Snapshot)) error
}

// Static is a Source with a fixed snapshot. It delivers the snapshot once
// and then blocks until ctx is cancelled; no updates ever follow.
type Static struct {
	snapshot model.Snapshot
}

// NewStatic creates a source that always reports the given snapshot.
func NewStatic(snap model.Snapshot) *Static {
	return &Static{snapshot: snap}
}

// Fallback returns the source used when no platform restriction source can
// be established: an explicit no-restriction snapshot, so the decoder sees
// a well-formed input instead of an error.
func Fallback() *Static {
	return NewStatic(model.NoRestrictions())
}

// Run implements Source.
func (s *Static) Run(ctx context.Context, fn func(model.Snapshot)) error {
	fn(s.snapshot)
	<-ctx.Done()
	return nil
}
