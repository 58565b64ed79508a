package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/driveaware/restrictwatch/internal/model"
)

// pollDefault is the default polling interval when fsnotify is unavailable.
const pollDefault = 2 * time.Second

// PollSource watches a restriction state file by polling its mod time.
// Fallback for filesystems without inotify support (e.g. NFS).
type PollSource struct {
	path     string
	interval time.Duration
}

// NewPollSource creates a polling source. A zero interval uses the default.
func NewPollSource(path string, interval time.Duration) (*PollSource, error) {
	if _, err := ReadStateFile(path); err != nil {
		return nil, err
	}
	if interval == 0 {
		interval = pollDefault
	}
	return &PollSource{path: path, interval: interval}, nil
}

// Run delivers the current snapshot, then re-reads the file whenever its
// mod time advances. Blocks until ctx is cancelled.
func (s *PollSource) Run(ctx context.Context, fn func(model.Snapshot)) error {
	snap, err := ReadStateFile(s.path)
	if err != nil {
		return err
	}
	fn(snap)

	var lastMod time.Time
	if info, err := os.Stat(s.path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(s.path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			snap, err := ReadStateFile(s.path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "state file unreadable, keeping last snapshot: %v\n", err)
				continue
			}
			fn(snap)
		}
	}
}
