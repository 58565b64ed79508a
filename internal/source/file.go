package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/driveaware/restrictwatch/internal/model"
)

// debounceDefault is the debounce interval for state file events. Editors
// and atomic-rename writers emit several events per save; only the last
// state matters.
const debounceDefault = 200 * time.Millisecond

// FileSource watches a restriction state file with fsnotify and pushes a
// snapshot on every change. The watch is on the parent directory so
// atomic-rename writes (tmpfile + rename over the target) are seen.
type FileSource struct {
	path     string
	debounce time.Duration
}

// NewFileSource creates a source backed by the given state file. The file
// must exist and parse at creation time; a broken platform source is
// reported here, not mid-run, so callers can fall back.
func NewFileSource(path string) (*FileSource, error) {
	if _, err := ReadStateFile(path); err != nil {
		return nil, err
	}
	return &FileSource{path: path, debounce: debounceDefault}, nil
}

// Run delivers the current snapshot, then watches for changes. A re-read
// failure mid-run keeps the last delivered snapshot; the file may be
// mid-write. Blocks until ctx is cancelled.
func (s *FileSource) Run(ctx context.Context, fn func(model.Snapshot)) error {
	snap, err := ReadStateFile(s.path)
	if err != nil {
		return err
	}
	fn(snap)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	// Single debounce timer, reset on each event. Initialized as stopped;
	// the first event starts it.
	debounceTimer := time.NewTimer(s.debounce)
	debounceTimer.Stop()
	defer debounceTimer.Stop()

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounceTimer.C:
			snap, err := ReadStateFile(s.path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "state file unreadable, keeping last snapshot: %v\n", err)
				continue
			}
			fn(snap)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if !debounceTimer.Stop() {
				select {
				case <-debounceTimer.C:
				default:
				}
			}
			debounceTimer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "file watcher error: %v\n", err)
		}
	}
}
