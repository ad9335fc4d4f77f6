package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports external writes to the state file: another tool editing the
// saved session while a run is open. One signal per write/create/rename of
// the state file; the channel closes when ctx ends.
//
// Our own atomic saves rename a temp file over the state path, so a session
// consuming Watch should drop signals that arrive right after its own Save.
func (s *Store) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory: rename-over-file breaks a direct file watch.
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch state dir: %w", err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer watcher.Close()
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != stateFileName {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
					// A signal is already pending; coalesce.
				}
			case <-watcher.Errors:
				// Watch errors are not fatal to the session.
			}
		}
	}()
	return changes, nil
}
