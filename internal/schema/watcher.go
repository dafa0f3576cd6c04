package schema

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gqldoc/internal/eventbus"
)

// Watcher reloads the schema file when it changes on disk and
// publishes the result on the event bus. Editors typically replace the
// file rather than write in place, so the parent directory is watched
// and events are filtered by name.
type Watcher struct {
	path    string
	bus     eventbus.EventBus
	watcher *fsnotify.Watcher
	settle  time.Duration
}

// NewWatcher creates a watcher for the given schema file.
func NewWatcher(path string, bus eventbus.EventBus) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:    path,
		bus:     bus,
		watcher: fsw,
		settle:  100 * time.Millisecond,
	}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			w.bus.Publish(eventbus.SchemaChangedEvent{Path: w.path})
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// reload re-parses the schema file and publishes the outcome.
func (w *Watcher) reload() {
	// Let the editor finish the write before reading
	time.Sleep(w.settle)

	s, err := Load(w.path)
	if err != nil {
		log.Printf("Schema reload failed: %v", err)
		w.bus.Publish(eventbus.SchemaErrorEvent{Path: w.path, Err: err})
		return
	}

	log.Printf("Schema reloaded from %s (%d types)", w.path, len(s.AST().Types))
	w.bus.Publish(eventbus.SchemaLoadedEvent{Path: w.path, Schema: s})
}
