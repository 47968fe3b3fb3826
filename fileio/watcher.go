package fileio

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/promptlens/promptlens/logging"
)

// Watcher monitors the loaded source files for changes after load. The
// dataset is immutable for the process lifetime, so a change only flips a
// staleness flag that the health endpoint reports; operators restart to
// pick up new data.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	stale   atomic.Bool
	stopCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher over the given source files. The parent
// directories are watched so replace-by-rename edits are seen too.
func NewWatcher(files []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsWatcher,
		files:   make(map[string]bool, len(files)),
		stopCh:  make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			logging.LogWarnf("cannot watch %s: %v", dir, err)
		}
	}

	return w, nil
}

// Start begins watching in the background.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return fmt.Errorf("watcher is already running")
	}
	w.running = true

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if w.stale.CompareAndSwap(false, true) {
					logging.LogWarnf("%s changed after load; dataset is stale until restart", event.Name)
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.LogWarnf("file watcher error: %v", err)
		case <-w.stopCh:
			return
		}
	}
}

// Stale reports whether any source file changed since load.
func (w *Watcher) Stale() bool {
	return w.stale.Load()
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopCh)
	return w.watcher.Close()
}
