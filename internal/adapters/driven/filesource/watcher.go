package filesource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/certcheck/internal/logger"
)

// DefaultSettleDelay is how long a file must go without events before it
// is reported.
const DefaultSettleDelay = 500 * time.Millisecond

// Watcher reports certificate files that appear or change in a directory.
// A file is reported once writes to it have settled. Events are delivered
// on a single unbuffered channel so consumers handle them one at a time.
type Watcher struct {
	root   string
	settle time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	seen    map[string]fileStamp
}

// fileStamp identifies a file version so repeated write events for the
// same content are reported once.
type fileStamp struct {
	size    int64
	modTime time.Time
}

// NewWatcher creates a watcher for root. Nothing is watched until Watch.
func NewWatcher(root string) *Watcher {
	return &Watcher{
		root:   root,
		settle: DefaultSettleDelay,
		seen:   make(map[string]fileStamp),
	}
}

// WithSettleDelay sets how long a file must stay quiet before it is reported.
func (w *Watcher) WithSettleDelay(d time.Duration) *Watcher {
	w.settle = d
	return w
}

// Root returns the watched directory.
func (w *Watcher) Root() string {
	return w.root
}

// Watch starts watching the root directory and returns a channel of file
// paths. The channel closes when ctx is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path is not a directory: %s", w.root)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(w.root); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.root, err)
	}

	w.mu.Lock()
	w.watcher = fsw
	w.mu.Unlock()

	paths := make(chan string)
	go w.loop(ctx, fsw, paths)
	return paths, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, paths chan<- string) {
	done := make(chan struct{})
	ready := make(chan string)
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
		close(done)
		close(paths)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			path, ok := w.handleFsEvent(event)
			if !ok {
				continue
			}
			if t, ok := pending[path]; ok {
				t.Reset(w.settle)
				continue
			}
			pending[path] = time.AfterFunc(w.settle, func() {
				select {
				case ready <- path:
				case <-done:
				}
			})
		case path := <-ready:
			delete(pending, path)
			if !w.settled(path) {
				continue
			}
			select {
			case paths <- path:
			case <-ctx.Done():
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent returns the path an event concerns, if it may need
// analysing. Only creates and writes of visible, supported regular files
// count.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
			w.forget(event.Name)
		}
		return "", false
	}

	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil {
		rel = event.Name
	}
	if isHidden(rel) || !IsSupported(event.Name) {
		return "", false
	}

	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}

	logger.Debug("watch: %s %s", event.Op, event.Name)
	return event.Name, true
}

// settled reports whether path should be emitted now that writes have
// stopped. A file whose size and mtime match the last report is skipped.
func (w *Watcher) settled(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() == 0 {
		return false
	}

	stamp := fileStamp{size: info.Size(), modTime: info.ModTime()}
	w.mu.Lock()
	defer w.mu.Unlock()
	if prev, ok := w.seen[path]; ok && prev == stamp {
		return false
	}
	w.seen[path] = stamp
	return true
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	delete(w.seen, path)
	w.mu.Unlock()
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}

// isHidden reports whether any path component starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if len(part) > 1 && part[0] == '.' && part != ".." {
			return true
		}
	}
	return false
}
