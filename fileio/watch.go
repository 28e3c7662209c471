package fileio

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to one file on disk. It watches the file's
// directory so replacements by rename, including Write's, are seen.
type Watcher struct {
	fsw    *fsnotify.Watcher
	logger *slog.Logger
	redraw func()

	mu   sync.Mutex
	path string
	dir  string

	changed chan string
	done    chan struct{}
}

func NewWatcher(opt Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fileio: watcher: %w", err)
	}
	w := &Watcher{
		fsw:     fsw,
		logger:  opt.Logger,
		redraw:  opt.Redraw,
		changed: make(chan string, 1),
		done:    make(chan struct{}),
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	go w.loop()
	return w, nil
}

// Watch switches the watcher to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("fileio: watch %s: %w", path, err)
		}
		path = abs
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if path == w.path {
		return nil
	}
	if w.dir != "" {
		_ = w.fsw.Remove(w.dir)
	}
	w.path, w.dir = "", ""
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("fileio: watch %s: %w", path, err)
	}
	w.path, w.dir = path, dir
	w.logger.Debug("watching file", "path", path)
	return nil
}

// Changed delivers the watched path after it was written, created or
// replaced. Bursts of events collapse into one pending notification.
func (w *Watcher) Changed() <-chan string { return w.changed }

// Poll returns a pending change notification without blocking.
func (w *Watcher) Poll() (string, bool) {
	select {
	case p := <-w.changed:
		return p, true
	default:
		return "", false
	}
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			path := w.path
			w.mu.Unlock()
			if path == "" || filepath.Clean(ev.Name) != path {
				continue
			}
			select {
			case w.changed <- path:
				if w.redraw != nil {
					w.redraw()
				}
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "err", err)
		}
	}
}
