package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ErrNoConfigDir is returned by Start when the config file's directory does
// not exist, which is the normal state before `animo config init`.
var ErrNoConfigDir = errors.New("config directory does not exist")

// Watcher reloads the config file when it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	onChange func(*Config)
	logger   *slog.Logger
	done     chan struct{}
	mu       sync.Mutex
	running  bool
	closed   bool
}

// NewWatcher creates a watcher for the config file at filePath. onChange is
// called from the watcher goroutine with every successfully reloaded config;
// invalid edits are logged and skipped.
func NewWatcher(filePath string, onChange func(*Config), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:  watcher,
		filePath: filePath,
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the file for changes.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory containing the file; editors often replace files
	// instead of writing them in place.
	dir := filepath.Dir(w.filePath)
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		w.setRunning(false)
		return fmt.Errorf("%w: %s", ErrNoConfigDir, dir)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.setRunning(false)
		return err
	}

	go w.watch()
	return nil
}

func (w *Watcher) setRunning(running bool) {
	w.mu.Lock()
	w.running = running
	w.mu.Unlock()
}

func (w *Watcher) watch() {
	filename := filepath.Base(w.filePath)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				cfg, err := LoadConfig(w.filePath)
				if err != nil {
					w.logger.Warn("ignoring invalid config change", "file", w.filePath, "error", err)
					continue
				}
				w.logger.Debug("config reloaded", "file", w.filePath)
				if w.onChange != nil {
					w.onChange(cfg)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.running {
		w.running = false
		close(w.done)
	}
	return w.watcher.Close()
}
