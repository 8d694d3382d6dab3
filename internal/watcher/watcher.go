// Package watcher notices when the greenhouse file disappears from disk
// so the in-memory collection can be written back.
package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher calls onMissing when the target file is removed or renamed away.
// fsnotify cannot watch a missing file, so the parent directory is watched.
type Watcher struct {
	targetPath string
	parentPath string
	onMissing  func()
	watcher    *fsnotify.Watcher
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.Mutex
	running    bool
	closed     bool
	debounce   time.Duration
}

// New creates a Watcher for targetPath.
func New(targetPath string, onMissing func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		targetPath: filepath.Clean(targetPath),
		parentPath: filepath.Dir(filepath.Clean(targetPath)),
		onMissing:  onMissing,
		watcher:    fsw,
		ctx:        ctx,
		cancel:     cancel,
		debounce:   defaultDebounce,
	}, nil
}

// SetDebounce changes how long a removal must persist before onMissing runs.
func (w *Watcher) SetDebounce(debounce time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debounce = debounce
}

// Start begins watching.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return errors.New("watcher stopped")
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.parentPath); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}

	go w.watchLoop()
	return nil
}

// Stop ends watching and releases the fsnotify handle. A stopped watcher
// cannot be restarted.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	w.running = false
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.targetPath {
				continue
			}
			if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			log.Debug().Str("path", w.targetPath).Str("op", event.Op.String()).Msg("greenhouse file removed")
			if pending != nil {
				pending.Stop()
			}
			w.mu.Lock()
			debounce := w.debounce
			w.mu.Unlock()
			pending = time.AfterFunc(debounce, w.handleMissing)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.parentPath).Msg("watcher error")
		}
	}
}

func (w *Watcher) handleMissing() {
	if w.ctx.Err() != nil {
		return
	}
	if _, err := os.Stat(w.targetPath); !errors.Is(err, os.ErrNotExist) {
		return
	}
	log.Info().Str("path", w.targetPath).Msg("greenhouse file missing, rewriting")
	if w.onMissing != nil {
		w.onMissing()
	}
}
