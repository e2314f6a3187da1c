// Package letter supplies the text of the letter overlay, either fixed or
// read from a file that is reloaded whenever it changes.
package letter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Source returns the current letter.
type Source interface {
	Text() string
}

// Static is a letter that never changes.
type Static string

func (s Static) Text() string { return string(s) }

// Load reads the letter at path.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read letter")
	}
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// Watcher keeps the letter in step with its file.
type Watcher struct {
	log      *zap.Logger
	path     string
	fsw      *fsnotify.Watcher
	debounce time.Duration
	text     atomic.String
}

// Watch loads the letter at path and reloads it after every change, once
// writes have been quiet for debounce. It stops when ctx is done or Close
// is called.
func Watch(ctx context.Context, log *zap.Logger, path string, debounce time.Duration) (*Watcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "letter path")
	}
	text, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create file watcher")
	}
	// editors often replace the file, so watch its directory
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}

	w := &Watcher{log: log, path: path, fsw: fsw, debounce: debounce}
	w.text.Store(text)
	go w.run(ctx)
	return w, nil
}

func (w *Watcher) Text() string { return w.text.Load() }

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	timer := time.NewTimer(0)
	<-timer.C
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("letter watcher", zap.Error(err))
		case <-timer.C:
			w.reload()
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

func (w *Watcher) reload() {
	text, err := Load(w.path)
	if err != nil {
		// keep the last good letter
		w.log.Warn("reload letter", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.text.Store(text)
	w.log.Info("letter reloaded", zap.String("path", w.path))
}
