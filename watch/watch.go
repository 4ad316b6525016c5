// Package watch reloads a sidebar manifest whenever its file changes.
package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/navtree/errors"
	"github.com/grovetools/navtree/manifest"
)

// DefaultDebounce is how long the watcher waits after the last change
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// ChangeFunc receives each reload result. Exactly one of m and err is nil.
type ChangeFunc func(m *manifest.Manifest, err error)

// Watcher watches one manifest file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	target   string
	loader   *manifest.Loader
	debounce time.Duration
	logger   *logrus.Entry
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload. Non-positive values
// select DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for watch diagnostics.
func WithLogger(logger *logrus.Entry) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a watcher for the manifest at path. The containing directory
// is watched rather than the file so that editors which save by renaming
// a temporary file are noticed. When path is a symlink the target's
// directory is watched as well.
func New(path string, loader *manifest.Loader, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to resolve manifest path").
			WithDetail("path", path)
	}
	if loader == nil {
		loader = manifest.NewLoader()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create file watcher")
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	w := &Watcher{
		watcher:  fw,
		path:     abs,
		loader:   loader,
		debounce: DefaultDebounce,
		logger:   logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := []string{filepath.Dir(abs)}
	if info, err := os.Lstat(abs); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if target, err := filepath.EvalSymlinks(abs); err == nil {
			w.target = target
			if dir := filepath.Dir(target); dir != dirs[0] {
				dirs = append(dirs, dir)
			}
		} else {
			w.logger.WithError(err).Warnf("Failed to resolve symlink %s", abs)
		}
	}

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to watch manifest directory").
				WithDetail("path", dir)
		}
		w.logger.WithField("dir", dir).Debug("Watching directory")
	}
	return w, nil
}

// Path returns the absolute path of the watched manifest.
func (w *Watcher) Path() string {
	return w.path
}

// Run loads the manifest once, then again after every change, passing each
// result to onChange. It blocks until ctx is cancelled and closes the
// underlying watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	defer w.watcher.Close()

	w.reload(onChange)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.logger.Infof("Manifest changed: %s", filepath.Base(w.path))
			w.reload(onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == w.path || (w.target != "" && name == w.target)
}

func (w *Watcher) reload(onChange ChangeFunc) {
	m, err := w.loader.LoadFile(w.path)
	if err != nil {
		w.logger.WithError(err).Warn("Manifest reload failed")
		onChange(nil, err)
		return
	}
	onChange(m, nil)
}

// Close stops the watcher without waiting for Run to return.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
