package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher regenerates code when declaration files change.
type Watcher struct {
	// Files holds the declaration files to watch.
	Files []string

	// Generate is called to generate the code for a file.
	Generate func(path string) error

	// Generated, if non-nil, is called after each call to Generate.
	Generated func(path string, err error)

	// Debounce is how long to wait after a change before
	// regenerating, so that a burst of writes causes only one
	// generation.
	Debounce time.Duration

	Logger *zap.Logger
}

// Run generates the code for every file, then again for each file
// that changes, until ctx is done. Generation failures are logged,
// not returned.
func (w *Watcher) Run(ctx context.Context) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	files := make(map[string]string)
	for _, f := range w.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		files[abs] = f
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	// Watch directories rather than files so that files replaced
	// by editors are still seen.
	var dirs []string
	for abs := range files {
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	slices.Sort(dirs)
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("cannot watch %s: %w", dir, err)
		}
		logger.Debug("watching directory", zap.String("dir", dir))
	}

	for _, f := range w.Files {
		w.generate(f, logger)
	}

	pending := make(map[string]bool)
	// settled is nil while nothing is pending.
	var settled <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Debug("watcher stopped")
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path, ok := files[filepath.Clean(ev.Name)]
			if !ok || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("declaration file changed",
				zap.String("file", path),
				zap.Stringer("op", ev.Op),
			)
			pending[path] = true
			settled = time.After(w.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-settled:
			for _, f := range w.Files {
				if pending[f] {
					w.generate(f, logger)
					delete(pending, f)
				}
			}
			settled = nil
		}
	}
}

func (w *Watcher) generate(path string, logger *zap.Logger) {
	err := w.Generate(path)
	if err != nil {
		logger.Error("generation failed", zap.String("file", path), zap.Error(err))
	}
	if w.Generated != nil {
		w.Generated(path, err)
	}
}
