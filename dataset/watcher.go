package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/costar/collab"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher re-reads a dataset file whenever it changes and hands the parsed
// groups to OnChange. A file that fails to parse is logged and skipped; the
// consumer keeps whatever it built last.
type Watcher struct {
	Path     string
	Log      *logrus.Logger
	Debounce time.Duration
	// OnChange receives freshly parsed groups. A returned error is logged.
	OnChange func(groups []collab.Group) error
	// OnError, if set, is told about parse and OnChange failures.
	OnError func(err error)
}

// Run watches until ctx is done. The parent directory is watched rather than
// the file itself so that editors which save by rename are followed.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return fmt.Errorf("dataset watcher: OnChange is required")
	}
	log := w.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("dataset watcher: resolve %s: %w", w.Path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dataset watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("dataset watcher add %s: %w", filepath.Dir(target), err)
	}
	log.WithField("path", target).Info("watching dataset for changes")

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("dataset watcher error")
		case <-timer.C:
			w.reload(log, target)
		}
	}
}

func (w *Watcher) reload(log *logrus.Logger, path string) {
	groups, err := LoadFile(path)
	if err != nil {
		log.WithError(err).Warn("dataset reload skipped: file invalid")
		w.fail(err)

		return
	}
	if err := w.OnChange(groups); err != nil {
		log.WithError(err).Warn("dataset reload rejected")
		w.fail(err)

		return
	}
	log.WithField("groups", len(groups)).Info("dataset reloaded")
}

func (w *Watcher) fail(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
