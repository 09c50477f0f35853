package server

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rafters-ui/rafters/internal/logging"
	"go.uber.org/zap"
)

// debounceWindow coalesces bursts of filesystem events. Static site builds
// rewrite many files in quick succession; one reload is enough.
const debounceWindow = 250 * time.Millisecond

// Watcher watches a docs directory tree and invokes a callback once per
// burst of changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	onChange func(path string)
	done     chan struct{}
}

// NewWatcher watches root and every subdirectory. onChange is called from
// the watcher's own goroutine after the debounce window closes, with the
// path of the last event in the burst.
func NewWatcher(root string, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		root:     root,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	if err := w.addRecursive(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

// addRecursive registers root and all nested directories with fsnotify.
// fsnotify watches are not recursive on their own.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) run() {
	var (
		timer    *time.Timer
		timerC   <-chan time.Time
		lastPath string
	)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// New directories need their own watch
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						logging.Warn("Failed to watch new directory",
							zap.String("path", event.Name),
							zap.Error(err),
						)
					}
				}
			}

			if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
				continue
			}

			logging.Debug("Filesystem event",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()),
			)

			lastPath = event.Name
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange(lastPath)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Warn("Watcher error", zap.Error(err))
		}
	}
}
