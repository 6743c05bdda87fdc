package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/abhisek/gopherlings/internal/curriculum"
	"github.com/abhisek/gopherlings/internal/queue"
)

// Notifier turns fsnotify events under the exercises directory into raw
// debouncer signals.
type Notifier struct {
	w      *fsnotify.Watcher
	index  map[string]int
	guard  *PauseGuard
	deb    *Debouncer
	events *queue.Queue[Event]
	log    *slog.Logger
}

// NewNotifier watches dir and every directory below it. Changed files are
// matched to exercises by Exercise.Path.
func NewNotifier(dir string, exercises []curriculum.Exercise, guard *PauseGuard, deb *Debouncer, events *queue.Queue[Event], log *slog.Logger) (*Notifier, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	index := make(map[string]int, len(exercises))
	for i, e := range exercises {
		index[filepath.Clean(e.Path)] = i
	}

	n := &Notifier{
		w:      w,
		index:  index,
		guard:  guard,
		deb:    deb,
		events: events,
		log:    log,
	}
	if err := n.addTree(dir, nil); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return n, nil
}

// addTree watches root and every directory below it. Known exercise files
// found on the way are passed to found.
func (n *Notifier) addTree(root string, found func(i int) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return n.w.Add(path)
		}
		if i, ok := n.lookup(path); ok && found != nil {
			return found(i)
		}
		return nil
	})
}

// Run forwards file events until ctx is cancelled or the watcher fails.
func (n *Notifier) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-n.w.Events:
			if !ok {
				return nil
			}
			if err := n.handle(ctx, ev); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return n.fail(err)
			}

		case err, ok := <-n.w.Errors:
			if !ok {
				return nil
			}
			return n.fail(err)
		}
	}
}

func (n *Notifier) fail(err error) error {
	werr := &WatcherError{Err: err}
	n.events.Push(WatcherFailed{Err: werr})
	return werr
}

func (n *Notifier) handle(ctx context.Context, ev fsnotify.Event) error {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return nil
	}

	notify := func(i int) error {
		if n.guard.Paused() {
			return nil
		}
		return n.deb.Notify(ctx, i)
	}

	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			n.log.Debug("watching new directory", "path", ev.Name)
			return n.addTree(ev.Name, notify)
		}
	}

	i, ok := n.lookup(ev.Name)
	if !ok {
		n.log.Debug("ignoring change of unknown file", "path", ev.Name)
		return nil
	}
	return notify(i)
}

// Close stops the underlying watcher.
func (n *Notifier) Close() error {
	return n.w.Close()
}

// lookup maps a changed file to the index of its exercise.
func (n *Notifier) lookup(path string) (int, bool) {
	i, ok := n.index[filepath.Clean(path)]
	return i, ok
}
