// Package watcher re-hashes files when they change on disk.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by rename-and-replace keep producing events.
package watcher

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aalvaropc/djbhash/internal/domain"
)

// HashFunc hashes the file at path.
type HashFunc func(ctx context.Context, path string) domain.Digest

// Event reports the state of a watched file after a burst of changes settled.
type Event struct {
	Path    string
	Removed bool
	Digest  domain.Digest
	At      time.Time
}

type Watcher struct {
	fsw      *fsnotify.Watcher
	hash     HashFunc
	debounce time.Duration
	log      *slog.Logger

	// absolute path -> name as given by the caller
	files map[string]string
}

type Option func(*Watcher)

// WithDebounce sets how long a file must be quiet before it is re-hashed.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

func New(paths []string, hash HashFunc, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindInvalidInput, Err: errors.New("no files to watch")}
	}

	w := &Watcher{
		hash:     hash,
		debounce: 200 * time.Millisecond,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		files:    map[string]string{},
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindInvalidInput, Path: p, Err: err}
		}
		info, err := os.Stat(abs)
		if err != nil {
			kind := domain.KindExecution
			if errors.Is(err, fs.ErrNotExist) {
				kind = domain.KindNotFound
			}
			return nil, &domain.OpError{Op: "watcher.new", Kind: kind, Path: p, Err: err}
		}
		if info.IsDir() {
			return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindInvalidInput, Path: p, Err: errors.New("is a directory")}
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: "watcher.new", Kind: domain.KindExecution, Err: err}
	}
	for d := range dirs {
		if err := fsw.Add(d); err != nil {
			_ = fsw.Close()
			return nil, &domain.OpError{Op: "watcher.add", Kind: domain.KindExecution, Path: d, Err: err}
		}
	}
	w.fsw = fsw
	return w, nil
}

// Run delivers events on out until ctx is done. It closes the underlying
// watcher before returning; a Watcher cannot be run twice.
func (w *Watcher) Run(ctx context.Context, out chan<- Event) error {
	defer w.fsw.Close()

	tick := w.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	pending := map[string]time.Time{}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if _, watched := w.files[filepath.Clean(ev.Name)]; !watched {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("watch.event", "path", ev.Name, "op", ev.Op.String())
			pending[filepath.Clean(ev.Name)] = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch.error", "error", err)

		case now := <-ticker.C:
			for _, abs := range settled(pending, now, w.debounce) {
				delete(pending, abs)
				e := w.snapshot(ctx, abs, now)
				select {
				case out <- e:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
}

func settled(pending map[string]time.Time, now time.Time, quiet time.Duration) []string {
	var out []string
	for p, last := range pending {
		if now.Sub(last) >= quiet {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (w *Watcher) snapshot(ctx context.Context, abs string, now time.Time) Event {
	name := w.files[abs]
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return Event{Path: name, Removed: true, At: now}
	}
	return Event{Path: name, Digest: w.hash(ctx, name), At: now}
}
