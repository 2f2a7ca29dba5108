package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LinuxLinusDE/AudioSwitcher/internal/logging"
)

// suppressGrace is added to the settle delay when muting paths the handler
// produced, so the rename events of an in-place replace are swallowed.
const suppressGrace = 2 * time.Second

// Handler processes one settled file and returns the paths it wrote, which
// the watcher then ignores for a short window.
type Handler func(ctx context.Context, path string) (produced []string, err error)

// Options configures a Watcher.
type Options struct {
	Dir    string
	Settle time.Duration
	// Match selects candidate files by path. Nil accepts everything.
	Match func(path string) bool
	// Ignore rejects paths that Match accepted, such as known output names.
	Ignore func(path string) bool
}

// Watcher hands newly created files in one directory to a Handler after they
// stop changing. Files are handled one at a time in the Run goroutine.
type Watcher struct {
	opts    Options
	handler Handler
	logger  *slog.Logger
	fs      *fsnotify.Watcher

	pending    map[string]time.Time
	suppressed map[string]time.Time
	now        func() time.Time
}

// New starts watching opts.Dir. Call Run to process events and Close when done.
func New(opts Options, handler Handler, logger *slog.Logger) (*Watcher, error) {
	if handler == nil {
		return nil, errors.New("watch handler is nil")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(opts.Dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}
	if opts.Settle < 0 {
		opts.Settle = 0
	}
	return &Watcher{
		opts:       opts,
		handler:    handler,
		logger:     logging.NewComponentLogger(logger, "watch"),
		fs:         fsw,
		pending:    make(map[string]time.Time),
		suppressed: make(map[string]time.Time),
		now:        time.Now,
	}, nil
}

// Close stops the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watching for new videos",
		logging.String(logging.FieldEventType, "watch_start"),
		logging.String("dir", w.opts.Dir),
		logging.Duration("settle", w.opts.Settle),
	)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			w.observe(event)
			w.arm(timer)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			w.logger.Warn("watcher error",
				logging.String(logging.FieldEventType, "watch_error"),
				logging.Error(err),
			)

		case <-timer.C:
			if err := w.flush(ctx); err != nil {
				return err
			}
			w.arm(timer)
		}
	}
}

func (w *Watcher) observe(event fsnotify.Event) {
	path := filepath.Clean(event.Name)
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		delete(w.pending, path)
		return
	case event.Has(fsnotify.Create):
	case event.Has(fsnotify.Write):
		if _, ok := w.pending[path]; !ok {
			return
		}
	default:
		return
	}
	if !w.accepts(path) {
		return
	}
	w.pending[path] = w.now().Add(w.opts.Settle)
}

func (w *Watcher) accepts(path string) bool {
	if w.opts.Match != nil && !w.opts.Match(path) {
		return false
	}
	if w.opts.Ignore != nil && w.opts.Ignore(path) {
		w.logger.Debug("ignoring produced file", logging.String("path", path))
		return false
	}
	if until, ok := w.suppressed[path]; ok {
		if w.now().Before(until) {
			return false
		}
		delete(w.suppressed, path)
	}
	return true
}

func (w *Watcher) arm(timer *time.Timer) {
	if len(w.pending) == 0 {
		timer.Stop()
		return
	}
	var next time.Time
	for _, deadline := range w.pending {
		if next.IsZero() || deadline.Before(next) {
			next = deadline
		}
	}
	timer.Reset(max(next.Sub(w.now()), 0))
}

// flush handles every pending path whose settle deadline has passed, in path
// order.
func (w *Watcher) flush(ctx context.Context) error {
	now := w.now()
	var due []string
	for path, deadline := range w.pending {
		if !deadline.After(now) {
			due = append(due, path)
		}
	}
	sort.Strings(due)

	for _, path := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		delete(w.pending, path)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		w.handle(ctx, path)
	}
	return nil
}

func (w *Watcher) handle(ctx context.Context, path string) {
	w.logger.Info("new video detected",
		logging.String(logging.FieldEventType, "watch_detected"),
		logging.String("path", path),
	)
	produced, err := w.handler(ctx, path)
	until := w.now().Add(w.opts.Settle + suppressGrace)
	for _, p := range produced {
		p = filepath.Clean(p)
		w.suppressed[p] = until
		delete(w.pending, p)
	}
	if err != nil {
		w.logger.Warn("watch handler failed",
			logging.String(logging.FieldEventType, "watch_handler_failed"),
			logging.String("path", path),
			logging.Error(err),
		)
	}
}
