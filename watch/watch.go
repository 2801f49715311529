// Package watch reloads binding files when they change on disk.
//
// A Watcher observes one or more binding files (JSON or TOML, see
// bind.Loader). When a watched file is written, the watcher reloads
// every watched file into a fresh table and delivers it to all
// subscribers. The host applies the new table between ticks — swapping
// a resolver's table mid-tick is exactly the mutation the tick model
// forbids, so the watcher never touches a live table itself.
//
//	w, err := watch.New("bindings.json")
//	id, tables := w.Subscribe()
//	defer w.Unsubscribe(id)
//	...
//	select {
//	case table := <-tables:
//	    resolver = bind.NewResolver(table) // between ticks
//	default:
//	}
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/dshills/actionmap/bind"
)

// Watcher errors
var (
	// ErrWatcherClosed is returned by operations on a closed watcher.
	ErrWatcherClosed = errors.New("watcher is closed")
	// ErrNoFiles is returned when New is called without files.
	ErrNoFiles = errors.New("no binding files to watch")
)

// DefaultDebounce is how long the watcher waits after a change before
// reloading, coalescing the bursts of events editors produce per save.
const DefaultDebounce = 50 * time.Millisecond

// Watcher reloads binding files on change and fans the resulting
// tables out to subscribers.
type Watcher struct {
	mu sync.Mutex

	fsw    *fsnotify.Watcher
	loader *bind.Loader

	// files maps absolute watched file paths.
	files map[string]bool

	subs     map[string]chan *bind.Table[string]
	errs     chan error
	debounce time.Duration

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the reload debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a watcher over the given binding files and starts its
// event loop. The files' directories are watched rather than the files
// themselves, so editors that replace files on save are still seen.
func New(files []string, opts ...Option) (*Watcher, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		loader:   bind.NewLoader(),
		files:    make(map[string]bool),
		subs:     make(map[string]chan *bind.Table[string]),
		errs:     make(chan error, 16),
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]bool)
	for _, path := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Subscribe registers a reload listener. The returned channel has a
// one-table buffer holding the most recent reload; stale tables are
// replaced, not queued. Use the returned ID with Unsubscribe.
func (w *Watcher) Subscribe() (string, <-chan *bind.Table[string]) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan *bind.Table[string], 1)
	w.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a reload listener. Unknown IDs are ignored.
func (w *Watcher) Unsubscribe(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if ch, ok := w.subs[id]; ok {
		delete(w.subs, id)
		close(ch)
	}
}

// Errors returns the channel of reload errors. Errors are dropped when
// the channel is full.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Reload forces an immediate reload and broadcast, without waiting for
// a file event. Useful for delivering the initial table.
func (w *Watcher) Reload() {
	w.reload()
}

// Close stops the watcher and closes all subscriber channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()

	w.mu.Lock()
	for id, ch := range w.subs {
		delete(w.subs, id)
		close(ch)
	}
	w.mu.Unlock()

	return w.fsw.Close()
}

// loop processes fsnotify events, debouncing reloads.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// relevant reports whether an fsnotify event touches a watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[abs]
}

// reload loads every watched file into one fresh table and broadcasts
// it. Files that fail to load surface on the error channel and the
// broadcast is skipped, leaving subscribers on their last good table.
func (w *Watcher) reload() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	w.mu.Unlock()

	table := bind.NewTable[string]()
	for _, path := range paths {
		if err := w.loader.LoadFileInto(path, table); err != nil {
			w.sendError(err)
			return
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		// Replace a stale undelivered table with the fresh one.
		select {
		case ch <- table:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- table:
			default:
			}
		}
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
