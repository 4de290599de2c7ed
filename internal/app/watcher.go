package app

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for on-disk changes and invokes a
// callback when the content is rewritten. The parent directory is
// watched rather than the file itself so atomic rename-replace saves
// (the common editor save strategy) are still observed.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func()
	log      *Logger

	// Debounce window: save operations often emit several events.
	debounce time.Duration

	closeOnce sync.Once
	closeCh   chan struct{}
	doneWg    sync.WaitGroup
}

// NewFileWatcher creates and starts a watcher for path. onChange is
// invoked from the watcher goroutine; callers are responsible for
// marshaling back onto their event loop.
func NewFileWatcher(path string, onChange func(), log *Logger) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	if log == nil {
		log = NullLogger
	}

	w := &FileWatcher{
		watcher:  fsw,
		path:     abs,
		onChange: onChange,
		log:      log.WithComponent("watcher"),
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	w.doneWg.Add(1)
	go w.loop()
	return w, nil
}

// Close stops the watcher. Safe to call multiple times.
func (w *FileWatcher) Close() {
	w.closeOnce.Do(func() {
		close(w.closeCh)
		_ = w.watcher.Close()
		w.doneWg.Wait()
	})
}

// loop drains fsnotify events until closed.
func (w *FileWatcher) loop() {
	defer w.doneWg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("file event: %s", ev)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			timer = nil
			timerCh = nil
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// relevant reports whether the event concerns the watched file's
// content.
func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if ev.Name != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
