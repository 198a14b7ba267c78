package bind

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to an input map file so a game can reload
// bindings while running. It watches the file's directory rather than
// the file itself, because editors and atomic savers replace files by
// rename.
//
// The watcher only signals; it never touches a Map. The embedding loop
// drains Changes and calls Map.Load at a point where no queries are in
// flight, keeping the input layer single-threaded.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	changes chan string
	errs    chan error
	closeCh chan struct{}
	wg      sync.WaitGroup

	closeOnce sync.Once

	// debounce coalesces the event bursts editors produce for one save.
	debounce time.Duration
}

// NewWatcher starts watching the input map at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:       fw,
		path:     abs,
		changes:  make(chan string, 1),
		errs:     make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: 100 * time.Millisecond,
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers the map path after each detected modification.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors delivers watch errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerCh:
			select {
			case w.changes <- w.path:
			default:
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
