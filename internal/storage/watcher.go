package storage

import (
	"errors"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

var ErrWatchUnsupported = errors.New("storage backend does not support watching")

// SlotChangedMsg reports a slot rewritten by another process.
type SlotChangedMsg struct {
	Key string
}

type WatcherErrMsg struct {
	Err error
}

// Watcher notices slot files changed outside this process, the terminal
// equivalent of the browser's cross-tab storage event.
type Watcher struct {
	watcher  *fsnotify.Watcher
	store    *Store
	done     chan struct{}
	once     sync.Once
	onChange func(string)
}

func NewWatcher(store *Store) (*Watcher, error) {
	fb, ok := store.Backend().(*FileBackend)
	if !ok {
		return nil, ErrWatchUnsupported
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(fb.Dir()); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &Watcher{
		watcher: w,
		store:   store,
		done:    make(chan struct{}),
	}, nil
}

// Start returns a command that blocks until the next foreign slot change.
// Callers re-issue it after every message.
func (w *Watcher) Start() tea.Cmd {
	if w == nil {
		return nil
	}

	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}

				key, changed := w.foreignChange(event)
				if !changed {
					continue
				}

				if w.onChange != nil {
					w.onChange(key)
				}
				return SlotChangedMsg{Key: key}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return WatcherErrMsg{Err: err}
				}
			}
		}
	}
}

func (w *Watcher) foreignChange(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return "", false
	}

	key, ok := keyForPath(event.Name)
	if !ok {
		return "", false
	}

	data, err := os.ReadFile(event.Name)
	if err != nil {
		return "", false
	}

	if w.store.Matches(key, data) {
		return "", false
	}

	return key, true
}

// OnChange registers a callback invoked with the key of every foreign change.
func (w *Watcher) OnChange(fn func(string)) {
	if w == nil {
		return
	}
	w.onChange = fn
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})

	return closeErr
}
