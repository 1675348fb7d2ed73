package store

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"VRSuite-Go/models"
)

// Watcher reloads the settings file when it is rewritten outside the
// application (an editor, a sync tool) and hands the fresh record to
// OnChange. Events are debounced because editors typically fire several
// writes per save.
type Watcher struct {
	store    *Store
	OnChange func(models.VRSettings)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWatcher(store *Store) *Watcher {
	return &Watcher{store: store}
}

// Start begins watching the settings file's directory in a background
// goroutine. Calling Start twice restarts the watch.
func (w *Watcher) Start() error {
	w.Stop()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(w.store.Path)); err != nil {
		fsw.Close()
		return err
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.wg.Add(1)
	go w.run(fsw)
	return nil
}

// Stop terminates the watch goroutine and waits for it to exit.
func (w *Watcher) Stop() {
	if w.cancel != nil {
		w.cancel()
		w.wg.Wait()
		w.cancel = nil
	}
}

func (w *Watcher) run(fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	const debounce = 200 * time.Millisecond
	var timer *time.Timer
	var timerC <-chan time.Time

	target := filepath.Clean(w.store.Path)

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			log.Printf("Settings file changed on disk, reloading: %s", w.store.Path)
			if w.OnChange != nil {
				w.OnChange(w.store.Load())
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: settings watcher error: %v", err)
		}
	}
}
