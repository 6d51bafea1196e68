//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Notifier turns SIGWINCH and SIGINT/SIGTERM into flags the render loop
// polls once per tick. The watcher goroutine only stores into the two
// atomics; it never touches buffers or allocates on the signal path.
type Notifier struct {
	resized atomic.Bool
	quit    atomic.Bool

	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewNotifier creates a notifier with the resize flag pre-set, so the first
// tick always performs the initial geometry read and allocation.
func NewNotifier() *Notifier {
	n := &Notifier{
		sigCh:  make(chan os.Signal, 4),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	n.resized.Store(true)
	return n
}

// Start registers the signal handlers and begins the watcher.
func (n *Notifier) Start() {
	signal.Notify(n.sigCh, syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM)
	go n.watch()
}

// Stop unregisters the handlers and waits for the watcher to exit.
func (n *Notifier) Stop() {
	signal.Stop(n.sigCh)
	close(n.stopCh)
	<-n.doneCh
}

func (n *Notifier) watch() {
	defer close(n.doneCh)
	for {
		select {
		case <-n.stopCh:
			return
		case sig := <-n.sigCh:
			if sig == syscall.SIGWINCH {
				n.resized.Store(true)
			} else {
				n.quit.Store(true)
			}
		}
	}
}

// TakeResize reports whether a resize is pending and clears the flag.
// Only the render loop may call this.
func (n *Notifier) TakeResize() bool {
	return n.resized.Swap(false)
}

// QuitRequested reports whether shutdown has been requested.
func (n *Notifier) QuitRequested() bool {
	return n.quit.Load()
}

// RequestQuit sets the quit flag from within the process, for cooperative
// shutdown paths that do not go through a signal.
func (n *Notifier) RequestQuit() {
	n.quit.Store(true)
}

// RequestResize sets the resize flag from within the process, forcing a
// geometry re-read and full redraw on the next tick.
func (n *Notifier) RequestResize() {
	n.resized.Store(true)
}
