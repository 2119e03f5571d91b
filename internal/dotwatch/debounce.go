package dotwatch

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of file events into one commit: every
// trigger resets the timer, so the action runs only after the repo has
// been quiet for the full delay.
type debouncer struct {
	timer *time.Timer
	fn    func()
	delay time.Duration
	mu    sync.Mutex
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

// trigger schedules the action, canceling any pending run.
func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// flush runs a pending action immediately. A no-op when nothing is pending.
func (d *debouncer) flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()

	if pending {
		d.fn()
	}
}

// stop cancels any pending action without running it.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
