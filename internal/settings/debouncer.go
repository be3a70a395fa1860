package settings

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default debounce window for file reloads.
const DefaultDebounceDuration = 100 * time.Millisecond

// debouncer coalesces bursts of file events into one reload.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

func newDebouncer(duration time.Duration) *debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &debouncer{duration: duration}
}

// trigger schedules callback after the debounce window, replacing any pending one.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		// A timer that fired after being superseded must not run.
		if current {
			callback()
		}
	})
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
