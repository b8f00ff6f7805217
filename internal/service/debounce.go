package service

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid repeated writes to the same key into a single
// commit of the most recent value after a quiescence window. Inline rate
// edits fire once per keystroke; only the final value hits the repository.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	pending map[string]*pendingWrite
	closed  bool
}

type pendingWrite struct {
	timer  *time.Timer
	commit func()
}

// NewDebouncer creates a debouncer with the given quiescence window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{
		window:  window,
		pending: make(map[string]*pendingWrite),
	}
}

// Schedule queues commit to run after the window elapses with no further
// Schedule calls for the same key. A newer call replaces the pending
// commit entirely; the older value is never written.
func (d *Debouncer) Schedule(key string, commit func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		commit()
		return
	}

	if p, ok := d.pending[key]; ok {
		p.timer.Stop()
	}

	p := &pendingWrite{commit: commit}
	p.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		if d.pending[key] == p {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		commit()
	})
	d.pending[key] = p
}

// Flush commits any pending write for the key immediately.
func (d *Debouncer) Flush(key string) {
	d.mu.Lock()
	p, ok := d.pending[key]
	if ok {
		p.timer.Stop()
		delete(d.pending, key)
	}
	d.mu.Unlock()
	if ok {
		p.commit()
	}
}

// Close flushes every pending write and makes subsequent Schedule calls
// commit synchronously. Used on shutdown so no edit is lost.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	pending := d.pending
	d.pending = make(map[string]*pendingWrite)
	d.mu.Unlock()

	for _, p := range pending {
		p.timer.Stop()
		p.commit()
	}
}
