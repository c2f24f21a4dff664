// Package editor provides the two edit flows: debounced autosave for
// resumes, contacts and settings, and modal forms for jobs and calendar
// events.
package editor

import (
	"sync"
	"time"
)

// Debounce windows per entity kind.
const (
	ResumeWindow   = 500 * time.Millisecond
	ContactWindow  = 500 * time.Millisecond
	SettingsWindow = time.Second
)

// Editor is a debounced autosaver. Every Update re-arms the timer; when the
// window elapses with no further edit, exactly one save fires with the last
// draft. Each editor owns its timer.
type Editor[T any] struct {
	window time.Duration
	save   func(T)

	mu     sync.Mutex
	timer  *time.Timer
	draft  T
	gen    uint64
	closed bool
}

func New[T any](window time.Duration, save func(T)) *Editor[T] {
	return &Editor[T]{window: window, save: save}
}

// Update records the draft and restarts the debounce window.
func (e *Editor[T]) Update(draft T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.draft = draft
	e.gen++
	gen := e.gen
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.window, func() { e.flush(gen) })
}

// flush runs on the timer goroutine. The save callback runs under the
// mutex so Close and Reset can guarantee no save fires after they return;
// the callback must not call back into the editor.
func (e *Editor[T]) flush(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || gen != e.gen {
		return
	}
	e.timer = nil
	e.save(e.draft)
}

// Reset switches the edited entity: any pending save is cancelled without
// firing and the editor adopts value as the new baseline.
func (e *Editor[T]) Reset(value T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.draft = value
}

// Close cancels any pending save. No save fires after Close returns, and
// further Updates are ignored.
func (e *Editor[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.closed = true
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
