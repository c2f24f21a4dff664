package editor

import "sync"

// Form is a modal edit flow: the draft is committed only by an explicit
// Save, discarded by Cancel, and Delete closes the form without a trailing
// save. Jobs and calendar events are edited this way.
type Form[T any] struct {
	save   func(T)
	remove func()

	mu    sync.Mutex
	draft T
	open  bool
}

func NewForm[T any](initial T, save func(T), remove func()) *Form[T] {
	return &Form[T]{draft: initial, save: save, remove: remove, open: true}
}

// Update replaces the draft. Nothing is persisted until Save.
func (f *Form[T]) Update(draft T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	f.draft = draft
}

func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form[T]) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Save commits the draft and closes the form.
func (f *Form[T]) Save() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	f.open = false
	f.save(f.draft)
}

// Cancel closes the form, discarding the draft.
func (f *Form[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}

// Delete removes the entity and closes the form. The draft is not saved.
func (f *Form[T]) Delete() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	f.open = false
	if f.remove != nil {
		f.remove()
	}
}
