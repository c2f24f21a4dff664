package editor

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder collects saved values.
type recorder struct {
	mu    sync.Mutex
	saved []string
}

func (r *recorder) save(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, v)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.saved))
	copy(out, r.saved)
	return out
}

func TestRapidUpdatesCoalesceToOneSave(t *testing.T) {
	rec := &recorder{}
	e := New(20*time.Millisecond, rec.save)
	defer e.Close()

	e.Update("d")
	e.Update("dr")
	e.Update("draft")
	time.Sleep(100 * time.Millisecond)

	got := rec.values()
	if len(got) != 1 {
		t.Fatalf("expected exactly one save, got %d: %v", len(got), got)
	}
	if got[0] != "draft" {
		t.Errorf("expected last draft saved, got %q", got[0])
	}
}

func TestEachQuietWindowSavesOnce(t *testing.T) {
	rec := &recorder{}
	e := New(20*time.Millisecond, rec.save)
	defer e.Close()

	e.Update("first")
	time.Sleep(100 * time.Millisecond)
	e.Update("second")
	time.Sleep(100 * time.Millisecond)

	got := rec.values()
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("unexpected saves: %v", got)
	}
}

func TestResetCancelsPendingSave(t *testing.T) {
	rec := &recorder{}
	e := New(20*time.Millisecond, rec.save)
	defer e.Close()

	e.Update("doomed")
	e.Reset("baseline")
	time.Sleep(100 * time.Millisecond)

	if got := rec.values(); len(got) != 0 {
		t.Errorf("expected no saves after reset, got %v", got)
	}

	// editing after a reset saves normally
	e.Update("fresh")
	time.Sleep(100 * time.Millisecond)
	if got := rec.values(); len(got) != 1 || got[0] != "fresh" {
		t.Errorf("unexpected saves: %v", got)
	}
}

func TestCloseCancelsAndDisables(t *testing.T) {
	rec := &recorder{}
	e := New(20*time.Millisecond, rec.save)

	e.Update("doomed")
	e.Close()
	e.Update("ignored")
	time.Sleep(100 * time.Millisecond)

	if got := rec.values(); len(got) != 0 {
		t.Errorf("expected no saves after close, got %v", got)
	}
}

func TestFormSaveCommitsDraft(t *testing.T) {
	rec := &recorder{}
	f := NewForm("initial", rec.save, nil)

	f.Update("edited")
	f.Save()

	if got := rec.values(); len(got) != 1 || got[0] != "edited" {
		t.Errorf("unexpected saves: %v", got)
	}
	if f.Open() {
		t.Error("form still open after save")
	}

	// a closed form ignores further edits and saves
	f.Update("late")
	f.Save()
	if got := rec.values(); len(got) != 1 {
		t.Errorf("closed form saved again: %v", got)
	}
}

func TestFormCancelDiscardsDraft(t *testing.T) {
	rec := &recorder{}
	f := NewForm("initial", rec.save, nil)

	f.Update("edited")
	f.Cancel()
	f.Save()

	if got := rec.values(); len(got) != 0 {
		t.Errorf("expected no saves, got %v", got)
	}
}

func TestFormDeleteSkipsTrailingSave(t *testing.T) {
	rec := &recorder{}
	deleted := false
	f := NewForm("initial", rec.save, func() { deleted = true })

	f.Update("edited")
	f.Delete()
	f.Save()

	if !deleted {
		t.Error("delete callback not called")
	}
	if got := rec.values(); len(got) != 0 {
		t.Errorf("expected no saves after delete, got %v", got)
	}
}
