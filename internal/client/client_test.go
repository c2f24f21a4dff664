package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/KazKozDev/pathfinder/internal/client"
	"github.com/KazKozDev/pathfinder/pkg/models"
)

// fakeAPI is a canned REST backend. Collections are fixed responses; paths
// listed in fail return 500.
type fakeAPI struct {
	jobs     []models.Job
	resumes  []models.Resume
	contacts []models.CrmContact
	events   []models.CalendarEvent
	settings *models.Settings
	fail     map[string]bool

	mu       sync.Mutex
	requests []string
}

func (f *fakeAPI) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		if f.fail[r.URL.Path] {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
			return
		}

		switch {
		case r.URL.Path == "/api/jobs" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.jobs)
		case r.URL.Path == "/api/jobs" && r.Method == http.MethodPost:
			var j models.Job
			json.NewDecoder(r.Body).Decode(&j)
			j.ID = 7
			j.DateAdded = 1700000000000
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(j)
		case strings.HasPrefix(r.URL.Path, "/api/jobs/") && r.Method == http.MethodPut:
			var j models.Job
			json.NewDecoder(r.Body).Decode(&j)
			json.NewEncoder(w).Encode(j)
		case strings.HasPrefix(r.URL.Path, "/api/jobs/") && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/api/resumes":
			json.NewEncoder(w).Encode(f.resumes)
		case r.URL.Path == "/api/contacts":
			json.NewEncoder(w).Encode(f.contacts)
		case r.URL.Path == "/api/events" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode(f.events)
		case r.URL.Path == "/api/events" && r.Method == http.MethodPost:
			var ev models.CalendarEvent
			json.NewDecoder(r.Body).Decode(&ev)
			ev.ID = 31
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(ev)
		case strings.HasPrefix(r.URL.Path, "/api/events/") && r.Method == http.MethodPut:
			var ev models.CalendarEvent
			json.NewDecoder(r.Body).Decode(&ev)
			json.NewEncoder(w).Encode(ev)
		case r.URL.Path == "/api/settings":
			s := f.settings
			if s == nil {
				def := models.DefaultSettings()
				s = &def
			}
			json.NewEncoder(w).Encode(s)
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	})
	return mux
}

func newCache(t *testing.T, f *fakeAPI) *client.Cache {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(func() {
		srv.Close()
		srv.Client().CloseIdleConnections()
	})
	return client.NewCache(client.NewClient(srv.URL, srv.Client()))
}

func TestLoadBecomesReadyDespiteFailures(t *testing.T) {
	f := &fakeAPI{
		contacts: []models.CrmContact{{ID: 1, Name: "Dana Voss"}},
		fail:     map[string]bool{"/api/jobs": true, "/api/settings": true},
	}
	cache := newCache(t, f)

	if cache.Ready() {
		t.Fatal("cache ready before load")
	}
	cache.Load(context.Background())

	if !cache.Ready() {
		t.Fatal("cache not ready after load")
	}
	if got := cache.Jobs(); len(got) != 0 {
		t.Errorf("expected empty jobs after failed load, got %d", len(got))
	}
	if got := cache.Contacts(); len(got) != 1 || got[0].Name != "Dana Voss" {
		t.Errorf("unexpected contacts: %+v", got)
	}
	// failed settings load falls back to defaults
	if got := cache.Settings(); got.Profile.Name != "Alex Doe" {
		t.Errorf("expected default settings, got %q", got.Profile.Name)
	}
}

func TestAddJobMergesServerResponse(t *testing.T) {
	f := &fakeAPI{}
	cache := newCache(t, f)
	cache.Load(context.Background())

	created, err := cache.AddJob(context.Background(), &models.Job{Title: "Backend Engineer"})
	if err != nil {
		t.Fatalf("failed to add job: %v", err)
	}
	if created.ID != 7 || created.DateAdded == 0 {
		t.Errorf("server fields not applied: %+v", created)
	}
	jobs := cache.Jobs()
	if len(jobs) != 1 || jobs[0].ID != 7 {
		t.Errorf("cache not updated: %+v", jobs)
	}
}

func TestFailedMutationLeavesCacheUntouched(t *testing.T) {
	f := &fakeAPI{jobs: []models.Job{{ID: 1, Title: "Backend Engineer", Notes: "original"}}}
	cache := newCache(t, f)
	cache.Load(context.Background())

	f.fail = map[string]bool{"/api/jobs/1": true}
	edited := cache.Jobs()[0]
	edited.Notes = "edited"
	if _, err := cache.UpdateJob(context.Background(), &edited); err == nil {
		t.Fatal("expected an error")
	}

	if got := cache.Jobs()[0].Notes; got != "original" {
		t.Errorf("cache changed after failed update: %q", got)
	}
}

func TestSaveEventCreatesOrUpdates(t *testing.T) {
	f := &fakeAPI{}
	cache := newCache(t, f)
	cache.Load(context.Background())

	created, err := cache.SaveEvent(context.Background(), &models.CalendarEvent{Title: "Screening call", Date: "2026-09-10"})
	if err != nil {
		t.Fatalf("failed to save event: %v", err)
	}
	if created.ID != 31 {
		t.Errorf("expected server id, got %d", created.ID)
	}

	created.Title = "Screening call (rescheduled)"
	if _, err := cache.SaveEvent(context.Background(), created); err != nil {
		t.Fatalf("failed to update event: %v", err)
	}

	var sawPost, sawPut bool
	requests := f.seen()
	for _, r := range requests {
		switch r {
		case "POST /api/events":
			sawPost = true
		case "PUT /api/events/31":
			sawPut = true
		}
	}
	if !sawPost || !sawPut {
		t.Errorf("expected create then update, saw %v", requests)
	}

	events := cache.Events()
	if len(events) != 1 || events[0].Title != "Screening call (rescheduled)" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestContactsForJobSkipsDanglingIDs(t *testing.T) {
	f := &fakeAPI{
		contacts: []models.CrmContact{{ID: 1, Name: "Dana Voss"}, {ID: 2, Name: "Sam Reed"}},
	}
	cache := newCache(t, f)
	cache.Load(context.Background())

	job := &models.Job{ID: 5, ContactIDs: []int64{2, 99, 1}}
	got := cache.ContactsForJob(job)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(got))
	}
	if got[0].Name != "Sam Reed" || got[1].Name != "Dana Voss" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestParseJSONFields(t *testing.T) {
	m := map[string]any{
		"tags":       `["remote", "go"]`,
		"salaryInfo": `{"range": "100-120k"}`,
		"notes":      "{not json",
		"title":      "Backend Engineer",
		"interest":   float64(4),
	}
	got := client.ParseJSONFields(m)

	if _, ok := got["tags"].([]any); !ok {
		t.Errorf("tags not parsed: %T", got["tags"])
	}
	obj, ok := got["salaryInfo"].(map[string]any)
	if !ok || obj["range"] != "100-120k" {
		t.Errorf("salaryInfo not parsed: %v", got["salaryInfo"])
	}
	// unparseable strings are preserved verbatim
	if got["notes"] != "{not json" {
		t.Errorf("notes changed: %v", got["notes"])
	}
	if got["title"] != "Backend Engineer" || got["interest"] != float64(4) {
		t.Errorf("plain values changed: %v %v", got["title"], got["interest"])
	}
}
