package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KazKozDev/pathfinder/api"
	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/repository/mock"
	"github.com/gorilla/mux"
)

// newJobsRouter wires the jobs handler over an in-memory store, without
// the full route setup or a database.
func newJobsRouter(store *mock.Store) *mux.Router {
	h := api.NewJobsHandler(store)
	r := mux.NewRouter()
	r.HandleFunc("/api/jobs", h.List).Methods("GET")
	r.HandleFunc("/api/jobs", h.Create).Methods("POST")
	r.HandleFunc("/api/jobs/{id}", h.Get).Methods("GET")
	r.HandleFunc("/api/jobs/{id}", h.Delete).Methods("DELETE")
	return r
}

func TestJobsListFailingStoreReturns500(t *testing.T) {
	store := mock.NewStore()
	store.Err = errors.New("disk gone")
	r := newJobsRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Failed to fetch jobs" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestJobsCreateFailingStoreReturns500(t *testing.T) {
	store := mock.NewStore()
	store.Err = errors.New("disk gone")
	r := newJobsRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(`{"title": "Backend Engineer"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestJobsCreateRejectsMalformedBody(t *testing.T) {
	r := newJobsRouter(mock.NewStore())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader("{not json"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestJobsDeleteIsIdempotentOverStore(t *testing.T) {
	store := mock.NewStore()
	store.Jobs = []models.Job{{ID: 3, Title: "Backend Engineer", DateAdded: 1}}
	r := newJobsRouter(store)

	for range 2 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/jobs/3", nil))
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	}
	if len(store.Jobs) != 0 {
		t.Errorf("job not removed: %+v", store.Jobs)
	}
}

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	h := api.NewSettingsHandler(mock.NewStore())
	r := mux.NewRouter()
	r.HandleFunc("/api/settings", h.Get).Methods("GET")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got models.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if got.Profile.WeeklyGoal != 5 {
		t.Errorf("expected default weekly goal, got %d", got.Profile.WeeklyGoal)
	}
}
