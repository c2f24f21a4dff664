package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KazKozDev/pathfinder/api"
	dbfs "github.com/KazKozDev/pathfinder/db"
	"github.com/KazKozDev/pathfinder/internal/ai"
	"github.com/KazKozDev/pathfinder/internal/config"
	dbpkg "github.com/KazKozDev/pathfinder/internal/db"
	"github.com/KazKozDev/pathfinder/pkg/models"
)

func newServer(t *testing.T, o ai.Oracle) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	d, err := dbpkg.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	engine := ai.NewEngine(o, config.DefaultOracleConfig())
	srv := httptest.NewServer(api.SetupRoutes("test", "now", d, engine))
	t.Cleanup(func() {
		srv.Close()
		srv.Client().CloseIdleConnections()
	})
	return srv
}

func doJSON(t *testing.T, srv *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, out.Bytes()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	// served at the root and under the API base path
	for _, path := range []string{"/health", "/api/health"} {
		resp, body := doJSON(t, srv, http.MethodGet, path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
		var got map[string]string
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatalf("GET %s: failed to decode body: %v", path, err)
		}
		if got["status"] != "OK" {
			t.Errorf("GET %s: expected status OK, got %q", path, got["status"])
		}
		if got["timestamp"] == "" {
			t.Errorf("GET %s: expected a timestamp", path)
		}
	}
}

func TestJobLifecycle(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	resp, body := doJSON(t, srv, http.MethodPost, "/api/jobs", models.Job{
		Title:   "Backend Engineer",
		Company: "Initech",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}
	var created models.Job
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode created job: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-assigned id")
	}
	if created.DateAdded == 0 {
		t.Error("expected server-assigned dateAdded")
	}
	if created.Status != models.StatusWishlist {
		t.Errorf("expected default status %q, got %q", models.StatusWishlist, created.Status)
	}

	resp, body = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/jobs/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var fetched models.Job
	if err := json.Unmarshal(body, &fetched); err != nil {
		t.Fatalf("failed to decode job: %v", err)
	}
	if fetched.Title != "Backend Engineer" || fetched.Company != "Initech" {
		t.Errorf("unexpected job: %+v", fetched)
	}

	// the path id wins over any id in the body
	update := fetched
	update.ID = 9999
	update.Status = models.StatusApplied
	resp, body = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/jobs/%d", created.ID), update)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var updated models.Job
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("failed to decode updated job: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, updated.ID)
	}
	if updated.Status != models.StatusApplied {
		t.Errorf("expected status %q, got %q", models.StatusApplied, updated.Status)
	}
	if updated.DateAdded != created.DateAdded {
		t.Errorf("dateAdded changed on update: %d != %d", updated.DateAdded, created.DateAdded)
	}

	resp, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	// deleting again is not an error
	resp, _ = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 on repeat delete, got %d", resp.StatusCode)
	}

	resp, body = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/jobs/%d", created.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	var errBody map[string]string
	if err := json.Unmarshal(body, &errBody); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errBody["error"] != "Job not found" {
		t.Errorf("unexpected error message: %q", errBody["error"])
	}
}

func TestUpdateMissingJobReturns404(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	resp, _ := doJSON(t, srv, http.MethodPut, "/api/jobs/42", models.Job{Title: "Ghost"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, srv, http.MethodGet, "/api/jobs/not-a-number", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.StatusCode)
	}
}

func TestListJobsEmptyIsArray(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	resp, body := doJSON(t, srv, http.MethodGet, "/api/jobs", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := string(bytes.TrimSpace(body)); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	resp, body := doJSON(t, srv, http.MethodGet, "/api/settings", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var settings models.Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if settings.Profile.Name != "Alex Doe" {
		t.Errorf("expected default profile, got %q", settings.Profile.Name)
	}

	settings.Profile.Name = "Jordan Smith"
	settings.Profile.WeeklyGoal = 9
	settings.Agents = nil
	resp, body = doJSON(t, srv, http.MethodPut, "/api/settings", settings)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	// the replacement is wholesale: the dropped agents stay dropped
	_, body = doJSON(t, srv, http.MethodGet, "/api/settings", nil)
	var stored models.Settings
	if err := json.Unmarshal(body, &stored); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if stored.Profile.Name != "Jordan Smith" || stored.Profile.WeeklyGoal != 9 {
		t.Errorf("profile not replaced: %+v", stored.Profile)
	}
	if len(stored.Agents) != 0 {
		t.Errorf("expected agents dropped, got %d", len(stored.Agents))
	}
}

func TestContactUpdateBumpsLastInteraction(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	_, body := doJSON(t, srv, http.MethodPost, "/api/contacts", models.CrmContact{
		Name:    "Dana Voss",
		Company: "Initech",
	})
	var created models.CrmContact
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("failed to decode contact: %v", err)
	}

	created.Notes = "followed up"
	_, body = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/contacts/%d", created.ID), created)
	var updated models.CrmContact
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("failed to decode contact: %v", err)
	}
	if updated.LastInteraction < created.LastInteraction {
		t.Errorf("lastInteraction went backwards: %d < %d", updated.LastInteraction, created.LastInteraction)
	}
	if updated.Notes != "followed up" {
		t.Errorf("notes not updated: %q", updated.Notes)
	}
}
