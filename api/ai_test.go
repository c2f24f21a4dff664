package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KazKozDev/pathfinder/internal/ai"
	"github.com/KazKozDev/pathfinder/pkg/models"
)

// stubOracle serves canned model output so the handlers can be exercised
// without a running backend.
type stubOracle struct {
	response    string
	err         error
	chatReplies []string
}

func (s *stubOracle) Generate(ctx context.Context, model, prompt string) (string, error) {
	return s.response, s.err
}

func (s *stubOracle) GenerateStructured(ctx context.Context, model, prompt string, schema json.RawMessage) (string, error) {
	return s.response, s.err
}

func (s *stubOracle) GenerateWithImages(ctx context.Context, model, prompt string, images [][]byte) (string, error) {
	return s.response, s.err
}

func (s *stubOracle) NewSession(model, system string) ai.Chatter {
	return &stubChat{replies: s.chatReplies}
}

type stubChat struct {
	replies []string
	i       int
}

func (c *stubChat) Send(ctx context.Context, content string) (string, error) {
	if c.i >= len(c.replies) {
		return "", errors.New("backend unavailable")
	}
	r := c.replies[c.i]
	c.i++
	return r, nil
}

func seedJobAndResume(t *testing.T, srv *httptest.Server) (models.Job, models.Resume) {
	t.Helper()

	_, body := doJSON(t, srv, http.MethodPost, "/api/jobs", models.Job{
		Title:       "Backend Engineer",
		Company:     "Initech",
		Description: strings.Repeat("Build and operate Go services. ", 4),
	})
	var job models.Job
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("failed to decode job: %v", err)
	}

	_, body = doJSON(t, srv, http.MethodPost, "/api/resumes", models.Resume{
		Name:    "Backend v2",
		Contact: models.ResumeContact{Name: "Alex Doe", Email: "alex@example.com"},
		Summary: "Backend engineer with eight years of Go.",
		Experience: []models.WorkExperience{
			{ID: 1, Role: "Engineer", Company: "Globex", StartDate: "2019", EndDate: "Present", Description: "Built services."},
		},
		Skills: "Go, SQL, Docker",
	})
	var resume models.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		t.Fatalf("failed to decode resume: %v", err)
	}

	return job, resume
}

func TestCoverLetterEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{response: "Dear Hiring Manager,\n\nI am writing to apply."})
	job, resume := seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/cover-letter", map[string]int64{
		"jobId": job.ID, "resumeId": resume.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !strings.HasPrefix(got["text"], "Dear Hiring Manager") {
		t.Errorf("unexpected text: %q", got["text"])
	}
}

func TestCoverLetterMissingJobReturns404(t *testing.T) {
	srv := newServer(t, &stubOracle{})

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/ai/cover-letter", map[string]int64{
		"jobId": 404, "resumeId": 1,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestResumeCheckEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{response: `{"overall_match_percentage": 72}`})
	job, resume := seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/resume-check", map[string]int64{
		"jobId": job.ID, "resumeId": resume.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var got struct {
		Score  int    `json:"score"`
		Report string `json:"report"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got.Score != 72 {
		t.Errorf("expected score 72, got %d", got.Score)
	}
	if !strings.Contains(got.Report, "Resume Analysis Report") {
		t.Errorf("unexpected report: %q", got.Report)
	}
}

func TestNextActionsEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{
		response: `[{"suggestion_text": "Apply to Initech today.", "action_type": "APPLY", "job_id": 1}]`,
	})
	seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/next-actions", map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var got struct {
		Actions []ai.Action `json:"actions"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(got.Actions) != 1 || got.Actions[0].ActionType != "APPLY" {
		t.Fatalf("unexpected actions: %+v", got.Actions)
	}
}

func TestSkillGapEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{response: "**MATCHING SKILLS:** Go\n\n**MISSING SKILLS:** Kubernetes"})
	job, _ := seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/skill-gap", map[string]int64{"jobId": job.ID})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !strings.Contains(got["text"], "MISSING SKILLS") {
		t.Errorf("unexpected text: %q", got["text"])
	}

	resp, _ = doJSON(t, srv, http.MethodPost, "/api/ai/skill-gap", map[string]int64{"jobId": 404})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestAssistantEndpoint(t *testing.T) {
	srv := newServer(t, &stubOracle{response: "You have one tracked job at Initech."})
	seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/assistant", map[string]any{
		"message": "What jobs am I tracking?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if got["text"] != "You have one tracked job at Initech." {
		t.Errorf("unexpected text: %q", got["text"])
	}
}

func TestInterviewLifecycle(t *testing.T) {
	srv := newServer(t, &stubOracle{
		chatReplies: []string{
			"Welcome. Tell me about yourself.",
			"Interesting. What is your biggest weakness?",
		},
	})
	job, resume := seedJobAndResume(t, srv)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/ai/interview", map[string]int64{
		"jobId": job.ID, "resumeId": resume.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, body)
	}
	var started struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &started); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if started.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if started.Message != "Welcome. Tell me about yourself." {
		t.Errorf("unexpected opening: %q", started.Message)
	}

	turnPath := "/api/ai/interview/" + started.SessionID
	resp, body = doJSON(t, srv, http.MethodPost, turnPath, map[string]string{"message": "I build Go services."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var turn struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &turn); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !strings.Contains(turn.Message, "weakness") {
		t.Errorf("unexpected reply: %q", turn.Message)
	}

	// the stub is out of replies: the backend failure ends the session
	resp, body = doJSON(t, srv, http.MethodPost, turnPath, map[string]string{"message": "Perfectionism."})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &turn); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if turn.Message != "Sorry, I encountered an error. The interview will now end." {
		t.Errorf("unexpected closing: %q", turn.Message)
	}

	resp, _ = doJSON(t, srv, http.MethodPost, turnPath, map[string]string{"message": "Hello?"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after session ended, got %d", resp.StatusCode)
	}
}

func TestInterviewRequiresJobDescription(t *testing.T) {
	srv := newServer(t, &stubOracle{chatReplies: []string{"Welcome."}})

	_, body := doJSON(t, srv, http.MethodPost, "/api/jobs", models.Job{Title: "Mystery Role", Company: "Initech"})
	var job models.Job
	if err := json.Unmarshal(body, &job); err != nil {
		t.Fatalf("failed to decode job: %v", err)
	}
	_, resume := seedJobAndResume(t, srv)

	resp, _ := doJSON(t, srv, http.MethodPost, "/api/ai/interview", map[string]int64{
		"jobId": job.ID, "resumeId": resume.ID,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestEndInterview(t *testing.T) {
	srv := newServer(t, &stubOracle{chatReplies: []string{"Welcome.", "Next question."}})
	job, resume := seedJobAndResume(t, srv)

	_, body := doJSON(t, srv, http.MethodPost, "/api/ai/interview", map[string]int64{
		"jobId": job.ID, "resumeId": resume.ID,
	})
	var started struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.Unmarshal(body, &started); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	path := fmt.Sprintf("/api/ai/interview/%s", started.SessionID)
	resp, _ := doJSON(t, srv, http.MethodDelete, path, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, srv, http.MethodPost, path, map[string]string{"message": "Still there?"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after ending, got %d", resp.StatusCode)
	}
}
