package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KazKozDev/pathfinder/internal/config"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

// writeSequence writes each object as a JSON line and flushes; simulates the
// Ollama streaming response.
func writeSequence(w http.ResponseWriter, seq []map[string]any) {
	enc := json.NewEncoder(w)
	for _, obj := range seq {
		_ = enc.Encode(obj)
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}

func TestClient_Generate_AccumulatesStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/generate" {
			w.Header().Set("Content-Type", "application/json")
			writeSequence(w, []map[string]any{
				{"response": "Hello, ", "done": false},
				{"response": "world", "done": false},
				{"response": "!", "done": true},
			})
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cfg := config.OracleConfig{BaseURL: srv.URL, Model: "m", Timeout: 2 * time.Second}
	client, err := oracle.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	out, err := client.Generate(context.Background(), "", "p")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if out != "Hello, world!" {
		t.Fatalf("expected accumulated stream, got %q", out)
	}
}

func TestClient_Generate_NoRetryOnError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.OracleConfig{BaseURL: srv.URL, Model: "m", Timeout: 2 * time.Second}
	client, err := oracle.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	if _, err := client.Generate(context.Background(), "m", "p"); err == nil {
		t.Fatalf("expected error from failing server")
	}
	if attempts != 1 {
		t.Fatalf("a failed generation must not be retried: %d attempts", attempts)
	}
}

func TestClient_GenerateStructured_SendsFormat(t *testing.T) {
	var gotFormat json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Format json.RawMessage `json:"format"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotFormat = body.Format
		w.Header().Set("Content-Type", "application/json")
		writeSequence(w, []map[string]any{{"response": "[]", "done": true}})
	}))
	defer srv.Close()

	cfg := config.OracleConfig{BaseURL: srv.URL, Model: "m", Timeout: 2 * time.Second}
	client, err := oracle.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	schema := json.RawMessage(`{"type":"array"}`)
	if _, err := client.GenerateStructured(context.Background(), "m", "p", schema); err != nil {
		t.Fatalf("GenerateStructured error: %v", err)
	}
	if string(gotFormat) != string(schema) {
		t.Fatalf("schema not forwarded as format: %s", gotFormat)
	}
}

func TestSession_HistoryGrowsAcrossTurns(t *testing.T) {
	var lastMessages []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Messages []map[string]any `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		lastMessages = body.Messages
		w.Header().Set("Content-Type", "application/json")
		writeSequence(w, []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": "reply"}, "done": true},
		})
	}))
	defer srv.Close()

	cfg := config.OracleConfig{BaseURL: srv.URL, Model: "m", Timeout: 2 * time.Second}
	client, err := oracle.NewClient(cfg, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	defer client.Close()

	s := client.NewSession("m", "be the interviewer")
	if s.Len() != 1 {
		t.Fatalf("expected system message in history, len=%d", s.Len())
	}

	if _, err := s.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected system+user+assistant, len=%d", s.Len())
	}

	if _, err := s.Send(context.Background(), "next"); err != nil {
		t.Fatalf("second Send error: %v", err)
	}
	if len(lastMessages) != 4 {
		t.Fatalf("second turn must resend full history, got %d messages", len(lastMessages))
	}
	if lastMessages[0]["role"] != "system" {
		t.Fatalf("system instruction must lead the history: %#v", lastMessages[0])
	}
}

func TestRenderTemplate(t *testing.T) {
	tmpl := "Letter for {{JOB_TITLE}} at {{COMPANY}}. Data: {{JSON_DATA}}. Keep {{UNKNOWN}}."
	out := oracle.RenderTemplate(tmpl, map[string]string{
		"JOB_TITLE": "Engineer",
		"COMPANY":   "Acme",
		"JSON_DATA": `{"a":1}`,
	})
	want := `Letter for Engineer at Acme. Data: {"a":1}. Keep {{UNKNOWN}}.`
	if out != want {
		t.Fatalf("RenderTemplate mismatch:\n got %q\nwant %q", out, want)
	}

	if got := oracle.RenderTemplate("plain", nil); got != "plain" {
		t.Fatalf("template without vars must pass through, got %q", got)
	}
}
