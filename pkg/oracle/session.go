package oracle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ollama/ollama/api"
)

// Session is a stateful chat with the model. The full message history,
// including the system instruction, is resent on every turn.
type Session struct {
	client *Client
	model  string

	mu      sync.Mutex
	history []api.Message
}

// NewSession starts a chat session with the given system instruction.
func (c *Client) NewSession(model, system string) *Session {
	if model == "" {
		model = c.cfg.Model
	}
	s := &Session{client: c, model: model}
	if system != "" {
		s.history = append(s.history, api.Message{Role: "system", Content: system})
	}
	return s
}

// Send appends a user turn, runs the chat, records the assistant reply in
// the history, and returns the reply text.
func (s *Session) Send(ctx context.Context, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, api.Message{Role: "user", Content: content})

	ctxReq, cancel := context.WithTimeout(ctx, s.client.cfg.Timeout)
	defer cancel()

	req := &api.ChatRequest{Model: s.model, Messages: s.history}

	var sb strings.Builder
	err := s.client.api.Chat(ctxReq, req, func(r api.ChatResponse) error {
		sb.WriteString(r.Message.Content)
		return nil
	})
	if err != nil {
		// drop the unanswered turn so a later Send does not replay it
		s.history = s.history[:len(s.history)-1]
		return "", fmt.Errorf("chat: %w", err)
	}

	reply := sb.String()
	s.history = append(s.history, api.Message{Role: "assistant", Content: reply})
	return reply, nil
}

// Len reports the number of messages in the history, system included.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
