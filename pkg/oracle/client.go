package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/KazKozDev/pathfinder/internal/config"
	"github.com/ollama/ollama/api"
)

// Client wraps the Ollama API client. Requests are single-shot: a failed
// generation is reported to the caller as-is, never retried.
type Client struct {
	api    *api.Client
	cfg    config.OracleConfig
	client *http.Client

	closed int32 // atomic flag for Close()
}

// NewClient creates a new Ollama client wrapper.
func NewClient(cfg config.OracleConfig, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	u, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{
		api:    api.NewClient(u, httpClient),
		cfg:    cfg,
		client: httpClient,
	}
	logger.Info("oracle: NewClient created", slog.String("base_url", cfg.BaseURL), slog.Duration("timeout", cfg.Timeout))
	return c, nil
}

func NewDefaultClient(cfg config.OracleConfig) (*Client, error) {
	defaultClient := &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 15 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return NewClient(cfg, defaultClient)
}

// Model returns the configured default model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Close releases any resources held by the client. It closes idle
// connections on the underlying HTTP transport when supported. Close is
// idempotent and safe to call multiple times.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}
	if c.client != nil && c.client.Transport != nil {
		if tr, ok := c.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	return nil
}

// package-level logger for pkg/oracle; can be replaced by callers
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger sets the logger used by pkg/oracle. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Generate sends a prompt to the model and returns the accumulated response
// text. The streamed chunks are concatenated in arrival order.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	return c.generate(ctx, model, prompt, nil, nil)
}

// GenerateStructured is Generate with a JSON schema constraining the output.
func (c *Client) GenerateStructured(ctx context.Context, model, prompt string, schema json.RawMessage) (string, error) {
	return c.generate(ctx, model, prompt, schema, nil)
}

// GenerateWithImages is Generate with inline image attachments.
func (c *Client) GenerateWithImages(ctx context.Context, model, prompt string, images [][]byte) (string, error) {
	return c.generate(ctx, model, prompt, nil, images)
}

func (c *Client) generate(ctx context.Context, model, prompt string, format json.RawMessage, images [][]byte) (string, error) {
	if model == "" {
		model = c.cfg.Model
	}

	ctxReq, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := &api.GenerateRequest{Model: model, Prompt: prompt, Format: format}
	for _, img := range images {
		req.Images = append(req.Images, api.ImageData(img))
	}

	var sb strings.Builder
	start := time.Now()
	err := c.api.Generate(ctxReq, req, func(r api.GenerateResponse) error {
		sb.WriteString(r.Response)
		return nil
	})
	if err != nil {
		logger.Error("oracle: generate failed", slog.String("model", model), slog.Any("error", err))
		return "", fmt.Errorf("generate: %w", err)
	}

	logger.Debug("oracle: generate done", slog.String("model", model), slog.Int64("latency_ms", time.Since(start).Milliseconds()))
	return sb.String(), nil
}
