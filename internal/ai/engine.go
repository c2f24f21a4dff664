package ai

import (
	"context"
	"encoding/json"

	"github.com/KazKozDev/pathfinder/internal/config"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

// Chatter is a stateful chat turn-taker, one per mock interview.
type Chatter interface {
	Send(ctx context.Context, content string) (string, error)
}

// Oracle is the model backend the engine talks to. *oracle.Client satisfies
// it through WrapClient; tests substitute stubs.
type Oracle interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	GenerateStructured(ctx context.Context, model, prompt string, schema json.RawMessage) (string, error)
	GenerateWithImages(ctx context.Context, model, prompt string, images [][]byte) (string, error)
	NewSession(model, system string) Chatter
}

type clientOracle struct {
	c *oracle.Client
}

func (o clientOracle) Generate(ctx context.Context, model, prompt string) (string, error) {
	return o.c.Generate(ctx, model, prompt)
}

func (o clientOracle) GenerateStructured(ctx context.Context, model, prompt string, schema json.RawMessage) (string, error) {
	return o.c.GenerateStructured(ctx, model, prompt, schema)
}

func (o clientOracle) GenerateWithImages(ctx context.Context, model, prompt string, images [][]byte) (string, error) {
	return o.c.GenerateWithImages(ctx, model, prompt, images)
}

func (o clientOracle) NewSession(model, system string) Chatter {
	return o.c.NewSession(model, system)
}

// WrapClient adapts an oracle client to the engine's Oracle interface.
func WrapClient(c *oracle.Client) Oracle {
	return clientOracle{c: c}
}

// Engine runs the AI tools. Every tool returns user-facing text: a backend
// failure or unusable model output becomes a placeholder string, never an
// error the caller has to interpret.
type Engine struct {
	oracle Oracle
	model  string
}

func NewEngine(o Oracle, cfg config.OracleConfig) *Engine {
	return &Engine{oracle: o, model: cfg.Model}
}
