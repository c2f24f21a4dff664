package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/qri-io/jsonschema"
)

// Action is one coaching suggestion for the dashboard.
type Action struct {
	SuggestionText string `json:"suggestion_text"`
	ActionType     string `json:"action_type"`
	JobID          *int64 `json:"job_id,omitempty"`
}

const nextActionsSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "suggestion_text": {"type": "string"},
      "action_type": {"type": "string", "enum": ["PREPARE", "FOLLOW_UP", "APPLY", "REVIEW", "GOAL"]},
      "job_id": {"type": "number"}
    },
    "required": ["suggestion_text", "action_type"]
  }
}`

var nextActionsSchema = mustSchema(nextActionsSchemaJSON)

func mustSchema(s string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(s), rs); err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return rs
}

func errorAction() []Action {
	return []Action{{SuggestionText: "Could not generate suggestions. Try refreshing.", ActionType: "ERROR"}}
}

// NextActions asks the model for 3-5 concrete next steps based on the job
// pipeline. Any failure yields a single ERROR-typed placeholder action so
// the dashboard always has something to show.
func (e *Engine) NextActions(ctx context.Context, jobs []models.Job, weeklyGoal, recentApplications int) []Action {
	lines := make([]string, 0, len(jobs))
	for _, j := range jobs {
		applied := j.ApplicationDate
		if applied == "" {
			applied = "N/A"
		}
		next := j.NextStepDate
		if next == "" {
			next = "N/A"
		}
		lines = append(lines, fmt.Sprintf("- (ID: %d) %s at %s (Status: %s, Applied: %s, Next Step Date: %s)",
			j.ID, j.Title, j.Company, j.Status, applied, next))
	}
	jobsSummary := strings.Join(lines, "\n")
	if jobsSummary == "" {
		jobsSummary = "No jobs yet."
	}

	prompt := fmt.Sprintf(`You are an expert career coach AI. Analyze the user's current job pipeline and suggest 3-5 concrete, actionable next steps. Your goal is to keep the user motivated and on track.

RULES:
- Base your suggestions *only* on the provided data.
- Prioritize actions based on urgency (e.g., upcoming interviews) and opportunity (e.g., old applications needing follow-up).
- If a suggestion relates to a specific job, you MUST include its 'job_id'.
- Your entire response MUST be a valid JSON array matching the provided schema.

USER'S DATA:
- Weekly Application Goal: %d
- Applications This Week: %d
- Job Pipeline:
%s

---
Based on this, provide the next actions.`, weeklyGoal, recentApplications, jobsSummary)

	out, err := e.oracle.GenerateStructured(ctx, e.model, prompt, json.RawMessage(nextActionsSchemaJSON))
	if err != nil {
		log.Printf("next actions: generate: %v", err)
		return errorAction()
	}

	j := extractJSONArray(stripCodeFences(out))
	if j == "" {
		log.Printf("next actions: no JSON array in response: %s", out)
		return errorAction()
	}

	verrs, err := nextActionsSchema.ValidateBytes(ctx, []byte(j))
	if err != nil || len(verrs) > 0 {
		log.Printf("next actions: schema validation failed: %v %v", err, verrs)
		return errorAction()
	}

	var actions []Action
	if err := json.Unmarshal([]byte(j), &actions); err != nil {
		log.Printf("next actions: unmarshal: %v", err)
		return errorAction()
	}

	return actions
}
