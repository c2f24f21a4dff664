package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// SkillGap lists skills the job description asks for that are missing from
// the user's master skill list.
func (e *Engine) SkillGap(ctx context.Context, job *models.Job, masterSkills string) string {
	if job == nil || strings.TrimSpace(job.Description) == "" || strings.TrimSpace(masterSkills) == "" {
		return "Please select a job with a description and ensure your skills are listed in Settings."
	}

	prompt := fmt.Sprintf(`Analyze the following job description and identify key skills, technologies, or qualifications that are mentioned in the description but are MISSING from the provided user's skill list. Present the missing items as a simple, unnumbered list, with each item on a new line (e.g., using '- ' or '• '). If there are no significant missing skills, respond with "Your skills are a great match for this role!".

---
**USER'S SKILLS:**
%s
---
**JOB DESCRIPTION:**
%s
---

**MISSING SKILLS:**`, masterSkills, job.Description)

	out, err := e.oracle.Generate(ctx, e.model, prompt)
	if err != nil {
		log.Printf("skill gap: generate: %v", err)
		return "Error: Could not perform analysis. Please try again."
	}

	return out
}
