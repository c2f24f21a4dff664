package ai

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

// ResumeCheck scores a resume against a job description and renders a
// markdown analysis report. On failure the score is 0 and the report is the
// user-facing error text.
func (e *Engine) ResumeCheck(ctx context.Context, job *models.Job, resume *models.Resume, tmpl string) (int, string) {
	if len(strings.TrimSpace(job.Description)) < 50 {
		return 0, "Error: Job description is too short or missing. Please select a job with a detailed description."
	}
	if strings.TrimSpace(resume.Summary) == "" {
		return 0, "Error: Resume summary is missing. Please add a summary to your resume first."
	}
	if len(resume.Experience) == 0 {
		return 0, "Error: Resume has no work experience. Please add work experience to your resume first."
	}

	prompt := oracle.RenderTemplate(tmpl, map[string]string{
		"JOB_DESCRIPTION": job.Description,
		"RESUME_CONTENT":  resumeAsText(resume),
	})

	out, err := e.oracle.Generate(ctx, e.model, prompt)
	if err != nil {
		log.Printf("resume check: generate: %v", err)
		return 0, "Error: Could not perform analysis. Please try again."
	}

	rep, err := parseMatchReport(out)
	if err != nil {
		log.Printf("resume check: parse: %v; raw=%s", err, out)
		return 0, "Error: Could not perform analysis. Please try again."
	}

	return rep.overallScore(), buildMatchReport(rep)
}

// parseMatchReport decodes the checker response, tolerating markdown code
// fences and surrounding prose.
func parseMatchReport(s string) (*matchReport, error) {
	cleaned := stripCodeFences(s)
	j := extractJSON(cleaned)
	if j == "" {
		return nil, errNoJSON
	}

	var rep matchReport
	if err := json.Unmarshal([]byte(j), &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
