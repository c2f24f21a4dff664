package ai

import (
	"context"
	"log"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

// ValidationError reports input rejected before any oracle call is made.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// ErrInterviewSetup is returned when the interview cannot start because the
// selected job or resume is unusable.
var ErrInterviewSetup error = &ValidationError{msg: "please select a job (with a description) and a resume"}

// Interview is one running mock interview: a chat session seeded with the
// interviewer system prompt. The transcript lives only in the session.
type Interview struct {
	chat Chatter
}

// StartInterview opens a chat session for the job and resume and returns
// the interviewer's opening message.
func (e *Engine) StartInterview(ctx context.Context, job *models.Job, resume *models.Resume, tmpl string) (*Interview, string, error) {
	if job == nil || resume == nil || strings.TrimSpace(job.Description) == "" {
		return nil, "", ErrInterviewSetup
	}

	system := oracle.RenderTemplate(tmpl, map[string]string{
		"JOB_TITLE":       job.Title,
		"COMPANY":         job.Company,
		"JOB_DESCRIPTION": job.Description,
		"RESUME_CONTENT":  resumeAsText(resume),
	})

	iv := &Interview{chat: e.oracle.NewSession(e.model, system)}
	opening, err := iv.Send(ctx, "Start the interview.")
	if err != nil {
		return nil, "", err
	}

	return iv, opening, nil
}

// Send forwards the candidate's answer and returns the interviewer's reply.
// On a backend error the reply is the closing placeholder text and the
// caller should end the interview.
func (iv *Interview) Send(ctx context.Context, message string) (string, error) {
	out, err := iv.chat.Send(ctx, message)
	if err != nil {
		log.Printf("interview: chat: %v", err)
		return "Sorry, I encountered an error. The interview will now end.", err
	}
	return out, nil
}
