package ai

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/KazKozDev/pathfinder/pkg/oracle"
)

type coverLetterCandidate struct {
	Name                       string `json:"name"`
	Email                      string `json:"email"`
	Phone                      string `json:"phone"`
	LinkedIn                   string `json:"linkedin"`
	Website                    string `json:"website"`
	QualificationAndExperience string `json:"qualificationAndExperience"`
	FullResumeContent          string `json:"fullResumeContent"`
}

type coverLetterJob struct {
	Position        string `json:"position"`
	Company         string `json:"company"`
	Source          string `json:"source"`
	FullDescription string `json:"fullDescription"`
	RecipientName   string `json:"recipientName"`
	RecipientRole   string `json:"recipientRole"`
	CompanyAddress  string `json:"companyAddress"`
}

type coverLetterData struct {
	Candidate   coverLetterCandidate `json:"candidate"`
	Job         coverLetterJob       `json:"job"`
	CurrentDate string               `json:"currentDate"`
}

// CoverLetter generates a cover letter for a job using the selected resume.
// The contact is the first one linked to the job, if any; it becomes the
// letter's recipient. Validation failures and backend errors come back as
// the user-facing text.
func (e *Engine) CoverLetter(ctx context.Context, job *models.Job, resume *models.Resume, contact *models.CrmContact, tmpl string) string {
	if len(strings.TrimSpace(job.Description)) < 50 {
		return "Error: Job description is too short or missing. Please select a job with a detailed description."
	}
	if strings.TrimSpace(resume.Summary) == "" {
		return "Error: Resume summary is missing. Please add a summary to your resume first."
	}
	if len(resume.Experience) == 0 {
		return "Error: Resume has no work experience. Please add work experience to your resume first."
	}

	source := job.SourceURL
	if source == "" {
		source = job.Source
	}
	if source == "" {
		source = "N/A"
	}
	description := job.Description
	if description == "" {
		description = "No description provided."
	}
	recipientName := "Hiring Manager"
	recipientRole := ""
	if contact != nil {
		recipientName = contact.Name
		recipientRole = contact.Role
	}

	data := coverLetterData{
		Candidate: coverLetterCandidate{
			Name:                       resume.Contact.Name,
			Email:                      resume.Contact.Email,
			Phone:                      resume.Contact.Phone,
			LinkedIn:                   resume.Contact.LinkedIn,
			Website:                    resume.Contact.Website,
			QualificationAndExperience: resume.Summary,
			FullResumeContent:          resumeAsText(resume),
		},
		Job: coverLetterJob{
			Position:        job.Title,
			Company:         job.Company,
			Source:          source,
			FullDescription: description,
			RecipientName:   recipientName,
			RecipientRole:   recipientRole,
			CompanyAddress:  job.Location,
		},
		CurrentDate: time.Now().Format("January 2, 2006"),
	}

	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("cover letter: marshal prompt data: %v", err)
		return "Error: Could not generate cover letter. Please try again."
	}

	prompt := oracle.RenderTemplate(tmpl, map[string]string{"JSON_DATA": string(blob)})

	out, err := e.oracle.Generate(ctx, e.model, prompt)
	if err != nil {
		log.Printf("cover letter: generate: %v", err)
		return "Error: Could not generate cover letter. Please try again."
	}
	if strings.TrimSpace(out) == "" {
		return "Error: Generated cover letter is empty. Please try again."
	}

	return out
}
