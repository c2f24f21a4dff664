package models

import (
	"time"

	dbfs "github.com/KazKozDev/pathfinder/db"
)

// Settings is the application-wide singleton record. It is always stored
// under SettingsID and replaced wholesale on every update; there is no
// partial patch and no server-side defaulting of missing keys.
const SettingsID int64 = 1

type Profile struct {
	Name         string `json:"name"`
	WeeklyGoal   int    `json:"weeklyGoal"`
	MasterSkills string `json:"masterSkills"`
}

type Subscription struct {
	Plan            string `json:"plan"`
	Status          string `json:"status"`
	NextBillingDate int64  `json:"nextBillingDate"`
}

type Privacy struct {
	ShareAnonymizedData bool `json:"shareAnonymizedData"`
}

// Prompts holds the user-editable prompt templates. Templates use
// {{TOKEN}} placeholders substituted by pkg/oracle.RenderTemplate.
type Prompts struct {
	CoverLetter        string `json:"coverLetter"`
	ResumeChecker      string `json:"resumeChecker"`
	InterviewQuestions string `json:"interviewQuestions"`
	MixAgents          string `json:"mixAgents"`
}

type ToolSetting struct {
	Enabled bool `json:"enabled"`
}

type AgentConfig struct {
	Name   string                 `json:"name"`
	Prompt string                 `json:"prompt"`
	Tools  map[string]ToolSetting `json:"tools"`
}

type Settings struct {
	ID           int64                  `json:"id" db:"id"`
	Profile      Profile                `json:"profile" db:"profile"`
	Subscription Subscription           `json:"subscription" db:"subscription"`
	Privacy      Privacy                `json:"privacy" db:"privacy"`
	Prompts      Prompts                `json:"prompts" db:"prompts"`
	Agents       map[string]AgentConfig `json:"agents" db:"agents"`
}

// Tool describes an agent tool the user can toggle per agent.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AvailableTools lists the tools an agent config may enable.
var AvailableTools = []Tool{
	{ID: "google_search", Name: "Google Search", Description: "Access up-to-date information from the web."},
	{ID: "linkedin_analysis", Name: "LinkedIn Analysis", Description: "Analyze profiles and company pages on LinkedIn."},
}

const defaultInterviewPrompt = `You are an AI Interviewer. Your goal is to conduct a realistic mock interview for the user.
- Start by introducing yourself and asking the first question.
- Ask only ONE question at a time.
- After the user responds, ask a relevant follow-up question or move to the next topic.
- Keep your questions concise and professional.
- Base your questions on the provided job description and the user's resume.
- End the interview after about 5-7 questions by thanking the user for their time and providing brief, constructive feedback on their responses.

---
**JOB DESCRIPTION for "{{JOB_TITLE}}" at "{{COMPANY}}":**
{{JOB_DESCRIPTION}}
---
**CANDIDATE'S RESUME:**
{{RESUME_CONTENT}}
---

Begin the interview now.`

const defaultMixAgentsPrompt = `You are a helpful AI assistant for job seekers, acting as an orchestrator for a team of specialized agents. The user has enabled "Mix Agents" mode. Your goal is to provide a comprehensive answer by synthesizing insights from MULTIPLE relevant agents. Start each agent's contribution on a new line, clearly stating which agent is talking (e.g., "**Recruiter Agent:** ..."). Do not just pick one agent; combine their expertise. Below are the available agents, their specializations, and their enabled tools.`

func seedPrompt(name string) string {
	b, err := dbfs.SeedFiles.ReadFile("seed/" + name)
	if err != nil {
		return ""
	}
	return string(b)
}

// DefaultSettings returns the settings used when no row has been stored
// yet. The long cover-letter and resume-checker templates are embedded
// seed files; nothing is written to the store.
func DefaultSettings() Settings {
	return Settings{
		ID: SettingsID,
		Profile: Profile{
			Name:         "Alex Doe",
			WeeklyGoal:   5,
			MasterSkills: "JavaScript, HTML, CSS, React, Project Management, Agile Methodologies, UI/UX Design Principles, Figma, Public Speaking",
		},
		Subscription: Subscription{
			Plan:            "Premium",
			Status:          "Active",
			NextBillingDate: time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC).UnixMilli(),
		},
		Privacy: Privacy{ShareAnonymizedData: true},
		Prompts: Prompts{
			CoverLetter:        seedPrompt("cover_letter_v1.txt"),
			ResumeChecker:      seedPrompt("resume_checker_v1.txt"),
			InterviewQuestions: defaultInterviewPrompt,
			MixAgents:          defaultMixAgentsPrompt,
		},
		Agents: map[string]AgentConfig{
			"recruiter": {
				Name:   "Recruiter Agent",
				Prompt: "Specializes in HR processes, resume optimization, and negotiation strategies.",
				Tools: map[string]ToolSetting{
					"google_search":     {Enabled: false},
					"linkedin_analysis": {Enabled: true},
				},
			},
			"research": {
				Name:   "Research Agent",
				Prompt: "Conducts deep analysis of companies, industries, and interviewers.",
				Tools: map[string]ToolSetting{
					"google_search":     {Enabled: true},
					"linkedin_analysis": {Enabled: true},
				},
			},
			"coach": {
				Name:   "Coach Agent",
				Prompt: "Acts as a personal career coach, helping with interview practice, salary negotiation, and long-term career planning.",
				Tools: map[string]ToolSetting{
					"google_search":     {Enabled: false},
					"linkedin_analysis": {Enabled: false},
				},
			},
		},
	}
}
