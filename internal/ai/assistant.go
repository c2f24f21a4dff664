package ai

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
	"github.com/ledongthuc/pdf"
)

// Attachment is a file the user sent along with an assistant message.
type Attachment struct {
	Name string
	MIME string
	Data []byte
}

// AssistantRequest is one turn of the general assistant.
type AssistantRequest struct {
	Message   string
	MixAgents bool
	File      *Attachment

	Jobs     []models.Job
	Resumes  []models.Resume
	Settings *models.Settings
}

const simpleAssistantPrompt = `You are a helpful AI assistant for a job seeker. Answer the user's question directly and concisely. You have access to the following context about the user's job search.`

// Assistant answers a single chat turn. The system instruction carries the
// user's pipeline context; in mix-agents mode it also lists every configured
// agent with its specialization and enabled tools.
func (e *Engine) Assistant(ctx context.Context, req AssistantRequest) string {
	jobList := make([]string, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		jobList = append(jobList, fmt.Sprintf("%s at %s (Status: %s)", j.Title, j.Company, j.Status))
	}
	resumeList := make([]string, 0, len(req.Resumes))
	for _, r := range req.Resumes {
		resumeList = append(resumeList, r.Name)
	}
	jobs := strings.Join(jobList, ", ")
	if jobs == "" {
		jobs = "None"
	}
	resumes := strings.Join(resumeList, ", ")
	if resumes == "" {
		resumes = "None"
	}
	dataContext := fmt.Sprintf("\n\n**USER'S DATA CONTEXT:**\n- **Tracked Jobs**: %s.\n- **Available Resumes**: %s.", jobs, resumes)

	var system string
	if req.MixAgents {
		system = req.Settings.Prompts.MixAgents + agentDescriptions(req.Settings) + dataContext
	} else {
		system = simpleAssistantPrompt + dataContext
	}

	prompt := system + "\n\n" + req.Message

	var images [][]byte
	if req.File != nil {
		switch {
		case strings.HasPrefix(req.File.MIME, "image/"):
			images = append(images, req.File.Data)
		case req.File.MIME == "application/pdf":
			text, err := pdfText(req.File.Data)
			if err != nil {
				log.Printf("assistant: pdf extract %s: %v", req.File.Name, err)
				text = "(could not extract text from the attached PDF)"
			}
			prompt += fmt.Sprintf("\n\n**ATTACHED FILE %q:**\n%s", req.File.Name, text)
		default:
			prompt += fmt.Sprintf("\n\n**ATTACHED FILE %q:**\n%s", req.File.Name, string(req.File.Data))
		}
	}

	var (
		out string
		err error
	)
	if len(images) > 0 {
		out, err = e.oracle.GenerateWithImages(ctx, e.model, prompt, images)
	} else {
		out, err = e.oracle.Generate(ctx, e.model, prompt)
	}
	if err != nil {
		log.Printf("assistant: generate: %v", err)
		return "Sorry, I encountered an error. Please try again."
	}

	return out
}

// agentDescriptions renders the configured agents for the mix-agents system
// instruction, in stable key order.
func agentDescriptions(s *models.Settings) string {
	keys := make([]string, 0, len(s.Agents))
	for k := range s.Agents {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		agent := s.Agents[k]
		var enabled []string
		for _, tool := range models.AvailableTools {
			if ts, ok := agent.Tools[tool.ID]; ok && ts.Enabled {
				enabled = append(enabled, tool.Name)
			}
		}
		fmt.Fprintf(&sb, "\n- **%s**: %s", agent.Name, agent.Prompt)
		if len(enabled) > 0 {
			fmt.Fprintf(&sb, " (Enabled Tools: %s)", strings.Join(enabled, ", "))
		}
	}
	return sb.String()
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
