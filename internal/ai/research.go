package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// Research compiles a structured research report for the role and company.
func (e *Engine) Research(ctx context.Context, job *models.Job) string {
	description := job.Description
	if description == "" {
		description = "No detailed description provided."
	}

	prompt := fmt.Sprintf(`You are a professional career research analyst. Your ONLY task is to use Google Search to find real-time, public information. **DO NOT use your internal knowledge or make assumptions.**

Perform a deep, internet-based search to compile a concise research report for a candidate applying for the role of "%s" at "%s".

The report MUST be structured into the following sections. For each section, provide actionable, up-to-date insights based **ONLY** on the provided search results. If you cannot find information for a specific point, you **MUST** state "No specific information found on this topic." Do not invent or generalize information.

**1. Company Overview & Culture:**
   - Mission and recent news: What is the company's stated mission? What are their major news or product launches in the last 6-12 months?
   - Culture sentiment: Based on employee reviews (from sites like Glassdoor, etc.), what is the general sentiment regarding work-life balance, culture, and leadership?

**2. The Role & Team:**
   - Team context: Based on search results, what can you infer about the team this role might be on?
   - Key people: Can you identify any potential team leads, managers, or key team members for this type of role at the company?
   - Core responsibilities: What are the key responsibilities for this role, based on the job description and other similar roles at the company you can find?

**3. The Interview Process:**
   - Typical stages: What are the typical stages of the interview process for a similar role at this company, according to user reports online?
   - Common questions: What are 2-3 examples of common technical or behavioral questions asked in interviews for this role at this company?

**4. Strategic Talking Points:**
   - Insightful questions: Based on your research, suggest 2-3 insightful questions the candidate can ask the interviewer to demonstrate their interest and research. These should be based on recent news, company challenges, or product launches you found.

**IMPORTANT:** Base your entire report on the live search results. If you don't find information, state that clearly.

**Job Description for Context:**
%s
`, job.Title, job.Company, description)

	out, err := e.oracle.Generate(ctx, e.model, prompt)
	if err != nil {
		log.Printf("research: generate: %v", err)
		return "Error: Could not generate the research report. The topic may be restricted or another error occurred. Please try again."
	}

	return out
}
