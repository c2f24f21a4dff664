package ai

import (
	"fmt"
	"strings"

	"github.com/KazKozDev/pathfinder/pkg/models"
)

// resumeAsText flattens a resume into the plain-text form handed to the
// model in prompts.
func resumeAsText(r *models.Resume) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\nEmail: %s\nPhone: %s\nLinkedIn: %s\nWebsite: %s\n\n",
		r.Contact.Name, r.Contact.Email, r.Contact.Phone, r.Contact.LinkedIn, r.Contact.Website)
	fmt.Fprintf(&sb, "SUMMARY:\n%s\n\n", r.Summary)
	fmt.Fprintf(&sb, "SKILLS:\n%s\n\n", r.Skills)
	sb.WriteString("EXPERIENCE:\n")
	for _, exp := range r.Experience {
		fmt.Fprintf(&sb, "%s at %s (%s - %s)\n%s\n\n", exp.Role, exp.Company, exp.StartDate, exp.EndDate, exp.Description)
	}
	sb.WriteString("EDUCATION:\n")
	for _, edu := range r.Education {
		fmt.Fprintf(&sb, "%s from %s (%s - %s)\n\n", edu.Degree, edu.Institution, edu.StartDate, edu.EndDate)
	}
	for _, sec := range r.CustomSections {
		fmt.Fprintf(&sb, "%s:\n%s\n\n", strings.ToUpper(sec.Title), sec.Content)
	}
	return sb.String()
}
