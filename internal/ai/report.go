package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// matchReport is the tolerant union of the response shapes the resume
// checker has been observed to produce. Older models return a flat score
// and missing_keywords; newer ones return percentages, breakdowns, and the
// analysis blocks either nested under transparent_analysis or at the top
// level. Every field is optional.
type matchReport struct {
	OverallMatchPercentage *float64          `json:"overall_match_percentage"`
	Score                  *float64          `json:"score"`
	Breakdown              scoreBreakdown    `json:"breakdown"`
	TransparentAnalysis    analysisBlock     `json:"transparent_analysis"`
	JobRequirements        *jobRequirements  `json:"job_requirements"`
	ResumeSummary          *resumeSummary    `json:"resume_summary"`
	KeywordAnalysis        *keywordAnalysis  `json:"keyword_analysis"`
	SkillsAnalysis         *skillsAnalysis   `json:"skills_analysis"`
	Recommendations        []json.RawMessage `json:"recommendations"`
	MissingKeywords        []string          `json:"missing_keywords"`
}

type scoreBreakdown struct {
	SkillsScore     *float64 `json:"skills_score"`
	ExperienceScore *float64 `json:"experience_score"`
	KeywordsScore   *float64 `json:"keywords_score"`
	EducationScore  *float64 `json:"education_score"`
}

type analysisBlock struct {
	JobRequirements *jobRequirements `json:"job_requirements"`
	ResumeSummary   *resumeSummary   `json:"resume_summary"`
	KeywordAnalysis *keywordAnalysis `json:"keyword_analysis"`
	SkillsAnalysis  *skillsAnalysis  `json:"skills_analysis"`
}

type jobRequirements struct {
	RequiredSkills    []string `json:"required_skills"`
	PreferredSkills   []string `json:"preferred_skills"`
	YearsExperience   any      `json:"years_experience"`
	EducationRequired string   `json:"education_required"`
}

type resumeSummary struct {
	TotalExperienceYears any      `json:"total_experience_years"`
	EducationLevel       string   `json:"education_level"`
	CurrentJobTitle      string   `json:"current_job_title"`
	KeyAchievements      []string `json:"key_achievements"`
}

type keywordAnalysis struct {
	TotalJobKeywords     float64         `json:"total_job_keywords"`
	MatchedKeywords      float64         `json:"matched_keywords"`
	MatchPercentage      float64         `json:"match_percentage"`
	JobKeywords          []scoredKeyword `json:"job_keywords"`
	ResumeKeywords       []scoredKeyword `json:"resume_keywords"`
	KeywordMatches       []keywordMatch  `json:"keyword_matches"`
	UnmatchedJobKeywords []string        `json:"unmatched_job_keywords"`
}

type scoredKeyword struct {
	Keyword         string  `json:"keyword"`
	Category        string  `json:"category"`
	ImportanceScore float64 `json:"importance_score"`
	RelevanceScore  float64 `json:"relevance_score"`
}

type keywordMatch struct {
	JobKeyword    string  `json:"job_keyword"`
	ResumeKeyword string  `json:"resume_keyword"`
	MatchScore    float64 `json:"match_score"`
}

type skillsAnalysis struct {
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	MatchedRequired    []string `json:"matched_required"`
	UnmatchedRequired  []string `json:"unmatched_required"`
	MatchedPreferred   []string `json:"matched_preferred"`
	UnmatchedPreferred []string `json:"unmatched_preferred"`
}

type recommendation struct {
	Priority     int    `json:"priority"`
	Action       string `json:"action"`
	KeywordToAdd string `json:"keyword_to_add"`
	Reason       string `json:"reason"`
}

func (r *matchReport) overallScore() int {
	if r.OverallMatchPercentage != nil {
		return int(*r.OverallMatchPercentage)
	}
	if r.Score != nil {
		return int(*r.Score)
	}
	return 0
}

func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// fmtScalar renders a value that may arrive as a number or a string.
func fmtScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmtNum(t)
	default:
		return fmt.Sprint(t)
	}
}

// buildMatchReport renders the markdown analysis report. Any section the
// model did not supply renders an explicit "Not provided by AI" placeholder
// so the layout stays stable regardless of the response shape.
func buildMatchReport(r *matchReport) string {
	var sb strings.Builder

	score := r.overallScore()
	sb.WriteString("# 📊 Resume Analysis Report\n\n")
	fmt.Fprintf(&sb, "## Overall Match: ● %d%%\n\n", score)

	if r.Breakdown.SkillsScore != nil {
		fmt.Fprintf(&sb, "### 🎯 Skills Match: ● %s%%\n", fmtNum(*r.Breakdown.SkillsScore))
	}
	if r.Breakdown.ExperienceScore != nil {
		fmt.Fprintf(&sb, "### ⏰ Experience Match: ● %s%%\n", fmtNum(*r.Breakdown.ExperienceScore))
	}
	if r.Breakdown.KeywordsScore != nil {
		fmt.Fprintf(&sb, "### 🔑 Keywords Match: ● %s%%\n", fmtNum(*r.Breakdown.KeywordsScore))
	}
	if r.Breakdown.EducationScore != nil {
		fmt.Fprintf(&sb, "### 🎓 Education Match: ● %s%%\n", fmtNum(*r.Breakdown.EducationScore))
	}
	sb.WriteString("\n")

	switch {
	case score >= 80:
		sb.WriteString("✓ **Excellent Match!** Your resume strongly aligns with this position.\n\n")
	case score >= 60:
		sb.WriteString("✓ **Good Match** Your resume has solid alignment with some room for improvement.\n\n")
	case score >= 40:
		sb.WriteString("⚠ **Moderate Match** Your resume needs some adjustments to better align with this role.\n\n")
	default:
		sb.WriteString("✗ **Poor Match** Your resume requires significant updates to align with this position.\n\n")
	}

	writeJobRequirements(&sb, r)
	writeResumeSummary(&sb, r)
	writeKeywordAnalysis(&sb, r)
	writeSkillsAnalysis(&sb, r)
	writeRecommendations(&sb, r)

	return sb.String()
}

func writeJobRequirements(sb *strings.Builder, r *matchReport) {
	req := r.TransparentAnalysis.JobRequirements
	if req == nil {
		req = r.JobRequirements
	}
	if req != nil {
		sb.WriteString("**Job Requirements:**\n")
		if len(req.RequiredSkills) > 0 {
			fmt.Fprintf(sb, "Required: %s\n", strings.Join(req.RequiredSkills, ", "))
		} else {
			sb.WriteString("Required: No required skills specified\n")
		}
		if len(req.PreferredSkills) > 0 {
			fmt.Fprintf(sb, "Preferred: %s\n", strings.Join(req.PreferredSkills, ", "))
		} else {
			sb.WriteString("Preferred: No preferred skills specified\n")
		}
		if y := fmtScalar(req.YearsExperience); y != "" {
			fmt.Fprintf(sb, "Experience: %s years\n", y)
		} else {
			sb.WriteString("Experience: Not specified\n")
		}
		if req.EducationRequired != "" {
			fmt.Fprintf(sb, "Education: %s\n", req.EducationRequired)
		} else {
			sb.WriteString("Education: Not specified\n")
		}
		sb.WriteString("\n")
		return
	}

	// fall back to the skills analysis block for the requirement lists
	if sa := r.skills(); sa != nil && (len(sa.RequiredSkills) > 0 || len(sa.PreferredSkills) > 0) {
		sb.WriteString("**Job Requirements:**\n")
		if len(sa.RequiredSkills) > 0 {
			fmt.Fprintf(sb, "Required: %s\n", strings.Join(sa.RequiredSkills, ", "))
		} else {
			sb.WriteString("Required: No required skills specified\n")
		}
		if len(sa.PreferredSkills) > 0 {
			fmt.Fprintf(sb, "Preferred: %s\n", strings.Join(sa.PreferredSkills, ", "))
		} else {
			sb.WriteString("Preferred: No preferred skills specified\n")
		}
		sb.WriteString("\n")
		return
	}

	sb.WriteString("**Job Requirements:** Not provided by AI\n\n")
}

func writeResumeSummary(sb *strings.Builder, r *matchReport) {
	res := r.TransparentAnalysis.ResumeSummary
	if res == nil {
		res = r.ResumeSummary
	}
	if res != nil {
		sb.WriteString("**Resume Summary:**\n")
		if y := fmtScalar(res.TotalExperienceYears); y != "" {
			fmt.Fprintf(sb, "Experience: %s years\n", y)
		} else {
			sb.WriteString("Experience: Not specified\n")
		}
		if res.EducationLevel != "" {
			fmt.Fprintf(sb, "Education: %s\n", res.EducationLevel)
		} else {
			sb.WriteString("Education: Not specified\n")
		}
		if res.CurrentJobTitle != "" {
			fmt.Fprintf(sb, "Current Role: %s\n", res.CurrentJobTitle)
		} else {
			sb.WriteString("Current Role: Not specified\n")
		}
		if len(res.KeyAchievements) > 0 {
			fmt.Fprintf(sb, "Key Achievements: %s\n", strings.Join(res.KeyAchievements, ", "))
		} else {
			sb.WriteString("Key Achievements: Not specified\n")
		}
		sb.WriteString("\n")
		return
	}

	if sa := r.skills(); sa != nil && (len(sa.MatchedRequired) > 0 || len(sa.UnmatchedRequired) > 0) {
		sb.WriteString("**Resume Summary:**\n")
		if len(sa.MatchedRequired) > 0 {
			fmt.Fprintf(sb, "Matched Required Skills: %s\n", strings.Join(sa.MatchedRequired, ", "))
		}
		if len(sa.UnmatchedRequired) > 0 {
			fmt.Fprintf(sb, "Missing Required Skills: %s\n", strings.Join(sa.UnmatchedRequired, ", "))
		}
		sb.WriteString("\n")
		return
	}

	sb.WriteString("**Resume Summary:** Not provided by AI\n\n")
}

func (r *matchReport) keywords() *keywordAnalysis {
	if r.TransparentAnalysis.KeywordAnalysis != nil {
		return r.TransparentAnalysis.KeywordAnalysis
	}
	return r.KeywordAnalysis
}

func (r *matchReport) skills() *skillsAnalysis {
	if r.TransparentAnalysis.SkillsAnalysis != nil {
		return r.TransparentAnalysis.SkillsAnalysis
	}
	return r.SkillsAnalysis
}

func writeKeywordAnalysis(sb *strings.Builder, r *matchReport) {
	ka := r.keywords()
	if ka == nil {
		sb.WriteString("🔍 **Keyword Analysis:** Not provided by AI\n\n")
		return
	}

	sb.WriteString("🔍 **Keyword Analysis:**\n")
	fmt.Fprintf(sb, "Job Keywords: %s\n", fmtNum(ka.TotalJobKeywords))
	fmt.Fprintf(sb, "Matched Keywords: %s\n", fmtNum(ka.MatchedKeywords))
	fmt.Fprintf(sb, "Match Percentage: %s%%\n\n", fmtNum(ka.MatchPercentage))

	if len(ka.JobKeywords) > 0 {
		sb.WriteString("## Most Important Job Requirements\n\n")
		for _, kw := range top(ka.JobKeywords, 10) {
			mark := "·"
			if kw.ImportanceScore >= 7 {
				mark = "●"
			} else if kw.ImportanceScore >= 5 {
				mark = "○"
			}
			fmt.Fprintf(sb, "%s **%s** (%s)\n", mark, kw.Keyword, kw.Category)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("## Most Important Job Requirements\n*Not provided by AI*\n\n")
	}

	if len(ka.ResumeKeywords) > 0 {
		sb.WriteString("## Your Resume Highlights\n\n")
		for _, kw := range top(ka.ResumeKeywords, 10) {
			mark := "·"
			if kw.RelevanceScore >= 12 {
				mark = "●"
			} else if kw.RelevanceScore >= 8 {
				mark = "○"
			}
			fmt.Fprintf(sb, "%s **%s** (%s)\n", mark, kw.Keyword, kw.Category)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("## Your Resume Highlights\n*Not provided by AI*\n\n")
	}

	if len(ka.KeywordMatches) > 0 {
		sb.WriteString("## Strong Matches\n\n")
		for _, m := range top(ka.KeywordMatches, 10) {
			mark := "·"
			if m.MatchScore >= 0.8 {
				mark = "●"
			} else if m.MatchScore >= 0.6 {
				mark = "○"
			}
			fmt.Fprintf(sb, "%s **%s** ↔ **%s**\n", mark, m.JobKeyword, m.ResumeKeyword)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("## Strong Matches\n*Not provided by AI*\n\n")
	}

	if len(ka.UnmatchedJobKeywords) > 0 {
		sb.WriteString("## Missing Skills\n\n")
		sb.WriteString("These skills are important for this role but missing from your resume:\n\n")
		for _, kw := range ka.UnmatchedJobKeywords {
			fmt.Fprintf(sb, "● **%s**\n", kw)
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("## Missing Skills\n*Not provided by AI*\n\n")
	}
}

func writeSkillsAnalysis(sb *strings.Builder, r *matchReport) {
	sa := r.skills()
	if sa == nil {
		sb.WriteString("🎯 **Skills Analysis:** Not provided by AI\n\n")
		return
	}

	sb.WriteString("🎯 **Skills Analysis:**\n")
	if len(sa.RequiredSkills) > 0 {
		fmt.Fprintf(sb, "Required Skills: %s\n", strings.Join(sa.RequiredSkills, ", "))
		if len(sa.MatchedRequired) > 0 {
			fmt.Fprintf(sb, "✅ Matched: %s\n", strings.Join(sa.MatchedRequired, ", "))
		} else {
			sb.WriteString("✅ Matched: None\n")
		}
		if len(sa.UnmatchedRequired) > 0 {
			fmt.Fprintf(sb, "❌ Missing: %s\n", strings.Join(sa.UnmatchedRequired, ", "))
		} else {
			sb.WriteString("❌ Missing: None\n")
		}
	} else {
		sb.WriteString("Required Skills: Not specified\n")
	}

	if len(sa.PreferredSkills) > 0 {
		fmt.Fprintf(sb, "Preferred Skills: %s\n", strings.Join(sa.PreferredSkills, ", "))
		if len(sa.MatchedPreferred) > 0 {
			fmt.Fprintf(sb, "✅ Matched: %s\n", strings.Join(sa.MatchedPreferred, ", "))
		} else {
			sb.WriteString("✅ Matched: None\n")
		}
		if len(sa.UnmatchedPreferred) > 0 {
			fmt.Fprintf(sb, "❌ Missing: %s\n", strings.Join(sa.UnmatchedPreferred, ", "))
		} else {
			sb.WriteString("❌ Missing: None\n")
		}
	} else {
		sb.WriteString("Preferred Skills: Not specified\n")
	}
	sb.WriteString("\n")
}

// writeRecommendations handles both shapes: a list of recommendation
// objects, or the legacy missing_keywords list of plain strings.
func writeRecommendations(sb *strings.Builder, r *matchReport) {
	if len(r.Recommendations) > 0 {
		sb.WriteString("## Action Plan\n\n")
		for i, raw := range r.Recommendations {
			var rec recommendation
			if err := json.Unmarshal(raw, &rec); err == nil && (rec.Action != "" || rec.Priority != 0) {
				mark := "·"
				if rec.Priority == 1 {
					mark = "●"
				} else if rec.Priority == 2 {
					mark = "○"
				}
				priority := rec.Priority
				if priority == 0 {
					priority = i + 1
				}
				action := rec.Action
				if action == "" {
					action = "No action specified"
				}
				fmt.Fprintf(sb, "### %s Priority %d\n", mark, priority)
				fmt.Fprintf(sb, "**%s**\n\n", action)
				if rec.KeywordToAdd != "" {
					fmt.Fprintf(sb, "**Add to resume:** %s\n", rec.KeywordToAdd)
				}
				if rec.Reason != "" {
					fmt.Fprintf(sb, "**Why:** %s\n", rec.Reason)
				}
				sb.WriteString("\n")
				continue
			}

			var kw string
			if err := json.Unmarshal(raw, &kw); err == nil && kw != "" {
				fmt.Fprintf(sb, "**%d. Add %q to your resume**\n", i+1, kw)
				sb.WriteString("This skill is highly valued for this position.\n\n")
			}
		}
		return
	}

	if len(r.MissingKeywords) > 0 {
		sb.WriteString("## Action Plan\n\n")
		sb.WriteString("### Top Priorities\n\n")
		for i, kw := range top(r.MissingKeywords, 5) {
			fmt.Fprintf(sb, "**%d. Add %q to your resume**\n", i+1, kw)
			sb.WriteString("This skill is highly valued for this position.\n\n")
		}
		return
	}

	sb.WriteString("## Action Plan\n*No specific recommendations provided*\n\n")
}

func top[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
