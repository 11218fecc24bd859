package analysis

import (
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// minSkillsBeforeSuggestion is the skill count below which the skills
	// suggestion fires
	minSkillsBeforeSuggestion = 5

	// minTextLength is the text length below which the content suggestion
	// fires
	minTextLength = 500
)

// GenerateImprovements evaluates the fixed suggestion rules in order:
// contact, skills count, projects, text length. Rules are independent and
// every rule that applies fires; output order is rule-evaluation order, not
// priority order.
func GenerateImprovements(sections types.SectionFlags, skillCount, textLength int) []types.Improvement {
	improvements := make([]types.Improvement, 0)

	if !sections.HasContactInfo {
		improvements = append(improvements, types.Improvement{
			Category:   "Contact Information",
			Suggestion: "Add clear contact information including email, phone, and LinkedIn profile",
			Priority:   types.PriorityHigh,
		})
	}

	if skillCount < minSkillsBeforeSuggestion {
		improvements = append(improvements, types.Improvement{
			Category:   "Skills",
			Suggestion: "Include more relevant technical skills to improve ATS compatibility",
			Priority:   types.PriorityHigh,
		})
	}

	if !sections.HasProjects {
		improvements = append(improvements, types.Improvement{
			Category:   "Projects",
			Suggestion: "Add a projects section to showcase your practical experience",
			Priority:   types.PriorityMedium,
		})
	}

	if textLength < minTextLength {
		improvements = append(improvements, types.Improvement{
			Category:   "Content",
			Suggestion: "Expand your resume with more detailed descriptions of your experience",
			Priority:   types.PriorityHigh,
		})
	}

	return improvements
}
