package analysis

import (
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/textmatch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// DetectSections runs the five independent section presence tests. Each test
// is a case-insensitive substring search for any phrase in that section's
// indicator group; a single occurrence anywhere in the text is enough.
func DetectSections(tax *taxonomy.Taxonomy, text string) types.SectionFlags {
	phrases := tax.Sections
	return types.SectionFlags{
		HasContactInfo: textmatch.ContainsAnyFold(text, phrases.Contact),
		HasExperience:  textmatch.ContainsAnyFold(text, phrases.Experience),
		HasEducation:   textmatch.ContainsAnyFold(text, phrases.Education),
		HasSkills:      textmatch.ContainsAnyFold(text, phrases.Skills),
		HasProjects:    textmatch.ContainsAnyFold(text, phrases.Projects),
	}
}
