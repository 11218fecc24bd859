// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillRecord represents a single skill detected in resume text
type SkillRecord struct {
	Skill      string  `json:"skill"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 0.0-1.0, saturates at five occurrences
}

// KeywordMatch represents an occurrence count for one taxonomy keyword
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// SectionFlags records which standard resume sections were detected.
// The five flags are independent; none is derived from another.
type SectionFlags struct {
	HasContactInfo bool `json:"has_contact_info"`
	HasExperience  bool `json:"has_experience"`
	HasEducation   bool `json:"has_education"`
	HasSkills      bool `json:"has_skills"`
	HasProjects    bool `json:"has_projects"`
}

// CountTrue returns the number of flags that are set
func (f SectionFlags) CountTrue() int {
	count := 0
	for _, set := range []bool{f.HasContactInfo, f.HasExperience, f.HasEducation, f.HasSkills, f.HasProjects} {
		if set {
			count++
		}
	}
	return count
}

// Improvement priority levels
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Improvement represents a single actionable resume suggestion
type Improvement struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"` // high or medium
}

// AnalysisResult aggregates everything derived from one resume text.
// It is created once per input and never mutated afterwards.
type AnalysisResult struct {
	ExtractedText    string         `json:"extracted_text"`
	SkillsFound      []SkillRecord  `json:"skills_found"`
	KeywordMatches   []KeywordMatch `json:"keyword_matches"`
	Sections         SectionFlags   `json:"sections"`
	Improvements     []Improvement  `json:"improvements"`
	ReadabilityScore int            `json:"readability_score"`
	FormattingScore  int            `json:"formatting_score"`
	ATSScore         int            `json:"ats_score"`
	OverallScore     int            `json:"overall_score"`
}
