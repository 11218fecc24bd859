package analysis

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyze runs the full pipeline over one resume text: skill and keyword
// extraction, section detection, the three sub-scores, the overall score, and
// improvement suggestions. The overall score is computed here rather than in
// the score functions because the ATS input (keyword count) is only known at
// this assembly step.
func Analyze(tax *taxonomy.Taxonomy, text string) *types.AnalysisResult {
	skills, keywords := ExtractSkillsAndKeywords(tax, text)
	sections := DetectSections(tax, text)

	ats := ATSScore(len(skills), sections, len(keywords))
	readability := ReadabilityScore(len(text), sections)
	formatting := FormattingScore(sections)
	overall := int(math.Round(float64(ats+readability+formatting) / 3))

	return &types.AnalysisResult{
		ExtractedText:    text,
		SkillsFound:      skills,
		KeywordMatches:   keywords,
		Sections:         sections,
		Improvements:     GenerateImprovements(sections, len(skills), len(text)),
		ReadabilityScore: readability,
		FormattingScore:  formatting,
		ATSScore:         ats,
		OverallScore:     overall,
	}
}
