// Package analysis scores free-form resume text against the skill taxonomy,
// producing detected skills, keyword counts, section flags, sub-scores, and
// improvement suggestions. Every function is pure: identical inputs yield
// identical results, and degenerate input (including the empty string) yields
// zeroed results rather than errors.
package analysis

import (
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/textmatch"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// confidencePerOccurrence is the confidence contribution of each
	// whole-word occurrence; confidence saturates at five occurrences.
	confidencePerOccurrence = 0.2

	// keywordListCap bounds the keyword match list. The list is truncated
	// in taxonomy order, not sorted by count: consumers depend on the
	// reproducible order, not on "top keywords" semantics.
	keywordListCap = 20
)

// ExtractSkillsAndKeywords scans text against the taxonomy and returns the
// detected skills plus the keyword occurrence counts.
//
// Skills follow taxonomy enumeration order (category, then skill), not
// discovery or confidence order. The keyword pass runs over the flattened
// vocabulary independently of which skills were emitted.
func ExtractSkillsAndKeywords(tax *taxonomy.Taxonomy, text string) ([]types.SkillRecord, []types.KeywordMatch) {
	skills := make([]types.SkillRecord, 0)
	for _, cat := range tax.Categories {
		for _, skill := range cat.Skills {
			count := textmatch.CountWholeWord(text, skill)
			if count == 0 {
				continue
			}
			confidence := float64(count) * confidencePerOccurrence
			if confidence > 1.0 {
				confidence = 1.0
			}
			skills = append(skills, types.SkillRecord{
				Skill:      skill,
				Category:   cat.Name,
				Confidence: confidence,
			})
		}
	}

	keywords := make([]types.KeywordMatch, 0)
	for _, keyword := range tax.AllSkills() {
		count := textmatch.CountWholeWord(text, keyword)
		if count == 0 {
			continue
		}
		keywords = append(keywords, types.KeywordMatch{
			Keyword: keyword,
			Count:   count,
		})
	}
	if len(keywords) > keywordListCap {
		keywords = keywords[:keywordListCap]
	}

	return skills, keywords
}
