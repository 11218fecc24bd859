package analysis

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ATS score components, each capped so no single factor dominates
const (
	atsPointsPerSkill   = 4
	atsSkillsCap        = 40
	atsPointsPerSection = 6
	atsPointsPerKeyword = 2
	atsKeywordCap       = 30
)

// Readability score components
const (
	readabilityLengthDivisor = 2000
	readabilityLengthPoints  = 40
	readabilitySectionPoints = 20
)

// formattingPointsPerSection is awarded for each detected section; this is
// the only score that weighs all five flags equally.
const formattingPointsPerSection = 20

// clampScore rounds to the nearest integer and bounds the result to [0, 100]
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// ATSScore estimates automated-screener compatibility from breadth of
// recognized skills, section completeness, and keyword density.
func ATSScore(skillCount int, sections types.SectionFlags, keywordCount int) int {
	score := min(skillCount*atsPointsPerSkill, atsSkillsCap)
	score += sections.CountTrue() * atsPointsPerSection
	score += min(keywordCount*atsPointsPerKeyword, atsKeywordCap)
	return clampScore(float64(score))
}

// ReadabilityScore scores text length plus the presence of the experience,
// education, and skills sections. Contact and projects do not contribute.
func ReadabilityScore(textLength int, sections types.SectionFlags) int {
	score := float64(textLength) / readabilityLengthDivisor * readabilityLengthPoints
	if sections.HasExperience {
		score += readabilitySectionPoints
	}
	if sections.HasEducation {
		score += readabilitySectionPoints
	}
	if sections.HasSkills {
		score += readabilitySectionPoints
	}
	return clampScore(score)
}

// FormattingScore awards a fixed share for each of the five detected sections
func FormattingScore(sections types.SectionFlags) int {
	return clampScore(float64(sections.CountTrue() * formattingPointsPerSection))
}
