// Package matching computes weighted compatibility scores between an
// analyzed resume and structured job postings, and ranks postings by score.
package matching

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights for the match score components. They sum to 1.0.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.2
	keywordsWeight   = 0.2
	educationWeight  = 0.1
)

// Experience and education term values. Experience is floored at 40 rather
// than zeroed so a resume without a detected experience section is penalized
// but not wiped out.
const (
	experiencePresentPoints = 80
	experienceMissingPoints = 40
	educationPresentPoints  = 100
)

// minKeywordTokenLength filters job-text tokens: only tokens longer than
// this participate in the keyword overlap term.
const minKeywordTokenLength = 3

// SkillMatchFunc decides whether a job skill and a resume skill refer to the
// same thing. Both arguments arrive lower-cased. The strategy is swappable
// so a stricter mode can be introduced without changing stored scores
// produced by the default.
type SkillMatchFunc func(jobSkill, resumeSkill string) bool

// LooseSkillMatch matches on bidirectional substring containment. This is a
// deliberate recall-over-precision tradeoff: it tolerates naming variants
// like "JS" inside "JavaScript" at the cost of false positives on short
// labels.
func LooseSkillMatch(jobSkill, resumeSkill string) bool {
	return strings.Contains(resumeSkill, jobSkill) || strings.Contains(jobSkill, resumeSkill)
}

// ExactSkillMatch matches only identical lower-cased labels
func ExactSkillMatch(jobSkill, resumeSkill string) bool {
	return jobSkill == resumeSkill
}

// MatchJob scores one job against one analyzed resume using the default
// loose skill-matching strategy.
func MatchJob(analysis *types.AnalysisResult, job *types.JobRecord) types.MatchResult {
	return MatchJobWith(analysis, job, LooseSkillMatch)
}

// MatchJobWith scores one job against one analyzed resume with an explicit
// skill-matching strategy. The result is a pure function of the inputs.
func MatchJobWith(analysis *types.AnalysisResult, job *types.JobRecord, match SkillMatchFunc) types.MatchResult {
	matched, missing := partitionSkills(analysis, job, match)

	skillsPercentage := 0.0
	if len(job.Skills) > 0 {
		skillsPercentage = float64(len(matched)) / float64(len(job.Skills)) * 100
	}

	score := skillsPercentage * skillsWeight
	score += keywordPercentage(analysis, job) * keywordsWeight

	if analysis.Sections.HasExperience {
		score += experiencePresentPoints * experienceWeight
	} else {
		score += experienceMissingPoints * experienceWeight
	}

	if analysis.Sections.HasEducation {
		score += educationPresentPoints * educationWeight
	}

	return types.MatchResult{
		MatchScore:    clampScore(score),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// partitionSkills splits the job's skills into those present among the
// resume's detected skills and those absent, preserving the job's skill
// order. The returned lists carry the job's original spellings.
func partitionSkills(analysis *types.AnalysisResult, job *types.JobRecord, match SkillMatchFunc) (matched, missing []string) {
	resumeSkills := make([]string, len(analysis.SkillsFound))
	for i, record := range analysis.SkillsFound {
		resumeSkills[i] = strings.ToLower(record.Skill)
	}

	matched = make([]string, 0, len(job.Skills))
	missing = make([]string, 0, len(job.Skills))
	for _, jobSkill := range job.Skills {
		jobSkillLower := strings.ToLower(jobSkill)
		found := false
		for _, resumeSkill := range resumeSkills {
			if match(jobSkillLower, resumeSkill) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return matched, missing
}

// keywordPercentage measures how much of the job's vocabulary appears in the
// resume text. The job text is title, description, and requirements joined;
// tokens longer than three characters are deduplicated and tested for plain
// substring containment in the lower-cased resume text. Zero qualifying
// tokens yields 0, not a division by zero.
func keywordPercentage(analysis *types.AnalysisResult, job *types.JobRecord) float64 {
	jobText := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " "))
	resumeText := strings.ToLower(analysis.ExtractedText)

	seen := make(map[string]bool)
	unique := 0
	matches := 0
	for _, token := range strings.Fields(jobText) {
		if len(token) <= minKeywordTokenLength || seen[token] {
			continue
		}
		seen[token] = true
		unique++
		if strings.Contains(resumeText, token) {
			matches++
		}
	}

	if unique == 0 {
		return 0
	}
	return float64(matches) / float64(unique) * 100
}
