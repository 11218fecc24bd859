package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for inbound records
var validate = validator.New(validator.WithRequiredStructEnabled())

// ExperienceRange represents the years-of-experience window a job asks for
type ExperienceRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gte=0,gtefield=Min"`
}

// JobRecord represents a structured job posting. Records arrive from the
// calling layer (database rows or normalized aggregator results) and are
// read-only to the scoring core.
type JobRecord struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	Requirements []string        `json:"requirements" validate:"dive,min=1"`
	Skills       []string        `json:"skills" validate:"dive,min=1"`
	Experience   ExperienceRange `json:"experience"`
}

// Validate checks the record satisfies the core's input contract.
// A missing title or malformed list entries are programming errors in the
// calling layer, not degenerate input, so they fail fast here.
func (j *JobRecord) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("invalid job record: %w", err)
	}
	return nil
}

// MatchResult represents the compatibility between one analyzed resume and
// one job posting. It is a pure function of its inputs and has no identity.
type MatchResult struct {
	MatchScore    int      `json:"match_score"` // 0-100
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// RankedJob pairs a job with its match result for ranked listings
type RankedJob struct {
	Job JobRecord `json:"job"`
	MatchResult
}
