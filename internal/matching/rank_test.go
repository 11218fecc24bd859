package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestRankJobs_SortsDescending(t *testing.T) {
	analysis := analysisWithSkills("python experience", []string{"Python"}, types.SectionFlags{HasExperience: true})

	jobs := []types.JobRecord{
		{Title: "None", Skills: []string{"Rust"}},
		{Title: "Full", Skills: []string{"Python"}},
	}

	ranked, err := RankJobs(context.Background(), analysis, jobs, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "Full", ranked[0].Job.Title)
	assert.Equal(t, "None", ranked[1].Job.Title)
	assert.GreaterOrEqual(t, ranked[0].MatchScore, ranked[1].MatchScore)
}

func TestRankJobs_StableForEqualScores(t *testing.T) {
	analysis := analysisWithSkills("", nil, types.SectionFlags{})

	// identical content except the title; neither title token appears in
	// the resume, so the scores are equal and input order must survive
	jobs := []types.JobRecord{
		{Title: "Alpha", Description: "shared description", Skills: []string{"Go"}},
		{Title: "Bravo", Description: "shared description", Skills: []string{"Go"}},
		{Title: "Charlie", Description: "shared description", Skills: []string{"Go"}},
	}

	ranked, err := RankJobs(context.Background(), analysis, jobs, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, ranked[0].MatchScore, ranked[1].MatchScore)
	assert.Equal(t, ranked[1].MatchScore, ranked[2].MatchScore)

	assert.Equal(t, "Alpha", ranked[0].Job.Title)
	assert.Equal(t, "Bravo", ranked[1].Job.Title)
	assert.Equal(t, "Charlie", ranked[2].Job.Title)
}

func TestRankJobs_LimitCutoff(t *testing.T) {
	analysis := analysisWithSkills("", nil, types.SectionFlags{})

	jobs := make([]types.JobRecord, 5)
	for i := range jobs {
		jobs[i] = types.JobRecord{Title: "Job"}
	}

	ranked, err := RankJobs(context.Background(), analysis, jobs, 2)
	require.NoError(t, err)
	assert.Len(t, ranked, 2)

	// a limit beyond the input returns everything
	ranked, err = RankJobs(context.Background(), analysis, jobs, 10)
	require.NoError(t, err)
	assert.Len(t, ranked, 5)

	// non-positive limit means no cutoff
	ranked, err = RankJobs(context.Background(), analysis, jobs, 0)
	require.NoError(t, err)
	assert.Len(t, ranked, 5)
}

func TestRankJobs_EmptyJobList(t *testing.T) {
	analysis := analysisWithSkills("", nil, types.SectionFlags{})

	ranked, err := RankJobs(context.Background(), analysis, nil, 20)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankJobs_CancelledContext(t *testing.T) {
	analysis := analysisWithSkills("", nil, types.SectionFlags{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankJobs(ctx, analysis, []types.JobRecord{{Title: "Job"}}, 0)
	assert.Error(t, err)
}

func TestRankJobs_MatchesSequentialScores(t *testing.T) {
	analysis := analysisWithSkills("python experience education", []string{"Python", "Go"}, types.SectionFlags{
		HasExperience: true, HasEducation: true,
	})

	jobs := []types.JobRecord{
		{Title: "Backend", Description: "python services", Skills: []string{"Python", "Go", "SQL"}},
		{Title: "Frontend", Description: "react apps", Skills: []string{"React"}},
	}

	ranked, err := RankJobs(context.Background(), analysis, jobs, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// concurrent ranking must agree with the sequential scorer
	for _, r := range ranked {
		for i := range jobs {
			if jobs[i].Title == r.Job.Title {
				assert.Equal(t, MatchJob(analysis, &jobs[i]), r.MatchResult)
			}
		}
	}
}
