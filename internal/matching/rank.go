package matching

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

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

// RankJobs scores every job against the analyzed resume, sorts descending by
// match score, and returns the first limit entries. A non-positive limit
// means no cutoff.
//
// Each (resume, job) pair is independent, so scoring fans out across
// goroutines; the sort afterwards is stable, so jobs with equal scores keep
// their input order and the ranking is deterministic across runs.
func RankJobs(ctx context.Context, analysis *types.AnalysisResult, jobs []types.JobRecord, limit int) ([]types.RankedJob, error) {
	ranked := make([]types.RankedJob, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	for i := range jobs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ranked[i] = types.RankedJob{
				Job:         jobs[i],
				MatchResult: MatchJob(analysis, &jobs[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
