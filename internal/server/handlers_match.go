package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MatchRequest carries one resume text and one job posting
type MatchRequest struct {
	Text string          `json:"text"`
	Job  types.JobRecord `json:"job"`
}

// handleMatch scores a single job against the resume text
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := req.Job.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text := ingestion.Truncate(ingestion.CleanText(req.Text), s.maxTextLength)
	result := matching.MatchJob(analysis.Analyze(s.tax, text), &req.Job)
	matchRequestsTotal.Inc()

	s.jsonResponse(w, http.StatusOK, result)
}

// MatchesRequest carries a resume text and a batch of jobs to rank
type MatchesRequest struct {
	Text  string            `json:"text"`
	Jobs  []types.JobRecord `json:"jobs"`
	Limit int               `json:"limit,omitempty"`
}

// MatchesResponse is the ranked match listing
type MatchesResponse struct {
	Count   int               `json:"count"`
	Matches []types.RankedJob `json:"matches"`
}

// handleMatches ranks a batch of jobs against the resume text
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	var req MatchesRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	for i := range req.Jobs {
		if err := req.Jobs[i].Validate(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("job %d: %v", i, err))
			return
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.matchLimit
	}

	text := ingestion.Truncate(ingestion.CleanText(req.Text), s.maxTextLength)
	result := analysis.Analyze(s.tax, text)

	ranked, err := matching.RankJobs(r.Context(), result, req.Jobs, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	matchRequestsTotal.Inc()

	s.jsonResponse(w, http.StatusOK, MatchesResponse{
		Count:   len(ranked),
		Matches: ranked,
	})
}
