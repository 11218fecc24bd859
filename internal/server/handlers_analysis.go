package server

import (
	"net/http"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// AnalyzeRequest carries the resume text to analyze. Empty text is valid
// input and yields a complete, zero-scored result.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// handleAnalyze scores resume text and returns the full analysis
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	text := ingestion.Truncate(ingestion.CleanText(req.Text), s.maxTextLength)
	result := analysis.Analyze(s.tax, text)
	analyzeDuration.Observe(time.Since(start).Seconds())
	analysesTotal.Inc()

	s.jsonResponse(w, http.StatusOK, result)
}
