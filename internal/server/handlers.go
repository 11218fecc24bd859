package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the JSON error envelope returned by all endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error envelope
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}

// decodeRequest decodes a JSON request body into dst, enforcing the body
// size limit and rejecting unknown fields.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body exceeds %d bytes", maxBytesErr.Limit)
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TaxonomyResponse represents the active taxonomy configuration
type TaxonomyResponse struct {
	Categories []TaxonomyCategory `json:"categories"`
	SkillCount int                `json:"skill_count"`
}

// TaxonomyCategory is one category of the active taxonomy
type TaxonomyCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// handleTaxonomy returns the skill vocabulary the analyzer scans against
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	resp := TaxonomyResponse{
		Categories: make([]TaxonomyCategory, 0, len(s.tax.Categories)),
		SkillCount: s.tax.SkillCount(),
	}
	for _, cat := range s.tax.Categories {
		resp.Categories = append(resp.Categories, TaxonomyCategory{
			Name:   cat.Name,
			Skills: cat.Skills,
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
