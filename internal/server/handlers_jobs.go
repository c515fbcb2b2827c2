package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nexthire/next-hire/internal/types"
)

// JobSearchRequest is the request body for /api/v1/jobs/search.
type JobSearchRequest struct {
	ResumeText string                 `json:"resume_text" validate:"required"`
	Filters    types.JobSearchFilters `json:"filters"`
	Limit      int                    `json:"limit" validate:"omitempty,gte=1,lte=25"`
}

// ApplyAllRequest is the request body for /api/v1/jobs/apply-all.
type ApplyAllRequest struct {
	Jobs []types.JobApplication `json:"jobs" validate:"required,min=1,dive"`
}

// ApplyAllResponse is the batch intake result.
type ApplyAllResponse struct {
	Results []types.ApplyOutcome `json:"results"`
}

// handleJobSearch runs the ranked search pipeline.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		s.errorResponse(w, http.StatusBadGateway, ReasonProviderUnavailable,
			"job search provider is not configured")
		return
	}

	var req JobSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, validationMessage(err))
		return
	}

	result, err := s.searcher.Search(r.Context(), req.ResumeText, req.Filters, req.Limit)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleApply validates a single application.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var app types.JobApplication
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(app); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, validationMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.intake.Apply(app))
}

// handleApplyAll validates a batch of applications independently.
func (s *Server) handleApplyAll(w http.ResponseWriter, r *http.Request) {
	var req ApplyAllRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, validationMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, ApplyAllResponse{
		Results: s.intake.ApplyAll(req.Jobs),
	})
}

func validationMessage(err error) string {
	return fmt.Sprintf("request validation failed: %v", err)
}
