package server

import (
	"encoding/json"
	"net/http"

	"github.com/nexthire/next-hire/internal/analysis"
	"github.com/nexthire/next-hire/internal/ingestion"
	"github.com/nexthire/next-hire/internal/types"
)

// ParseResumeRequest is the request body for /api/v1/resumes/parse.
type ParseResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// AnalyzeATSRequest is the request body for /api/v1/resumes/analyze-ats.
// Exactly one of job_description and career_level must be set.
type AnalyzeATSRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
	CareerLevel    string `json:"career_level,omitempty"`
}

// handleParseResume runs the structured extraction over the submitted text.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "resume_text is required")
		return
	}

	prepared := ingestion.PrepareResumeText(req.ResumeText)

	record, err := s.extractor.Extract(r.Context(), prepared)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleAnalyzeATS scores the resume against its context and wraps the score
// in a qualitative report.
func (s *Server) handleAnalyzeATS(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeATSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, "resume_text is required")
		return
	}

	actx := types.AnalysisContext{
		JobDescription: req.JobDescription,
		CareerLevel:    types.CareerLevel(req.CareerLevel),
	}
	if err := actx.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, ReasonBadRequest, err.Error())
		return
	}

	if !s.scorer.Ready() {
		s.errorResponse(w, http.StatusServiceUnavailable, ReasonModelNotReady,
			"scoring model artifacts are not loaded")
		return
	}

	score, err := s.scorer.Score(req.ResumeText, analysis.ContextDocument(actx))
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.ResumeText, actx, score)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
