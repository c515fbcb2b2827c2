// Package server provides the HTTP REST API for the resume analysis service.
package server

import (
	"errors"
	"net/http"

	"github.com/nexthire/next-hire/internal/analysis"
	"github.com/nexthire/next-hire/internal/jobs"
	"github.com/nexthire/next-hire/internal/scoring"
)

// Failure reason strings. Clients branch on these, so they are part of the
// API contract.
const (
	ReasonBadRequest          = "bad_request"
	ReasonValidation          = "validation_error"
	ReasonAIService           = "ai_service_error"
	ReasonExtraction          = "extraction_error"
	ReasonModelNotReady       = "model_not_ready"
	ReasonProviderUnavailable = "provider_unavailable"
	ReasonInternal            = "internal_error"
)

// classifyError maps a pipeline error to an HTTP status and reason string.
func classifyError(err error) (int, string) {
	var aiErr *analysis.AIServiceError
	var exErr *analysis.ExtractionError
	var valErr *analysis.ValidationError
	var provErr *jobs.ProviderError

	switch {
	case errors.Is(err, scoring.ErrNotReady):
		return http.StatusServiceUnavailable, ReasonModelNotReady
	case errors.As(err, &provErr):
		return http.StatusBadGateway, ReasonProviderUnavailable
	case errors.As(err, &aiErr):
		return http.StatusInternalServerError, ReasonAIService
	case errors.As(err, &exErr):
		return http.StatusInternalServerError, ReasonExtraction
	case errors.As(err, &valErr):
		return http.StatusInternalServerError, ReasonValidation
	}
	return http.StatusInternalServerError, ReasonInternal
}
