// Package analysis orchestrates the generative-model calls: structured resume
// extraction, score-consistent qualitative narrative, and the two-stage
// bullet rewrite pipeline.
package analysis

import "fmt"

// AIServiceError indicates the generative call itself failed.
type AIServiceError struct {
	Op    string
	Cause error
}

func (e *AIServiceError) Error() string {
	return fmt.Sprintf("ai service error during %s: %v", e.Op, e.Cause)
}

func (e *AIServiceError) Unwrap() error {
	return e.Cause
}

// ExtractionError indicates the generative call succeeded but no usable
// payload could be recovered from the reply.
type ExtractionError struct {
	Op    string
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract payload during %s: %v", e.Op, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates a recovered payload does not match the expected
// shape.
type ValidationError struct {
	Op    string
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("payload validation failed during %s: %v", e.Op, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
