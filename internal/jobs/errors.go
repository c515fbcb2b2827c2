// Package jobs implements the ranked job search and the application intake:
// a postings provider client, keyword derivation, similarity ranking, and
// missing-field validation.
package jobs

import "fmt"

// ProviderError indicates the postings provider call failed. Provider
// failures are surfaced to the caller as-is; searches are not retried.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}
