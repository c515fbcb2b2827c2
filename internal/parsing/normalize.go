// Package parsing provides the deterministic text routines shared by the
// scoring pipeline and the job-search orchestrator.
package parsing

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize cleans free text for feature vectorization: markup-like tags are
// stripped, every character outside letters/digits/whitespace is removed, the
// result is lowercased, runs of whitespace collapse to single spaces, and the
// ends are trimmed.
//
// The trained vectorizers were fitted on text cleaned by this exact routine.
// It must stay the single shared implementation for both the offline feature
// path and the serving path; any divergence silently degrades model accuracy.
func Normalize(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = nonAlphanumeric.ReplaceAllString(text, "")
	text = strings.ToLower(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
