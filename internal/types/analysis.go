package types

import "fmt"

// CareerLevel selects a seniority-specific evaluator persona when no real job
// description is available.
type CareerLevel string

// Supported career levels.
const (
	CareerLevelEntry  CareerLevel = "entry"
	CareerLevelMid    CareerLevel = "mid"
	CareerLevelSenior CareerLevel = "senior"
)

// Valid reports whether l is one of the supported career levels.
func (l CareerLevel) Valid() bool {
	switch l {
	case CareerLevelEntry, CareerLevelMid, CareerLevelSenior:
		return true
	}
	return false
}

// AnalysisContext is the evaluation context for an ATS analysis. Exactly one
// of JobDescription and CareerLevel must be set.
type AnalysisContext struct {
	JobDescription string
	CareerLevel    CareerLevel
}

// Validate enforces the exactly-one-variant rule. It runs before any scoring
// attempt so that an invalid context never reaches the model.
func (c AnalysisContext) Validate() error {
	hasJD := c.JobDescription != ""
	hasLevel := c.CareerLevel != ""
	if !hasJD && !hasLevel {
		return fmt.Errorf("analysis context requires either a job description or a career level")
	}
	if hasJD && hasLevel {
		return fmt.Errorf("analysis context accepts a job description or a career level, not both")
	}
	if hasLevel && !c.CareerLevel.Valid() {
		return fmt.Errorf("unknown career level %q (want entry, mid, or senior)", c.CareerLevel)
	}
	return nil
}

// RewriteSuggestion pairs an original resume bullet with its improved version.
type RewriteSuggestion struct {
	OriginalBullet       string `json:"original_bullet"`
	SuggestedImprovement string `json:"suggested_improvement"`
}

// KeywordAnalysis lists keyword overlap between a resume and its context.
type KeywordAnalysis struct {
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
}

// MatchReport is the merged result of the scoring pipeline and the qualitative
// narrative. MatchScore is produced by the scorer and is never overwritten by
// the narrative stage.
type MatchReport struct {
	MatchScore          int                 `json:"match_score"`
	Summary             string              `json:"summary"`
	Strengths           []string            `json:"strengths"`
	AreasForImprovement []string            `json:"areas_for_improvement"`
	KeywordAnalysis     KeywordAnalysis     `json:"keyword_analysis"`
	RewriteSuggestions  []RewriteSuggestion `json:"rewrite_suggestions"`
}
