package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotReady indicates the model artifacts were not loaded at startup.
// Callers surface this as a service-unavailable condition without retrying;
// it reflects a startup failure, not a transient fault.
var ErrNotReady = errors.New("scoring model artifacts not loaded")

// Scorer produces a bounded integer match score from resume and
// job-description text. Pure and synchronous: no external calls.
type Scorer struct {
	artifacts *Artifacts
}

// NewScorer wraps an artifact bundle. A nil bundle yields a scorer that
// reports not-ready on every call, so the process can start without artifacts.
func NewScorer(artifacts *Artifacts) *Scorer {
	return &Scorer{artifacts: artifacts}
}

// Ready reports whether the scorer has a usable artifact bundle.
func (s *Scorer) Ready() bool {
	return s != nil && s.artifacts != nil && s.artifacts.Regressor != nil
}

// Score vectorizes both texts through the frozen vocabularies, appends the
// engineered numeric features, evaluates the regressor, and clamps the
// prediction to [0, 100] rounded to the nearest integer.
func (s *Scorer) Score(resumeText, jdText string) (int, error) {
	if !s.Ready() {
		return 0, ErrNotReady
	}

	features := s.Vectorize(resumeText, jdText)
	pred, err := s.artifacts.Regressor.Predict(features)
	if err != nil {
		return 0, fmt.Errorf("regressor evaluation failed: %w", err)
	}

	return clampScore(pred), nil
}

// Vectorize builds the full feature vector: resume TF-IDF block, then the
// job-description TF-IDF block, then [keyword overlap, experience gap]. The
// layout must match the training pipeline's column order exactly.
func (s *Scorer) Vectorize(resumeText, jdText string) []float64 {
	resumeVec := s.artifacts.ResumeVectorizer.Transform(resumeText)
	jdVec := s.artifacts.JDVectorizer.Transform(jdText)

	features := make([]float64, 0, len(resumeVec)+len(jdVec)+NumEngineeredFeatures)
	features = append(features, resumeVec...)
	features = append(features, jdVec...)
	features = append(features,
		float64(KeywordOverlapScore(resumeText, jdText)),
		float64(ExperienceGap(resumeText, jdText)),
	)
	return features
}

func clampScore(pred float64) int {
	if math.IsNaN(pred) {
		return 0
	}
	score := int(math.Round(pred))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
