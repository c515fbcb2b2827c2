// Package scoring implements the deterministic half of the hybrid match
// pipeline: frozen TF-IDF vectorization, hand-engineered numeric features,
// and a trained tree-ensemble regressor producing a bounded integer score.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/nexthire/next-hire/internal/parsing"
)

// Vectorizer is a frozen TF-IDF transform. The vocabulary and IDF weights are
// fitted once by the offline training pipeline and only ever applied here;
// there is deliberately no Fit method on the serving path.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// Dim returns the dimensionality of vectors produced by Transform.
func (v *Vectorizer) Dim() int {
	return len(v.IDF)
}

// Validate checks internal consistency of the fitted vocabulary.
func (v *Vectorizer) Validate() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("vectorizer has empty vocabulary")
	}
	if len(v.Vocabulary) != len(v.IDF) {
		return fmt.Errorf("vectorizer vocabulary size %d does not match idf length %d",
			len(v.Vocabulary), len(v.IDF))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("vectorizer term %q maps to out-of-range index %d", term, idx)
		}
	}
	return nil
}

// Transform converts text into an L2-normalized TF-IDF vector. The text is
// passed through parsing.Normalize first, matching the offline feature path.
// Terms outside the frozen vocabulary are ignored.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, v.Dim())

	counts := make(map[int]float64)
	for _, token := range strings.Fields(parsing.Normalize(text)) {
		if len(token) < 2 {
			continue
		}
		if idx, ok := v.Vocabulary[token]; ok {
			counts[idx]++
		}
	}

	var sumSquares float64
	for idx, tf := range counts {
		w := tf * v.IDF[idx]
		vec[idx] = w
		sumSquares += w * w
	}

	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for idx := range counts {
			vec[idx] /= norm
		}
	}

	return vec
}
