package scoring

import (
	"regexp"
	"strings"

	"github.com/nexthire/next-hire/internal/parsing"
)

// NumEngineeredFeatures is the count of dense hand-engineered features
// appended after the two TF-IDF blocks: keyword overlap and experience gap.
const NumEngineeredFeatures = 2

// jdKeywordCount is how many job-description terms feed the overlap score,
// mirroring the keyword budget used when the training set was built.
const jdKeywordCount = 15

// neutralKeywordScore is returned when the job description yields no usable
// keywords, matching the training-time default.
const neutralKeywordScore = 50

var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*(?:\+|\s*-\s*\d{1,2})?\s*(?:years?|yrs?)`)

// KeywordOverlapScore computes the 0-100 fraction of job-description keywords
// found literally in the resume, using word-boundary matching. The training
// pipeline computed this feature offline; the serving path recomputes it here
// with deterministic term selection so the model sees a live signal instead
// of a placeholder constant.
func KeywordOverlapScore(resumeText, jdText string) int {
	keywords := parsing.TopKeywords(jdText, jdKeywordCount)
	if len(keywords) == 0 {
		return neutralKeywordScore
	}

	resumeLower := strings.ToLower(resumeText)
	found := 0
	for _, kw := range keywords {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		if pattern.MatchString(resumeLower) {
			found++
		}
	}
	return found * 100 / len(keywords)
}

// YearsOfExperience extracts a years-of-experience figure from free text.
// Ranges like "5-7 years" contribute their lower bound, "8+ years" yields 8,
// and the largest mention wins. Returns 0 when nothing matches; callers must
// treat 0 as "unknown", not as a literal zero.
func YearsOfExperience(text string) int {
	best := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		n := 0
		for _, r := range m[1] {
			n = n*10 + int(r-'0')
		}
		if n > best {
			best = n
		}
	}
	return best
}

// ExperienceGap is resume years minus job-required years. Derived from noisy
// free-text extraction; 0 doubles as the unknown/unspecified default.
func ExperienceGap(resumeText, jdText string) int {
	return YearsOfExperience(resumeText) - YearsOfExperience(jdText)
}
