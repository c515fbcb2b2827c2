package jobs

import (
	"math"
	"sort"

	"github.com/nexthire/next-hire/internal/parsing"
	"github.com/nexthire/next-hire/internal/types"
)

// RankBySimilarity scores each posting against the resume with a TF-IDF
// cosine over the ad-hoc corpus of resume plus posting texts, then sorts
// postings by score descending. Scoring is fail-soft: when the corpus yields
// no usable vocabulary every posting gets 0.0 and the original order holds.
func RankBySimilarity(resumeText string, postings []types.JobPosting) {
	docs := make([][]string, 0, len(postings)+1)
	docs = append(docs, contentTokens(resumeText))
	for _, p := range postings {
		docs = append(docs, contentTokens(p.Title+" "+p.Description))
	}

	vectors := vectorizeCorpus(docs)
	resumeVec := vectors[0]

	for i := range postings {
		score := cosine(resumeVec, vectors[i+1])
		postings[i].SimilarityScore = &score
	}

	sortPostingsByScore(postings)
}

func contentTokens(text string) []string {
	tokens := parsing.Tokenize(parsing.Normalize(text))
	out := tokens[:0]
	for _, t := range tokens {
		if parsing.IsStopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// vectorizeCorpus builds smoothed-IDF, L2-normalized TF-IDF vectors for each
// token document. Documents with no in-vocabulary tokens come back as nil.
func vectorizeCorpus(docs [][]string) []map[string]float64 {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, t := range doc {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	if len(df) == 0 {
		return make([]map[string]float64, len(docs))
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for t, count := range df {
		idf[t] = math.Log((1+n)/(1+float64(count))) + 1
	}

	vectors := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		vec := make(map[string]float64)
		for _, t := range doc {
			vec[t] += idf[t]
		}
		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for t := range vec {
			vec[t] /= norm
		}
		vectors[i] = vec
	}
	return vectors
}

func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for t, w := range a {
		dot += w * b[t]
	}
	return dot
}

// sortPostingsByScore sorts by descending score. Stability keeps provider
// order among ties.
func sortPostingsByScore(postings []types.JobPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		return score(postings[i]) > score(postings[j])
	})
}

func score(p types.JobPosting) float64 {
	if p.SimilarityScore == nil {
		return 0.0
	}
	return *p.SimilarityScore
}
