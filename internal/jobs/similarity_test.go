package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexthire/next-hire/internal/types"
)

func TestRankBySimilarityOrdersByRelevance(t *testing.T) {
	resume := "golang engineer building kubernetes services with postgresql"
	postings := []types.JobPosting{
		{ID: "c", Title: "Chef", Description: "prepare meals for restaurant guests"},
		{ID: "a", Title: "Golang Engineer", Description: "kubernetes postgresql golang services"},
		{ID: "b", Title: "Platform Engineer", Description: "kubernetes platform automation"},
	}

	RankBySimilarity(resume, postings)

	assert.Equal(t, "a", postings[0].ID)
	assert.Equal(t, "b", postings[1].ID)
	assert.Equal(t, "c", postings[2].ID)
	for _, p := range postings {
		require.NotNil(t, p.SimilarityScore)
		assert.GreaterOrEqual(t, *p.SimilarityScore, 0.0)
		assert.LessOrEqual(t, *p.SimilarityScore, 1.0+1e-9)
	}
}

func TestRankBySimilarityAllStopwordCorpus(t *testing.T) {
	// Nothing here survives tokenization, so every vector is empty. Scores
	// must be 0.0, not an error or NaN.
	resume := "the and for with"
	postings := []types.JobPosting{
		{ID: "1", Title: "the", Description: "and for"},
		{ID: "2", Title: "with", Description: "the the the"},
	}

	RankBySimilarity(resume, postings)

	for _, p := range postings {
		require.NotNil(t, p.SimilarityScore)
		assert.Equal(t, 0.0, *p.SimilarityScore)
	}
	assert.Equal(t, "1", postings[0].ID, "order must hold when all scores tie")
}

func TestRankBySimilarityEmptyPostings(t *testing.T) {
	assert.NotPanics(t, func() {
		RankBySimilarity("golang engineer", nil)
	})
}

func TestRankBySimilarityIdenticalTextScoresHighest(t *testing.T) {
	resume := "golang kubernetes postgresql engineer"
	postings := []types.JobPosting{
		{ID: "same", Title: "golang kubernetes", Description: "postgresql engineer"},
	}

	RankBySimilarity(resume, postings)

	require.NotNil(t, postings[0].SimilarityScore)
	assert.InDelta(t, 1.0, *postings[0].SimilarityScore, 1e-9)
}
