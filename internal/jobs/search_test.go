package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexthire/next-hire/internal/types"
)

// fakeProvider records queries and replays scripted result sets in order.
type fakeProvider struct {
	queries []string
	results [][]types.JobPosting
	totals  []int
	err     error
}

func (f *fakeProvider) Search(_ context.Context, keywords string, _ types.JobSearchFilters, _ int) ([]types.JobPosting, int, error) {
	f.queries = append(f.queries, keywords)
	if f.err != nil {
		return nil, 0, f.err
	}
	call := len(f.queries) - 1
	if call >= len(f.results) {
		return nil, 0, nil
	}
	return f.results[call], f.totals[call], nil
}

const searchResume = `Software Engineer with golang golang golang kubernetes
kubernetes postgresql experience building backend services`

func TestSearchDerivesKeywordsFromResume(t *testing.T) {
	provider := &fakeProvider{
		results: [][]types.JobPosting{{{ID: "1", Title: "Backend Engineer", Description: "golang services"}}},
		totals:  []int{1},
	}

	result, err := NewSearcher(provider, nil).Search(context.Background(), searchResume, types.JobSearchFilters{}, 10)
	require.NoError(t, err)

	require.Len(t, provider.queries, 1)
	assert.Contains(t, provider.queries[0], "golang")
	assert.Contains(t, provider.queries[0], "kubernetes")
	assert.Equal(t, provider.queries[0], result.FiltersUsed.Keywords)
	assert.Equal(t, 1, result.TotalResults)
}

func TestSearchUsesCallerKeywordsVerbatim(t *testing.T) {
	provider := &fakeProvider{
		results: [][]types.JobPosting{{}},
		totals:  []int{0},
	}

	filters := types.JobSearchFilters{Keywords: "embedded rust"}
	result, err := NewSearcher(provider, nil).Search(context.Background(), searchResume, filters, 10)
	require.NoError(t, err)

	// Zero results for a caller query is an answer; no fallback fires.
	require.Len(t, provider.queries, 1)
	assert.Equal(t, "embedded rust", provider.queries[0])
	assert.Empty(t, result.Jobs)
}

func TestSearchFallsBackToInferredRole(t *testing.T) {
	provider := &fakeProvider{
		results: [][]types.JobPosting{
			{},
			{{ID: "2", Title: "Software Engineer", Description: "general role"}},
		},
		totals: []int{0, 1},
	}

	result, err := NewSearcher(provider, nil).Search(context.Background(), searchResume, types.JobSearchFilters{}, 10)
	require.NoError(t, err)

	require.Len(t, provider.queries, 2)
	assert.Equal(t, "software engineer", provider.queries[1])
	require.Len(t, result.Jobs, 1)
	assert.Equal(t, "2", result.Jobs[0].ID)
	assert.Equal(t, "software engineer", result.FiltersUsed.Keywords,
		"echoed keywords must be the query that produced the results")
}

func TestSearchPropagatesProviderError(t *testing.T) {
	provider := &fakeProvider{err: &ProviderError{Provider: "Adzuna", Cause: errors.New("down")}}

	_, err := NewSearcher(provider, nil).Search(context.Background(), searchResume, types.JobSearchFilters{}, 10)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}

func TestSearchRanksAndAnnotatesPostings(t *testing.T) {
	provider := &fakeProvider{
		results: [][]types.JobPosting{{
			{ID: "far", Title: "Florist", Description: "arrange flowers in the shop"},
			{ID: "near", Title: "Golang Backend Engineer", Description: "golang kubernetes postgresql services. Cover letter required."},
		}},
		totals: []int{2},
	}

	result, err := NewSearcher(provider, nil).Search(context.Background(), searchResume, types.JobSearchFilters{}, 10)
	require.NoError(t, err)

	require.Len(t, result.Jobs, 2)
	assert.Equal(t, "near", result.Jobs[0].ID, "most similar posting should rank first")
	require.NotNil(t, result.Jobs[0].SimilarityScore)
	require.NotNil(t, result.Jobs[1].SimilarityScore)
	assert.Greater(t, *result.Jobs[0].SimilarityScore, *result.Jobs[1].SimilarityScore)
	assert.Equal(t, []string{"cover_letter"}, result.Jobs[0].RequiredFields)
}

func TestSearchClampsLimit(t *testing.T) {
	provider := &fakeProvider{results: [][]types.JobPosting{{}}, totals: []int{0}}
	searcher := NewSearcher(provider, nil)

	_, err := searcher.Search(context.Background(), searchResume, types.JobSearchFilters{Keywords: "x"}, 0)
	require.NoError(t, err)
	_, err = searcher.Search(context.Background(), searchResume, types.JobSearchFilters{Keywords: "x"}, 500)
	require.NoError(t, err)
}
