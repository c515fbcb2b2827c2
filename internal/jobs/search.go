package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/parsing"
	"github.com/nexthire/next-hire/internal/types"
)

const (
	// DefaultLimit applies when the caller does not bound the search.
	DefaultLimit = 10
	// MaxLimit caps results at one provider page.
	MaxLimit = 25

	derivedKeywordCount = 5
)

// Searcher runs the ranked job search: derive keywords, query the provider,
// fall back to a broader role query when warranted, infer required fields,
// and rank by resume similarity.
type Searcher struct {
	provider Provider
	logger   *zap.Logger
}

// NewSearcher creates a searcher over the given provider.
func NewSearcher(provider Provider, logger *zap.Logger) *Searcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{provider: provider, logger: logger}
}

// Search executes the full pipeline. Caller-supplied keywords are used
// verbatim; otherwise keywords are derived from the resume. The fallback
// query runs only when the first query returns zero postings AND the caller
// supplied no keywords; a caller query that finds nothing is an answer, not a
// failure.
func (s *Searcher) Search(ctx context.Context, resumeText string, filters types.JobSearchFilters, limit int) (*types.JobSearchResult, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	callerKeywords := filters.Keywords != ""
	keywords := filters.Keywords
	if !callerKeywords {
		keywords = parsing.DeriveKeywords(resumeText, derivedKeywordCount)
	}

	postings, total, err := s.provider.Search(ctx, keywords, filters, limit)
	if err != nil {
		return nil, err
	}

	if len(postings) == 0 && !callerKeywords {
		role := parsing.InferRole(resumeText)
		if role != keywords {
			s.logger.Info("derived keywords found nothing, retrying with inferred role",
				zap.String("keywords", keywords),
				zap.String("role", role))
			postings, total, err = s.provider.Search(ctx, role, filters, limit)
			if err != nil {
				return nil, err
			}
			keywords = role
		}
	}

	for i := range postings {
		postings[i].RequiredFields = InferRequiredFields(postings[i].Description)
	}

	RankBySimilarity(resumeText, postings)

	filters.Keywords = keywords
	return &types.JobSearchResult{
		Jobs:         postings,
		TotalResults: total,
		FiltersUsed:  filters,
	}, nil
}
