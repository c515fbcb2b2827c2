package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/types"
)

const (
	adzunaAPIURL   = "https://api.adzuna.com/v1/api"
	adzunaSource   = "Adzuna"
	defaultCountry = "us"
)

// Provider fetches raw postings for a keyword query. Implementations return
// the postings for one page plus the provider's total hit count.
type Provider interface {
	Search(ctx context.Context, keywords string, filters types.JobSearchFilters, limit int) ([]types.JobPosting, int, error)
}

// AdzunaClient queries the Adzuna job search API.
type AdzunaClient struct {
	appID   string
	appKey  string
	country string
	logger  *zap.Logger

	HTTPClient *http.Client
	APIURL     string
}

// NewAdzunaClient creates an Adzuna client. An empty country defaults to "us".
func NewAdzunaClient(logger *zap.Logger, appID, appKey, country string) *AdzunaClient {
	if country == "" {
		country = defaultCountry
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdzunaClient{
		appID:   appID,
		appKey:  appKey,
		country: country,
		logger:  logger,
		APIURL:  adzunaAPIURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type adzunaEnvelope struct {
	Results []adzunaResult `json:"results"`
	Count   int            `json:"count"`
}

type adzunaResult struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	RedirectURL string  `json:"redirect_url"`
	Created     string  `json:"created"`
	SalaryMin   float64 `json:"salary_min"`
	SalaryMax   float64 `json:"salary_max"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

// Search fetches the first page of results for the given keywords and
// filters. All failures come back as *ProviderError.
func (c *AdzunaClient) Search(ctx context.Context, keywords string, filters types.JobSearchFilters, limit int) ([]types.JobPosting, int, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/search/1", c.APIURL, c.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, &ProviderError{Provider: adzunaSource, Cause: err}
	}
	req.URL.RawQuery = c.buildParams(keywords, filters, limit).Encode()

	c.logger.Debug("querying postings provider",
		zap.String("provider", adzunaSource),
		zap.String("keywords", keywords),
		zap.Int("limit", limit))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, &ProviderError{Provider: adzunaSource, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, &ProviderError{Provider: adzunaSource, Cause: fmt.Errorf("bad status: %s", resp.Status)}
	}

	var envelope adzunaEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, 0, &ProviderError{Provider: adzunaSource, Cause: err}
	}

	postings := make([]types.JobPosting, 0, len(envelope.Results))
	for _, r := range envelope.Results {
		postings = append(postings, toPosting(r))
	}
	return postings, envelope.Count, nil
}

func (c *AdzunaClient) buildParams(keywords string, filters types.JobSearchFilters, limit int) url.Values {
	q := url.Values{}
	q.Set("app_id", c.appID)
	q.Set("app_key", c.appKey)
	q.Set("results_per_page", strconv.Itoa(limit))
	q.Set("what", keywords)
	q.Set("content-type", "application/json")

	if filters.Location != "" {
		q.Set("where", filters.Location)
	}
	if filters.DistanceKM > 0 {
		q.Set("distance", strconv.Itoa(filters.DistanceKM))
	}
	if filters.SalaryMin > 0 {
		q.Set("salary_min", strconv.Itoa(filters.SalaryMin))
	}
	if filters.SalaryMax > 0 {
		q.Set("salary_max", strconv.Itoa(filters.SalaryMax))
	}

	switch filters.EmploymentType {
	case "fulltime":
		q.Set("full_time", "1")
	case "parttime":
		q.Set("part_time", "1")
	case "contract":
		q.Set("contract", "1")
	case "internship":
		// The provider has no internship flag; fold it into the query text.
		q.Set("what", keywords+" internship")
	}
	return q
}

func toPosting(r adzunaResult) types.JobPosting {
	return types.JobPosting{
		ID:             r.ID,
		Title:          r.Title,
		Company:        r.Company.DisplayName,
		Location:       r.Location.DisplayName,
		Salary:         formatSalary(r.SalaryMin, r.SalaryMax),
		Description:    r.Description,
		URL:            r.RedirectURL,
		Source:         adzunaSource,
		PostedAt:       r.Created,
		RequiredFields: []string{},
	}
}

func formatSalary(min, max float64) string {
	switch {
	case min > 0 && max > 0 && min != max:
		return fmt.Sprintf("%.0f - %.0f", min, max)
	case min > 0:
		return fmt.Sprintf("%.0f", min)
	case max > 0:
		return fmt.Sprintf("%.0f", max)
	}
	return ""
}
