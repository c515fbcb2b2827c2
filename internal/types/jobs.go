package types

// JobSearchFilters narrows a job search. All fields are optional; zero values
// mean "no preference".
type JobSearchFilters struct {
	Keywords       string `json:"keywords,omitempty"`
	Location       string `json:"location,omitempty"`
	DistanceKM     int    `json:"distance_km,omitempty" validate:"omitempty,gte=1,lte=100"`
	EmploymentType string `json:"employment_type,omitempty" validate:"omitempty,oneof=fulltime parttime contract internship"`
	SalaryMin      int    `json:"salary_min,omitempty"`
	SalaryMax      int    `json:"salary_max,omitempty"`
}

// JobPosting is a normalized posting from the external provider. It lives for
// the duration of one search request; SimilarityScore is filled in by the
// ranking pass.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	Description     string   `json:"description,omitempty"`
	URL             string   `json:"url"`
	Source          string   `json:"source"`
	PostedAt        string   `json:"posted_at,omitempty"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	RequiredFields  []string `json:"required_fields"`
}

// JobSearchResult is the outcome of one ranked search.
type JobSearchResult struct {
	Jobs         []JobPosting     `json:"jobs"`
	TotalResults int              `json:"total_results"`
	FiltersUsed  JobSearchFilters `json:"filters_used"`
}

// JobApplication carries everything needed to validate an application for a
// single posting.
type JobApplication struct {
	JobID          string            `json:"job_id" validate:"required"`
	JobTitle       string            `json:"job_title"`
	Company        string            `json:"company"`
	ApplyURL       string            `json:"apply_url" validate:"required,url"`
	RequiredFields []string          `json:"required_fields"`
	ProvidedFields map[string]string `json:"provided_fields"`
}

// Application intake statuses.
const (
	ApplyStatusSubmitted     = "submitted"
	ApplyStatusNeedsMoreInfo = "needs_more_info"
)

// ApplyOutcome reports whether a single application is submittable.
type ApplyOutcome struct {
	JobID         string   `json:"job_id"`
	Status        string   `json:"status"`
	MissingFields []string `json:"missing_fields"`
	Message       string   `json:"message,omitempty"`
}
