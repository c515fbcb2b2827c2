// Package types defines the shared data structures exchanged between the
// orchestrators, the scoring pipeline, and the HTTP layer.
package types

// CategorizedSkills groups resume skills into the five fixed categories the
// extraction prompt asks for. Duplicates within a category are permitted.
type CategorizedSkills struct {
	ProgrammingLanguages   []string `json:"programming_languages,omitempty"`
	FrameworksAndLibraries []string `json:"frameworks_and_libraries,omitempty"`
	Databases              []string `json:"databases,omitempty"`
	CloudTechnologies      []string `json:"cloud_technologies,omitempty"`
	ToolsAndPlatforms      []string `json:"tools_and_platforms,omitempty"`
}

// WorkExperience is a single employment entry.
type WorkExperience struct {
	JobTitle    string   `json:"job_title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Description []string `json:"description,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Project is a single project entry. URL is resolved from the hyperlink
// side-channel when present; free-text guesses are never accepted.
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description []string `json:"description,omitempty"`
	TechStack   []string `json:"tech_stack,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Name         string `json:"name,omitempty"`
	Organization string `json:"organization,omitempty"`
	Date         string `json:"date,omitempty"`
}

// Language is a spoken language with proficiency.
type Language struct {
	Language    string `json:"language,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ResumeRecord is the structured parse of one resume text. Every field is
// optional; a parse attempt always yields a record, possibly mostly empty.
// Constructed once per extraction request and immutable thereafter.
type ResumeRecord struct {
	FullName          string             `json:"full_name,omitempty"`
	Email             string             `json:"email,omitempty"`
	PhoneNumber       string             `json:"phone_number,omitempty"`
	Location          string             `json:"location,omitempty"`
	LinkedInURL       string             `json:"linkedin_url,omitempty"`
	GitHubURL         string             `json:"github_url,omitempty"`
	PortfolioURL      string             `json:"portfolio_url,omitempty"`
	Summary           string             `json:"summary,omitempty"`
	CategorizedSkills *CategorizedSkills `json:"categorized_skills,omitempty"`
	WorkExperience    []WorkExperience   `json:"work_experience"`
	Education         []Education        `json:"education"`
	Projects          []Project          `json:"projects"`
	Certifications    []Certification    `json:"certifications"`
	Achievements      []string           `json:"achievements"`
	Publications      []string           `json:"publications"`
	Languages         []Language         `json:"languages"`
}
