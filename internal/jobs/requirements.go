package jobs

import "strings"

// requirementMarkers maps intake fields to the posting phrases that imply
// them. Order fixes the output order of inferred fields.
var requirementMarkers = []struct {
	field   string
	phrases []string
}{
	{"cover_letter", []string{"cover letter", "covering letter"}},
	{"portfolio_link", []string{"portfolio", "work samples", "github profile"}},
	{"salary_expectation", []string{"salary expectation", "salary requirement", "desired salary", "expected salary"}},
	{"availability", []string{"notice period", "start date", "availability", "available to start"}},
}

// InferRequiredFields scans a posting description for phrases that suggest
// the application will ask for extra information beyond the resume.
func InferRequiredFields(description string) []string {
	lower := strings.ToLower(description)
	fields := make([]string, 0, len(requirementMarkers))
	for _, marker := range requirementMarkers {
		for _, phrase := range marker.phrases {
			if strings.Contains(lower, phrase) {
				fields = append(fields, marker.field)
				break
			}
		}
	}
	return fields
}
