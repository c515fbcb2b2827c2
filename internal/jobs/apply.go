package jobs

import (
	"fmt"
	"strings"

	"github.com/nexthire/next-hire/internal/types"
)

// Intake validates applications against their required fields. It never
// fails: an application either comes back "submitted" or "needs_more_info"
// with the list of missing fields.
type Intake struct{}

// NewIntake creates an application intake service.
func NewIntake() *Intake {
	return &Intake{}
}

// Apply checks one application. A required field counts as provided only when
// its value is non-blank.
func (in *Intake) Apply(app types.JobApplication) types.ApplyOutcome {
	missing := make([]string, 0, len(app.RequiredFields))
	for _, field := range app.RequiredFields {
		if strings.TrimSpace(app.ProvidedFields[field]) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return types.ApplyOutcome{
			JobID:         app.JobID,
			Status:        types.ApplyStatusNeedsMoreInfo,
			MissingFields: missing,
			Message:       fmt.Sprintf("%d field(s) still needed before this application can be submitted", len(missing)),
		}
	}

	return types.ApplyOutcome{
		JobID:         app.JobID,
		Status:        types.ApplyStatusSubmitted,
		MissingFields: []string{},
		Message:       fmt.Sprintf("Application for %q recorded", app.JobTitle),
	}
}

// ApplyAll applies the intake rule to each posting independently. One
// incomplete application never blocks the rest of the batch.
func (in *Intake) ApplyAll(apps []types.JobApplication) []types.ApplyOutcome {
	outcomes := make([]types.ApplyOutcome, 0, len(apps))
	for _, app := range apps {
		outcomes = append(outcomes, in.Apply(app))
	}
	return outcomes
}
