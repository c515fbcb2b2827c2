package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexthire/next-hire/internal/types"
)

func TestIntakeApply(t *testing.T) {
	tests := []struct {
		name        string
		app         types.JobApplication
		wantStatus  string
		wantMissing []string
	}{
		{
			name: "no required fields submits",
			app: types.JobApplication{
				JobID:    "1",
				JobTitle: "Go Developer",
				ApplyURL: "https://example.com/1",
			},
			wantStatus:  types.ApplyStatusSubmitted,
			wantMissing: []string{},
		},
		{
			name: "all required fields provided submits",
			app: types.JobApplication{
				JobID:          "2",
				ApplyURL:       "https://example.com/2",
				RequiredFields: []string{"cover_letter", "availability"},
				ProvidedFields: map[string]string{
					"cover_letter": "Dear team...",
					"availability": "Two weeks notice",
				},
			},
			wantStatus:  types.ApplyStatusSubmitted,
			wantMissing: []string{},
		},
		{
			name: "missing field needs more info",
			app: types.JobApplication{
				JobID:          "3",
				ApplyURL:       "https://example.com/3",
				RequiredFields: []string{"cover_letter", "salary_expectation"},
				ProvidedFields: map[string]string{"cover_letter": "Dear team..."},
			},
			wantStatus:  types.ApplyStatusNeedsMoreInfo,
			wantMissing: []string{"salary_expectation"},
		},
		{
			name: "blank value counts as missing",
			app: types.JobApplication{
				JobID:          "4",
				ApplyURL:       "https://example.com/4",
				RequiredFields: []string{"portfolio_link"},
				ProvidedFields: map[string]string{"portfolio_link": "   "},
			},
			wantStatus:  types.ApplyStatusNeedsMoreInfo,
			wantMissing: []string{"portfolio_link"},
		},
		{
			name: "nil provided map with requirements",
			app: types.JobApplication{
				JobID:          "5",
				ApplyURL:       "https://example.com/5",
				RequiredFields: []string{"cover_letter"},
			},
			wantStatus:  types.ApplyStatusNeedsMoreInfo,
			wantMissing: []string{"cover_letter"},
		},
	}

	intake := NewIntake()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := intake.Apply(tt.app)
			assert.Equal(t, tt.app.JobID, outcome.JobID)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantMissing, outcome.MissingFields)
			assert.NotEmpty(t, outcome.Message)
		})
	}
}

func TestIntakeApplyAllIsIndependentPerJob(t *testing.T) {
	apps := []types.JobApplication{
		{JobID: "ok", ApplyURL: "https://example.com/ok"},
		{JobID: "incomplete", ApplyURL: "https://example.com/i", RequiredFields: []string{"cover_letter"}},
		{JobID: "ok2", ApplyURL: "https://example.com/ok2"},
	}

	outcomes := NewIntake().ApplyAll(apps)
	require.Len(t, outcomes, 3)
	assert.Equal(t, types.ApplyStatusSubmitted, outcomes[0].Status)
	assert.Equal(t, types.ApplyStatusNeedsMoreInfo, outcomes[1].Status)
	assert.Equal(t, types.ApplyStatusSubmitted, outcomes[2].Status)
}

func TestInferRequiredFields(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{
			name:        "cover letter marker",
			description: "Please submit a Cover Letter with your application.",
			want:        []string{"cover_letter"},
		},
		{
			name:        "multiple markers in stable order",
			description: "Include salary expectations and your notice period. A portfolio helps.",
			want:        []string{"portfolio_link", "salary_expectation", "availability"},
		},
		{
			name:        "no markers",
			description: "We build distributed systems in Go.",
			want:        []string{},
		},
		{
			name:        "duplicate phrases yield one field",
			description: "cover letter required; covering letter should be tailored",
			want:        []string{"cover_letter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferRequiredFields(tt.description))
		})
	}
}
