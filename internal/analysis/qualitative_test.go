package analysis

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexthire/next-hire/internal/llm"
	"github.com/nexthire/next-hire/internal/types"
)

const narrativeReply = `{
	"summary": "Solid backend profile with gaps in cloud tooling.",
	"strengths": ["Strong Go experience", "Production ownership"],
	"areas_for_improvement": ["Add cloud certifications"],
	"keyword_analysis": {
		"matching_keywords": ["golang", "postgresql"],
		"missing_keywords": ["kubernetes"]
	},
	"rewrite_suggestions": [
		{"original_bullet": "did stuff", "suggested_improvement": "Delivered the billing service rewrite"},
		{"original_bullet": "", "suggested_improvement": "orphaned improvement"},
		{"original_bullet": "half pair", "suggested_improvement": ""}
	]
}`

func TestAnalyzeBuildsReportFromNarrative(t *testing.T) {
	client := staticReply(narrativeReply)
	analyzer := NewAnalyzer(client, nil, nil)

	actx := types.AnalysisContext{JobDescription: "Go backend role"}
	report, err := analyzer.Analyze(context.Background(), "resume text", actx, 72)
	require.NoError(t, err)

	assert.Equal(t, 72, report.MatchScore)
	assert.Equal(t, "Solid backend profile with gaps in cloud tooling.", report.Summary)
	assert.Equal(t, []string{"kubernetes"}, report.KeywordAnalysis.MissingKeywords)
	require.Len(t, report.RewriteSuggestions, 1, "half-filled pairs must be dropped")
	assert.Equal(t, "did stuff", report.RewriteSuggestions[0].OriginalBullet)
}

func TestAnalyzeScoreIsNeverOverwritten(t *testing.T) {
	// A reply that smuggles in its own match_score.
	reply := strings.Replace(narrativeReply, `"summary"`, `"match_score": 99, "summary"`, 1)
	client := staticReply(reply)
	analyzer := NewAnalyzer(client, nil, nil)

	report, err := analyzer.Analyze(context.Background(), "resume", types.AnalysisContext{CareerLevel: types.CareerLevelMid}, 31)
	require.NoError(t, err)
	assert.Equal(t, 31, report.MatchScore)
}

func TestAnalyzePromptSelection(t *testing.T) {
	tests := []struct {
		name    string
		actx    types.AnalysisContext
		wantIn  string
		wantOut string
	}{
		{
			name:   "job description uses ATS persona and real posting",
			actx:   types.AnalysisContext{JobDescription: "We need a Rust engineer"},
			wantIn: "We need a Rust engineer",
		},
		{
			name:   "entry level uses entry persona and synthetic posting",
			actx:   types.AnalysisContext{CareerLevel: types.CareerLevelEntry},
			wantIn: "entry-level candidates",
		},
		{
			name:   "senior level uses senior persona",
			actx:   types.AnalysisContext{CareerLevel: types.CareerLevelSenior},
			wantIn: "senior candidates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := staticReply(narrativeReply)
			_, err := NewAnalyzer(client, nil, nil).Analyze(context.Background(), "resume", tt.actx, 50)
			require.NoError(t, err)
			require.Len(t, client.prompts, 1)
			assert.Contains(t, client.prompts[0], tt.wantIn)
			assert.Contains(t, client.prompts[0], "50 out of 100")
		})
	}
}

func TestContextDocument(t *testing.T) {
	jd := ContextDocument(types.AnalysisContext{JobDescription: "real posting"})
	assert.Equal(t, "real posting", jd)

	synthetic := ContextDocument(types.AnalysisContext{CareerLevel: types.CareerLevelSenior})
	assert.Contains(t, synthetic, "6+ years")
}

func TestAnalyzePipelineReplacesPromptPairs(t *testing.T) {
	client := &fakeClient{respond: func(prompt string, _ llm.ModelTier) (string, error) {
		switch {
		case isPoolPrompt(prompt):
			return `{"bullets": ["managed things"]}`, nil
		case strings.Contains(prompt, "Original bullet:"):
			return `{"improved": "Directed a five-person platform team"}`, nil
		default:
			return narrativeReply, nil
		}
	}}

	pipeline := NewRewritePipeline(client, rand.New(rand.NewSource(1)), nil)
	analyzer := NewAnalyzer(client, pipeline, nil)

	report, err := analyzer.Analyze(context.Background(), "resume", types.AnalysisContext{CareerLevel: types.CareerLevelMid}, 60)
	require.NoError(t, err)

	require.Len(t, report.RewriteSuggestions, 1)
	assert.Equal(t, "managed things", report.RewriteSuggestions[0].OriginalBullet)
	assert.Equal(t, "Directed a five-person platform team", report.RewriteSuggestions[0].SuggestedImprovement)
}

func TestAnalyzePipelineFailureFallsBackToPromptPairs(t *testing.T) {
	client := &fakeClient{respond: func(prompt string, _ llm.ModelTier) (string, error) {
		if isPoolPrompt(prompt) {
			return "", errors.New("pool stage down")
		}
		return narrativeReply, nil
	}}

	pipeline := NewRewritePipeline(client, rand.New(rand.NewSource(1)), nil)
	analyzer := NewAnalyzer(client, pipeline, nil)

	report, err := analyzer.Analyze(context.Background(), "resume", types.AnalysisContext{CareerLevel: types.CareerLevelMid}, 60)
	require.NoError(t, err)

	require.Len(t, report.RewriteSuggestions, 1)
	assert.Equal(t, "did stuff", report.RewriteSuggestions[0].OriginalBullet)
}

func TestAnalyzeErrorTaxonomy(t *testing.T) {
	t.Run("generation failure", func(t *testing.T) {
		client := &fakeClient{respond: func(string, llm.ModelTier) (string, error) {
			return "", errors.New("deadline exceeded")
		}}
		_, err := NewAnalyzer(client, nil, nil).Analyze(context.Background(), "resume", types.AnalysisContext{CareerLevel: types.CareerLevelMid}, 50)

		var aiErr *AIServiceError
		require.ErrorAs(t, err, &aiErr)
	})

	t.Run("missing required narrative field", func(t *testing.T) {
		client := staticReply(`{"summary": "only a summary"}`)
		_, err := NewAnalyzer(client, nil, nil).Analyze(context.Background(), "resume", types.AnalysisContext{CareerLevel: types.CareerLevelMid}, 50)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
	})
}
