package analysis

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/llm"
	"github.com/nexthire/next-hire/internal/prompts"
	"github.com/nexthire/next-hire/internal/schemas"
	"github.com/nexthire/next-hire/internal/types"
)

// Analyzer produces the qualitative narrative for an already-computed score.
// The score comes from the regression model; the narrative explains it and
// is never allowed to restate it.
type Analyzer struct {
	client  llm.Client
	rewrite *RewritePipeline
	logger  *zap.Logger
}

// NewAnalyzer creates an analyzer. The rewrite pipeline is optional; when nil
// the narrative's own suggestion pairs are used as-is.
func NewAnalyzer(client llm.Client, rewrite *RewritePipeline, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, rewrite: rewrite, logger: logger}
}

// ContextDocument returns the text that stands in for the job description:
// the real posting when one was supplied, otherwise the synthetic description
// for the requested career level. The same document feeds both vectorization
// and the narrative prompt so the two stages evaluate against identical text.
func ContextDocument(actx types.AnalysisContext) string {
	if actx.JobDescription != "" {
		return actx.JobDescription
	}
	return prompts.MustGet("analysis.json", "synthetic-jd-"+string(actx.CareerLevel))
}

func persona(actx types.AnalysisContext) string {
	if actx.JobDescription != "" {
		return prompts.MustGet("analysis.json", "persona-jd")
	}
	return prompts.MustGet("analysis.json", "persona-"+string(actx.CareerLevel))
}

// Analyze builds the full match report for a resume, context, and final
// score. The narrative fields come from the model reply; MatchScore is set
// from the score argument regardless of anything the reply contains.
func (a *Analyzer) Analyze(ctx context.Context, resumeText string, actx types.AnalysisContext, score int) (*types.MatchReport, error) {
	schema, err := schemas.Describe(schemas.MatchReportSchema)
	if err != nil {
		return nil, &AIServiceError{Op: "qualitative analysis", Cause: err}
	}

	contextDoc := ContextDocument(actx)
	prompt := prompts.Format(prompts.MustGet("analysis.json", "analyze"), map[string]string{
		"Persona":    persona(actx),
		"Score":      strconv.Itoa(score),
		"Schema":     schema,
		"ResumeText": resumeText,
		"Context":    contextDoc,
	})

	reply, err := a.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &AIServiceError{Op: "qualitative analysis", Cause: err}
	}

	payload, err := llm.ExtractPayload(reply)
	if err != nil {
		return nil, &ExtractionError{Op: "qualitative analysis", Cause: err}
	}

	if err := schemas.Validate(schemas.MatchReportSchema, string(payload)); err != nil {
		return nil, &ValidationError{Op: "qualitative analysis", Cause: err}
	}

	var narrative struct {
		Summary             string                    `json:"summary"`
		Strengths           []string                  `json:"strengths"`
		AreasForImprovement []string                  `json:"areas_for_improvement"`
		KeywordAnalysis     types.KeywordAnalysis     `json:"keyword_analysis"`
		RewriteSuggestions  []types.RewriteSuggestion `json:"rewrite_suggestions"`
	}
	if err := json.Unmarshal(payload, &narrative); err != nil {
		return nil, &ValidationError{Op: "qualitative analysis", Cause: err}
	}

	report := &types.MatchReport{
		MatchScore:          score,
		Summary:             narrative.Summary,
		Strengths:           narrative.Strengths,
		AreasForImprovement: narrative.AreasForImprovement,
		KeywordAnalysis:     narrative.KeywordAnalysis,
		RewriteSuggestions:  cleanSuggestions(narrative.RewriteSuggestions),
	}

	// The dedicated pipeline produces better-targeted pairs; the prompt's own
	// pairs remain as fallback when it comes back empty.
	if a.rewrite != nil {
		if pairs := a.rewrite.Run(ctx, resumeText, contextDoc); len(pairs) > 0 {
			report.RewriteSuggestions = pairs
		}
	}

	if len(report.RewriteSuggestions) > maxRewrites {
		report.RewriteSuggestions = report.RewriteSuggestions[:maxRewrites]
	}
	return report, nil
}

// cleanSuggestions drops pairs with an empty side. The prompt asks the model
// to self-review these, but replies still occasionally contain half-filled
// entries.
func cleanSuggestions(in []types.RewriteSuggestion) []types.RewriteSuggestion {
	out := make([]types.RewriteSuggestion, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.OriginalBullet) == "" || strings.TrimSpace(s.SuggestedImprovement) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
