package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/nexthire/next-hire/internal/llm"
	"github.com/nexthire/next-hire/internal/prompts"
	"github.com/nexthire/next-hire/internal/schemas"
	"github.com/nexthire/next-hire/internal/types"
)

// Extractor turns raw resume text into a structured ResumeRecord with a
// single generative round trip.
type Extractor struct {
	client llm.Client
	logger *zap.Logger
}

// NewExtractor creates a resume extractor backed by the given client.
func NewExtractor(client llm.Client, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{client: client, logger: logger}
}

// Extract parses resumeText into a ResumeRecord. The reply is routed through
// payload extraction and schema validation before unmarshalling; a record is
// only returned when all three steps succeed.
func (e *Extractor) Extract(ctx context.Context, resumeText string) (*types.ResumeRecord, error) {
	schema, err := schemas.Describe(schemas.ResumeRecordSchema)
	if err != nil {
		return nil, &AIServiceError{Op: "resume extraction", Cause: err}
	}

	prompt := prompts.Format(prompts.MustGet("extraction.json", "parse-resume"), map[string]string{
		"Schema":     schema,
		"ResumeText": resumeText,
	})

	reply, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &AIServiceError{Op: "resume extraction", Cause: err}
	}

	payload, err := llm.ExtractPayload(reply)
	if err != nil {
		return nil, &ExtractionError{Op: "resume extraction", Cause: err}
	}

	if err := schemas.Validate(schemas.ResumeRecordSchema, string(payload)); err != nil {
		return nil, &ValidationError{Op: "resume extraction", Cause: err}
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, &ValidationError{Op: "resume extraction", Cause: err}
	}

	e.scrubProjectURLs(&record)
	normalizeRecordLists(&record)
	return &record, nil
}

// normalizeRecordLists replaces nil list fields with empty slices. The model
// may omit any section entirely; the response still always carries arrays.
func normalizeRecordLists(record *types.ResumeRecord) {
	if record.WorkExperience == nil {
		record.WorkExperience = []types.WorkExperience{}
	}
	if record.Education == nil {
		record.Education = []types.Education{}
	}
	if record.Projects == nil {
		record.Projects = []types.Project{}
	}
	if record.Certifications == nil {
		record.Certifications = []types.Certification{}
	}
	if record.Achievements == nil {
		record.Achievements = []string{}
	}
	if record.Publications == nil {
		record.Publications = []string{}
	}
	if record.Languages == nil {
		record.Languages = []types.Language{}
	}
}

// scrubProjectURLs drops project URLs that are not absolute http(s) URLs.
// Anchor text like "demo" or "live" sometimes leaks through despite the
// prompt instructions.
func (e *Extractor) scrubProjectURLs(record *types.ResumeRecord) {
	for i := range record.Projects {
		url := record.Projects[i].URL
		if url == "" {
			continue
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			e.logger.Warn("dropping non-URL project link",
				zap.String("project", record.Projects[i].Name),
				zap.String("value", url))
			record.Projects[i].URL = ""
		}
	}
}
