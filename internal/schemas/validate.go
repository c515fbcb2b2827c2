// Package schemas provides strict shape validation for generative-model
// replies. The outward prompt describes a requested shape; this package is
// the inward check that the reply actually conforms.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var schemaFiles embed.FS

// Embedded schema filenames.
const (
	ResumeRecordSchema = "resume_record.json"
	MatchReportSchema  = "match_report.json"
)

// ValidationError reports all field-level violations found in one document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks jsonContent against the named embedded schema. Returns a
// *ValidationError when the document does not conform.
func Validate(schemaName, jsonContent string) error {
	schemaContent, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run for %s: %w", schemaName, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Describe returns the raw schema text for embedding into prompts, so the
// requested shape and the validated shape come from the same source.
func Describe(schemaName string) (string, error) {
	content, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}
	return string(content), nil
}
