package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrPayloadNotFound indicates the reply contains no candidate JSON payload
// at all: no fenced block and no brace-delimited span.
var ErrPayloadNotFound = errors.New("no JSON payload found in model reply")

// PayloadParseError indicates a candidate payload was located but is not
// structurally valid JSON. Kept distinct from ErrPayloadNotFound so callers
// can tell "model returned prose" from "model returned broken JSON".
type PayloadParseError struct {
	Cause error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("model reply payload is not valid JSON: %v", e.Cause)
}

func (e *PayloadParseError) Unwrap() error {
	return e.Cause
}

// fencedJSONPattern matches a ```json fenced object, tolerating surrounding
// prose. Models frequently wrap payloads this way despite JSON-mode requests.
var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// ExtractPayload locates and strictly parses the single JSON object embedded
// in a model reply. A fenced ```json block is tried first (highest
// confidence); otherwise the span between the first opening and last closing
// brace is used. Structural-parse failure is a *PayloadParseError; absence of
// any candidate is ErrPayloadNotFound.
func ExtractPayload(raw string) (json.RawMessage, error) {
	candidate := ""
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		candidate = m[1]
	} else {
		start := strings.Index(raw, "{")
		end := strings.LastIndex(raw, "}")
		if start == -1 || end == -1 || end < start {
			return nil, ErrPayloadNotFound
		}
		candidate = raw[start : end+1]
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, &PayloadParseError{Cause: err}
	}

	return json.RawMessage(candidate), nil
}
