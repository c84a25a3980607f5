package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// decodeModelJSON unmarshals JSON from a model response. Models wrap output in
// markdown fences, prose, or emit slightly broken JSON; the chain here is:
// direct parse, fence stripping, a jsonrepair pass, then extraction of the
// first top-level object.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	stripped := stripCodeFences(s)
	if stripped != s {
		if err := json.Unmarshal([]byte(stripped), v); err == nil {
			return nil
		}
	}

	if repaired, err := jsonrepair.JSONRepair(stripped); err == nil {
		if err := json.Unmarshal([]byte(repaired), v); err == nil {
			return nil
		}
	}

	start := strings.IndexByte(stripped, '{')
	end := strings.LastIndexByte(stripped, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}
	sub := stripped[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}

// stripCodeFences removes a surrounding ``` or ```json fence pair, if present.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := s[3:]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		// Drop the language tag line ("json", "JSON", empty, ...).
		body = body[nl+1:]
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}
