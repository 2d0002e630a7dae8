package models

import (
	"encoding/json"
	"fmt"
)

// Analysis is the decoded shape of a conversation's llmAnalysis blob. The
// blob is produced by an external pipeline and stored as an opaque JSON
// string; Steps maps script step names to whether they were completed.
type Analysis struct {
	Strengths    []string        `json:"strengths"`
	Improvements []string        `json:"improvements"`
	Steps        map[string]bool `json:"steps"`
}

// ParseAnalysis decodes an llmAnalysis blob, tolerating missing fields but
// rejecting payloads that are not JSON objects of the expected shape.
func ParseAnalysis(raw string) (*Analysis, error) {
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("failed to parse analysis blob: %w", err)
	}
	return &a, nil
}
