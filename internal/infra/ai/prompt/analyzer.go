package prompt

import (
	"encoding/json"
	"errors"
	"strings"
)

// RiskFinding is one entry of the risk persona's JSON array.
type RiskFinding struct {
	ClauseType      string `json:"clause type"`
	ClauseText      string `json:"clause text"`
	RiskDescription string `json:"risk description"`
}

// ErrNoFindings is returned when the output holds no JSON array.
var ErrNoFindings = errors.New("no risk findings array in output")

// ParseRiskFindings decodes the risk persona output. Models sometimes wrap the
// array in code fences or a sentence, so the outermost [...] is used.
func ParseRiskFindings(raw string) ([]RiskFinding, error) {
	s := strings.TrimSpace(raw)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, ErrNoFindings
	}

	var out []RiskFinding
	if err := json.Unmarshal([]byte(s[start:end+1]), &out); err != nil {
		return nil, err
	}
	// drop entries the model left empty
	kept := out[:0]
	for _, f := range out {
		if strings.TrimSpace(f.ClauseText) == "" && strings.TrimSpace(f.RiskDescription) == "" {
			continue
		}
		kept = append(kept, f)
	}
	return kept, nil
}
