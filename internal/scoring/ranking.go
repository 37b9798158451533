package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// RiskLevel is the infringement-risk bucket assigned by the AI ranking path.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Ranking is one entry of the structured ranking reply. ID carries the
// user-visible patent number, not the internal item ID.
type Ranking struct {
	ID              string    `json:"id"`
	Score           int       `json:"score"`
	Reason          string    `json:"reason"`
	MatchedKeywords []string  `json:"matchedKeywords"`
	RiskLevel       RiskLevel `json:"riskLevel"`
}

// ParseRankings validates a completion reply as the expected ranking array.
// The payload is untrusted: any shape mismatch rejects the whole reply, and
// no partial result is ever returned.
func ParseRankings(raw string) ([]Ranking, error) {
	blob, ok := extractJSONArray(raw)
	if !ok {
		return nil, errors.New("응답 형식이 올바르지 않습니다")
	}
	var rankings []Ranking
	if err := json.Unmarshal([]byte(blob), &rankings); err != nil {
		return nil, fmt.Errorf("ranking parse: %w", err)
	}
	for i, r := range rankings {
		if strings.TrimSpace(r.ID) == "" {
			return nil, fmt.Errorf("ranking entry %d: missing id", i+1)
		}
		if r.Score < 0 || r.Score > 100 {
			return nil, fmt.Errorf("ranking entry %d: score %d out of range", i+1, r.Score)
		}
		switch r.RiskLevel {
		case "", RiskHigh, RiskMedium, RiskLow:
		default:
			return nil, fmt.Errorf("ranking entry %d: unknown risk level %q", i+1, r.RiskLevel)
		}
	}
	return rankings, nil
}

// extractJSONArray slices the first top-level [...] out of free-form model
// output, tolerating prose or code fences around it.
func extractJSONArray(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// ExtractJSONObject slices the first top-level {...} out of free-form model
// output. Used by the keyword-generation path.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
