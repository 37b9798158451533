package scoring

import (
	"strings"
	"testing"
)

func TestParseRankings(t *testing.T) {
	raw := "평가 결과입니다:\n```json\n" +
		`[{"id":"KR10-2020-0001234","score":85,"reason":"주행 제어 방식 동일","matchedKeywords":["로봇","청소기"],"riskLevel":"high"},` +
		`{"id":"US10123456","score":40,"reason":"구동부만 유사","riskLevel":"low"}]` +
		"\n```"
	rankings, err := ParseRankings(raw)
	if err != nil {
		t.Fatalf("ParseRankings: %v", err)
	}
	if len(rankings) != 2 {
		t.Fatalf("got %d rankings, want 2", len(rankings))
	}
	first := rankings[0]
	if first.ID != "KR10-2020-0001234" || first.Score != 85 || first.RiskLevel != RiskHigh {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if len(first.MatchedKeywords) != 2 {
		t.Fatalf("matched keywords = %v", first.MatchedKeywords)
	}
}

func TestParseRankingsRejectsWholeReply(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "no array", raw: "관련 특허가 없습니다."},
		{name: "not json", raw: "[이것은 JSON이 아닙니다]"},
		{name: "missing id", raw: `[{"id":"KR1","score":10},{"score":20}]`},
		{name: "score above range", raw: `[{"id":"KR1","score":101}]`},
		{name: "score below range", raw: `[{"id":"KR1","score":-1}]`},
		{name: "unknown risk level", raw: `[{"id":"KR1","score":10,"riskLevel":"severe"}]`},
		{name: "wrong element type", raw: `["KR1","KR2"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rankings, err := ParseRankings(tt.raw)
			if err == nil {
				t.Fatalf("ParseRankings(%q) succeeded, want error", tt.raw)
			}
			if rankings != nil {
				t.Fatalf("partial result returned alongside error: %+v", rankings)
			}
		})
	}
}

func TestParseRankingsEmptyArray(t *testing.T) {
	rankings, err := ParseRankings("[]")
	if err != nil {
		t.Fatalf("ParseRankings: %v", err)
	}
	if len(rankings) != 0 {
		t.Fatalf("got %d rankings, want 0", len(rankings))
	}
}

func TestExtractJSONObject(t *testing.T) {
	raw := "도출된 키워드:\n{\"korean\":[\"로봇\"]}\n이상입니다."
	blob, ok := ExtractJSONObject(raw)
	if !ok {
		t.Fatal("no object found")
	}
	if !strings.HasPrefix(blob, "{") || !strings.HasSuffix(blob, "}") {
		t.Fatalf("blob = %q", blob)
	}
	if _, ok := ExtractJSONObject("키워드 없음"); ok {
		t.Fatal("expected no object in plain prose")
	}
}
