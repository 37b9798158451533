package assist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/junsang-dong/ipgps/internal/gpt"
	"github.com/junsang-dong/ipgps/internal/session"
)

type fakeCompleter struct {
	reply    string
	err      error
	requests [][]gpt.Message
}

func (f *fakeCompleter) Complete(_ context.Context, messages []gpt.Message, _ Options) (string, error) {
	f.requests = append(f.requests, messages)
	return f.reply, f.err
}

func TestGenerateKeywords(t *testing.T) {
	fake := &fakeCompleter{reply: "결과:\n" + `{
		"korean": ["로봇", "청소기", " 로봇 "],
		"english": ["robot", "cleaner"],
		"japanese": ["ロボット"],
		"ipc": ["A47L9/28"],
		"cpc": ["A47L2201/00"]
	}`}
	kw, err := GenerateKeywords(context.Background(), fake, "로봇 청소기의 주행 제어")
	if err != nil {
		t.Fatalf("GenerateKeywords: %v", err)
	}
	if len(kw.Korean) != 2 {
		t.Fatalf("korean = %v, want deduplicated pair", kw.Korean)
	}
	if len(kw.English) != 2 || len(kw.Japanese) != 1 || len(kw.IPC) != 1 || len(kw.CPC) != 1 {
		t.Fatalf("keywords = %+v", kw)
	}
	if len(fake.requests) != 1 {
		t.Fatalf("requests = %d", len(fake.requests))
	}
	if sys := fake.requests[0][0]; sys.Role != "system" || sys.Content != gpt.SystemKeywordExpert {
		t.Fatalf("system message = %+v", sys)
	}
	if user := fake.requests[0][1]; !strings.Contains(user.Content, "로봇 청소기의 주행 제어") {
		t.Fatal("summary missing from prompt")
	}
}

func TestGenerateKeywordsRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "no object", reply: "키워드를 찾지 못했습니다."},
		{name: "wrong field type", reply: `{"korean": "로봇"}`},
		{name: "all lists empty", reply: `{"korean": [], "english": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: tt.reply}
			if _, err := GenerateKeywords(context.Background(), fake, "요약"); err == nil {
				t.Fatalf("GenerateKeywords accepted %q", tt.reply)
			}
		})
	}
}

func TestGenerateKeywordsWrapsTransportError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("Incorrect API key provided")}
	_, err := GenerateKeywords(context.Background(), fake, "요약")
	var serr *session.Error
	if !errors.As(err, &serr) || serr.Code != session.CodeExternal {
		t.Fatalf("err = %v, want external error", err)
	}
}

func rankingItems() []session.PriorArtItem {
	return []session.PriorArtItem{
		{ID: "id-1", Number: "KR1", Title: "로봇 청소기", Applicant: "A사", Year: 2020, IPC: []string{"A47L9/28"}},
		{ID: "id-2", Number: "KR2", Title: "주행 제어 장치", Applicant: "B사", Year: 2018, IPC: []string{"G05D1/02"}},
	}
}

func TestRankPriorArt(t *testing.T) {
	fake := &fakeCompleter{reply: `[
		{"id":"KR1","score":85,"reason":"구성 동일","riskLevel":"high"},
		{"id":"KR2","score":40,"reason":"일부 유사","riskLevel":"low"}
	]`}
	info := &session.InventionInfo{Title: "로봇 청소기", Summary: "주행 제어"}
	updates, err := RankPriorArt(context.Background(), fake, rankingItems(), info)
	if err != nil {
		t.Fatalf("RankPriorArt: %v", err)
	}
	if len(updates) != 2 {
		t.Fatalf("updates = %+v", updates)
	}
	if updates[0].Number != "KR1" || updates[0].Score != 85 || updates[0].Reason != "구성 동일" {
		t.Fatalf("first update = %+v", updates[0])
	}

	prompt := fake.requests[0][1].Content
	if !strings.Contains(prompt, "1. [KR1] 로봇 청소기 (A사, 2020) - IPC: A47L9/28") {
		t.Fatalf("candidate list malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "제목: 로봇 청소기") || !strings.Contains(prompt, "요약: 주행 제어") {
		t.Fatal("invention context missing from prompt")
	}
}

func TestRankPriorArtWithoutInventionInfo(t *testing.T) {
	fake := &fakeCompleter{reply: `[]`}
	if _, err := RankPriorArt(context.Background(), fake, rankingItems(), nil); err != nil {
		t.Fatalf("RankPriorArt: %v", err)
	}
	if !strings.Contains(fake.requests[0][1].Content, "발명 정보 없음") {
		t.Fatal("missing-info placeholder absent from prompt")
	}
}

func TestRankPriorArtAllOrNothing(t *testing.T) {
	fake := &fakeCompleter{reply: `[{"id":"KR1","score":85},{"score":190}]`}
	updates, err := RankPriorArt(context.Background(), fake, rankingItems(), nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if updates != nil {
		t.Fatalf("partial updates returned: %+v", updates)
	}
	var serr *session.Error
	if !errors.As(err, &serr) || serr.Code != session.CodeParse {
		t.Fatalf("err = %v, want parse error", err)
	}
}

func TestRankPriorArtRequiresItems(t *testing.T) {
	fake := &fakeCompleter{}
	if _, err := RankPriorArt(context.Background(), fake, nil, nil); err == nil {
		t.Fatal("expected validation error on empty item list")
	}
	if len(fake.requests) != 0 {
		t.Fatal("completion called despite empty input")
	}
}

func TestSummarize(t *testing.T) {
	fake := &fakeCompleter{reply: "\n## 기술 트렌드\n분석 내용\n"}
	score := 85
	items := []session.PriorArtItem{
		{ID: "id-1", Number: "KR1", Title: "로봇 청소기", Applicant: "A사", Year: 2020, Score: &score, URL: "https://example.test/KR1"},
		{ID: "id-2", Number: "KR2", Title: "주행 제어 장치", Year: 2018},
	}
	out, err := Summarize(context.Background(), fake, items)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if out != "## 기술 트렌드\n분석 내용" {
		t.Fatalf("out = %q, want trimmed summary", out)
	}
	prompt := fake.requests[0][1].Content
	if !strings.Contains(prompt, "[KR1] 로봇 청소기") || !strings.Contains(prompt, "점수: 85") {
		t.Fatalf("patent block malformed:\n%s", prompt)
	}
	if !strings.Contains(prompt, "출원인: -") || !strings.Contains(prompt, "점수: -") {
		t.Fatal("missing-value placeholders absent")
	}
}

func TestSummarizeRequiresItems(t *testing.T) {
	fake := &fakeCompleter{}
	if _, err := Summarize(context.Background(), fake, nil); err == nil {
		t.Fatal("expected validation error on empty selection")
	}
}
