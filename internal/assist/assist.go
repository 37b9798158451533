// Package assist implements the AI-assisted wizard operations: keyword
// generation, prior-art ranking, and the summary report. Replies are treated
// as untrusted payloads and shape-checked before any merge into the session.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/junsang-dong/ipgps/internal/gpt"
	"github.com/junsang-dong/ipgps/internal/scoring"
	"github.com/junsang-dong/ipgps/internal/session"
)

// Completer is the completion-service surface assist depends on.
type Completer interface {
	Complete(ctx context.Context, messages []gpt.Message, opts Options) (string, error)
}

// Options aliases the client options so fakes only import this package.
type Options = gpt.Options

// GenerateKeywords derives the five keyword/classification lists from the
// invention summary. Rate-limited calls are retried with backoff; a reply
// that does not carry the expected JSON object is rejected whole.
func GenerateKeywords(ctx context.Context, c Completer, summary string) (session.Keywords, error) {
	messages := []gpt.Message{
		{Role: "system", Content: gpt.SystemKeywordExpert},
		{Role: "user", Content: gpt.KeywordPrompt(summary)},
	}
	raw, err := gpt.RetryWithBackoff(ctx, func() (string, error) {
		return c.Complete(ctx, messages, Options{})
	})
	if err != nil {
		return session.Keywords{}, session.NewExternalError(err.Error())
	}

	blob, ok := scoring.ExtractJSONObject(raw)
	if !ok {
		return session.Keywords{}, session.NewParseError("응답 형식이 올바르지 않습니다")
	}
	var payload struct {
		Korean   []string `json:"korean"`
		English  []string `json:"english"`
		Japanese []string `json:"japanese"`
		IPC      []string `json:"ipc"`
		CPC      []string `json:"cpc"`
	}
	if err := json.Unmarshal([]byte(blob), &payload); err != nil {
		return session.Keywords{}, session.NewParseError("키워드 응답을 해석할 수 없습니다: " + err.Error())
	}
	kw := session.Keywords{}
	fill := func(kind session.KeywordKind, values []string) {
		for _, v := range values {
			kw.Add(kind, strings.TrimSpace(v))
		}
	}
	fill(session.KeywordKorean, payload.Korean)
	fill(session.KeywordEnglish, payload.English)
	fill(session.KeywordJapanese, payload.Japanese)
	fill(session.KeywordIPC, payload.IPC)
	fill(session.KeywordCPC, payload.CPC)
	if kw.Empty() {
		return session.Keywords{}, session.NewParseError("응답에 키워드가 없습니다")
	}
	return kw, nil
}

// RankPriorArt submits the whole candidate list for structured scoring and
// returns the per-number score updates. All-or-nothing: a malformed reply
// updates nothing.
func RankPriorArt(ctx context.Context, c Completer, items []session.PriorArtItem, info *session.InventionInfo) ([]session.RankingUpdate, error) {
	if len(items) == 0 {
		return nil, session.NewValidationError("분석할 특허가 없습니다")
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s (%s, %d) - IPC: %s",
			i+1, item.Number, item.Title, item.Applicant, item.Year, strings.Join(item.IPC, ", ")))
	}
	inventionContext := "발명 정보 없음"
	if info != nil {
		inventionContext = fmt.Sprintf("제목: %s\n요약: %s", info.Title, info.Summary)
	}
	messages := []gpt.Message{
		{Role: "system", Content: gpt.SystemPatentExaminer},
		{Role: "user", Content: gpt.RankingPrompt(strings.Join(lines, "\n"), inventionContext)},
	}
	raw, err := gpt.RetryWithBackoff(ctx, func() (string, error) {
		return c.Complete(ctx, messages, Options{})
	})
	if err != nil {
		return nil, session.NewExternalError(err.Error())
	}

	rankings, err := scoring.ParseRankings(raw)
	if err != nil {
		return nil, session.NewParseError(err.Error())
	}
	updates := make([]session.RankingUpdate, 0, len(rankings))
	for _, r := range rankings {
		updates = append(updates, session.RankingUpdate{
			Number: r.ID,
			Score:  r.Score,
			Reason: r.Reason,
		})
	}
	return updates, nil
}

// Summarize generates the free-form Markdown analysis over the selected
// items.
func Summarize(ctx context.Context, c Completer, items []session.PriorArtItem) (string, error) {
	if len(items) == 0 {
		return "", session.NewValidationError("요약할 특허가 없습니다")
	}

	blocks := make([]string, 0, len(items))
	for i, item := range items {
		applicant := item.Applicant
		if applicant == "" {
			applicant = "-"
		}
		score := "-"
		if item.Score != nil {
			score = fmt.Sprintf("%d", *item.Score)
		}
		blocks = append(blocks, fmt.Sprintf("%d. [%s] %s\n   출원인: %s\n   출원년도: %d\n   IPC: %s\n   점수: %s\n   URL: %s",
			i+1, item.Number, item.Title, applicant, item.Year, strings.Join(item.IPC, ", "), score, item.URL))
	}
	messages := []gpt.Message{
		{Role: "system", Content: gpt.SystemPatentAnalyst},
		{Role: "user", Content: gpt.SummaryPrompt(strings.Join(blocks, "\n\n"))},
	}
	raw, err := gpt.RetryWithBackoff(ctx, func() (string, error) {
		return c.Complete(ctx, messages, Options{MaxTokens: 3000})
	})
	if err != nil {
		return "", session.NewExternalError(err.Error())
	}
	return strings.TrimSpace(raw), nil
}
