package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/junsang-dong/ipgps/internal/session"
)

// ReportInput carries everything the Markdown report draws from. Date
// defaults to the current time when zero.
type ReportInput struct {
	Invention *session.InventionInfo
	Keywords  *session.Keywords
	Items     []session.PriorArtItem
	Summary   string
	Date      time.Time
}

// MarkdownReport builds the full Korean-language investigation report.
func MarkdownReport(in ReportInput) string {
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 선행특허 조사 리포트\n\n")
	fmt.Fprintf(&b, "**조사일:** %d. %d. %d.\n\n", date.Year(), int(date.Month()), date.Day())
	fmt.Fprintf(&b, "---\n\n")

	if in.Invention != nil {
		buildInventionSection(&b, in.Invention)
	}
	if in.Keywords != nil {
		buildKeywordSection(&b, in.Keywords)
	}
	buildItemSection(&b, in.Items)
	if strings.TrimSpace(in.Summary) != "" {
		fmt.Fprintf(&b, "## 4. AI 분석 요약\n\n")
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(in.Summary))
	}
	buildConclusion(&b, in.Items)

	fmt.Fprintf(&b, "\n---\n\n")
	fmt.Fprintf(&b, "*본 리포트는 AI 보조 도구를 활용하여 생성되었습니다. 최종 판단은 전문가의 검토가 필요합니다.*\n")
	return b.String()
}

func buildInventionSection(b *strings.Builder, info *session.InventionInfo) {
	fmt.Fprintf(b, "## 1. 발명 개요\n\n")
	fmt.Fprintf(b, "### 발명의 명칭\n%s\n\n", info.Title)
	fmt.Fprintf(b, "### 기술분야\n%s\n\n", info.TechnicalField)
	fmt.Fprintf(b, "### 발명의 목적\n%s\n\n", info.Purpose)
	fmt.Fprintf(b, "### 발명의 요약\n%s\n\n", info.Summary)
}

func buildKeywordSection(b *strings.Builder, kw *session.Keywords) {
	fmt.Fprintf(b, "## 2. 검색 키워드 및 분류코드\n\n")
	if len(kw.Korean) > 0 {
		fmt.Fprintf(b, "### 한국어 키워드\n%s\n\n", strings.Join(kw.Korean, ", "))
	}
	if len(kw.English) > 0 {
		fmt.Fprintf(b, "### 영어 키워드\n%s\n\n", strings.Join(kw.English, ", "))
	}
	if len(kw.IPC) > 0 {
		fmt.Fprintf(b, "### IPC 분류코드\n%s\n\n", strings.Join(kw.IPC, ", "))
	}
}

func buildItemSection(b *strings.Builder, items []session.PriorArtItem) {
	fmt.Fprintf(b, "## 3. 발견된 선행특허 (%d건)\n\n", len(items))
	for i, item := range sortedByScore(items) {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, item.Title)
		fmt.Fprintf(b, "- **특허번호:** %s\n", item.Number)
		fmt.Fprintf(b, "- **출원인:** %s\n", item.Applicant)
		fmt.Fprintf(b, "- **출원년도:** %d\n", item.Year)
		fmt.Fprintf(b, "- **IPC:** %s\n", strings.Join(item.IPC, ", "))
		if item.Score != nil && *item.Score != 0 {
			fmt.Fprintf(b, "- **관련성 점수:** %d/100\n", *item.Score)
		}
		if item.ScoreReason != "" {
			fmt.Fprintf(b, "- **평가 근거:** %s\n", item.ScoreReason)
		}
		fmt.Fprintf(b, "- **URL:** %s\n", item.URL)
		if item.KeyClaims != "" {
			fmt.Fprintf(b, "\n**핵심 청구항:**\n%s\n", item.KeyClaims)
		}
		if len(item.DiffPoints) > 0 {
			fmt.Fprintf(b, "\n**차별성 포인트:**\n")
			for _, point := range item.DiffPoints {
				fmt.Fprintf(b, "- %s\n", point)
			}
		}
		if item.Note != "" {
			fmt.Fprintf(b, "\n**비고:** %s\n", item.Note)
		}
		fmt.Fprintf(b, "\n---\n\n")
	}
}

func buildConclusion(b *strings.Builder, items []session.PriorArtItem) {
	fmt.Fprintf(b, "## 5. 종합 의견\n\n")
	fmt.Fprintf(b, "총 %d건의 선행특허가 발견되었습니다.\n\n", len(items))

	high := make([]string, 0, len(items))
	for _, item := range items {
		if scoreOf(item) >= 70 {
			high = append(high, item.Number)
		}
	}
	if len(high) > 0 {
		fmt.Fprintf(b, "**높은 관련성 (70점 이상):** %d건\n", len(high))
		fmt.Fprintf(b, "- 특히 주의가 필요한 특허: %s\n\n", strings.Join(high, ", "))
	}
}
