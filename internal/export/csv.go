package export

import (
	"fmt"
	"strings"

	"github.com/junsang-dong/ipgps/internal/session"
)

var csvHeaders = []string{"번호", "제목", "출원인", "특허번호", "출원년도", "IPC", "점수", "URL", "비고"}

// CSV renders the items as a UTF-8 CSV document led by a BOM so Excel
// detects the encoding. Rows are ordered by relevance score, highest first.
func CSV(items []session.PriorArtItem) string {
	var b strings.Builder
	b.WriteString("\uFEFF")
	b.WriteString(strings.Join(csvHeaders, ","))
	for i, item := range sortedByScore(items) {
		score := ""
		if item.Score != nil && *item.Score != 0 {
			score = fmt.Sprintf("%d", *item.Score)
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			quote(item.Title),
			quote(item.Applicant),
			item.Number,
			fmt.Sprintf("%d", item.Year),
			quote(strings.Join(item.IPC, ", ")),
			score,
			item.URL,
			quote(item.Note),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
