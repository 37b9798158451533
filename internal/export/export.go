// Package export renders the curated session into the shareable formats:
// CSV and JSON for spreadsheets and tooling, Markdown for the human report,
// plus HTML and PDF renditions of that report.
package export

import (
	"encoding/json"
	"sort"

	"github.com/junsang-dong/ipgps/internal/session"
)

// Format names one of the supported output formats.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// JSON serializes the items as indented JSON, preserving input order.
func JSON(items []session.PriorArtItem) ([]byte, error) {
	if items == nil {
		items = []session.PriorArtItem{}
	}
	return json.MarshalIndent(items, "", "  ")
}

// sortedByScore returns a copy ordered by relevance score, highest first.
// Unscored items count as zero. The sort is stable so manual entry order
// breaks ties.
func sortedByScore(items []session.PriorArtItem) []session.PriorArtItem {
	out := make([]session.PriorArtItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return scoreOf(out[i]) > scoreOf(out[j])
	})
	return out
}

func scoreOf(item session.PriorArtItem) int {
	if item.Score == nil {
		return 0
	}
	return *item.Score
}
