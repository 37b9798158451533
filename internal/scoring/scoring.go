// Package scoring computes the deterministic relevance score of a prior-art
// candidate against the invention under search. Every function here is pure:
// no I/O, no clock access unless the caller injects one, inputs unmodified.
package scoring

import (
	"math"
	"strings"
	"time"
	"unicode"
)

// Weights are the raw composite coefficients. They are applied as given:
// the engine never renormalizes, so callers passing weights summing above 1
// can produce composites above 100.
type Weights struct {
	Keyword    float64 `json:"keyword"`
	IPC        float64 `json:"ipc"`
	Year       float64 `json:"year"`
	Similarity float64 `json:"similarity"`
}

// DefaultWeights sum to 1.0, keeping the composite inside [0, 100].
func DefaultWeights() Weights {
	return Weights{Keyword: 0.3, IPC: 0.3, Year: 0.2, Similarity: 0.2}
}

// Context carries the invention-side inputs of a scoring run.
type Context struct {
	Keywords      []string
	TargetIPC     []string
	ReferenceText string
	// CurrentYear anchors the year sub-score. Zero means the wall-clock year.
	CurrentYear int
}

// Candidate is the item-side input.
type Candidate struct {
	Title string
	Year  int
	IPC   []string
}

// KeywordScore is a TF-style match score: for each keyword, the
// case-insensitive literal occurrence count in the title divided by the
// title's whitespace token count (minimum divisor 1), times 100, summed and
// clamped to 100. Keywords are matched as literal text, so pattern
// metacharacters carry no special meaning.
func KeywordScore(title string, keywords []string) float64 {
	titleLower := strings.ToLower(title)
	tokens := len(strings.Fields(titleLower))
	if tokens < 1 {
		tokens = 1
	}
	score := 0.0
	for _, kw := range keywords {
		kwLower := strings.ToLower(kw)
		if kwLower == "" {
			continue
		}
		count := strings.Count(titleLower, kwLower)
		score += float64(count) / float64(tokens) * 100
	}
	return math.Min(score, 100)
}

// IPCScore compares every candidate code against every target code: 10
// points per exact match, 5 per partial match, where partial means either
// code's first three characters prefix the other. Pairs contribute
// independently with no deduplication; the sum is clamped to 100.
func IPCScore(itemIPC, targetIPC []string) float64 {
	if len(itemIPC) == 0 || len(targetIPC) == 0 {
		return 0
	}
	exact := 0
	partial := 0
	for _, a := range itemIPC {
		for _, b := range targetIPC {
			switch {
			case a == b:
				exact++
			case strings.HasPrefix(a, head3(b)) || strings.HasPrefix(b, head3(a)):
				partial++
			}
		}
	}
	return math.Min(float64(exact*10+partial*5), 100)
}

func head3(code string) string {
	if len(code) > 3 {
		return code[:3]
	}
	return code
}

// YearScore steps down with patent age: newer filings matter more.
func YearScore(year, currentYear int) float64 {
	age := currentYear - year
	switch {
	case age <= 5:
		return 100
	case age <= 10:
		return 80
	case age <= 15:
		return 60
	case age <= 20:
		return 40
	default:
		return 20
	}
}

// Similarity is the Jaccard similarity of the two texts' token sets, in
// [0, 1]. Two empty token sets compare as 0.
func Similarity(text1, text2 string) float64 {
	set1 := tokenSet(text1)
	set2 := tokenSet(text2)
	union := len(set2)
	intersection := 0
	for tok := range set1 {
		if _, ok := set2[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// tokenSet lowercases, strips everything but word characters, whitespace and
// Hangul syllables, splits on whitespace and drops single-rune tokens.
func tokenSet(text string) map[string]struct{} {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if isTokenRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	out := map[string]struct{}{}
	for _, tok := range strings.Fields(b.String()) {
		if len([]rune(tok)) > 1 {
			out[tok] = struct{}{}
		}
	}
	return out
}

// isTokenRune mirrors the \w class plus the Hangul syllable block.
func isTokenRune(r rune) bool {
	if r >= '가' && r <= '힣' {
		return true
	}
	if r > unicode.MaxASCII {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Overall combines the four sub-scores under the given raw weights and
// rounds to the nearest integer.
func Overall(item Candidate, ctx Context, weights Weights) int {
	currentYear := ctx.CurrentYear
	if currentYear == 0 {
		currentYear = time.Now().Year()
	}
	keywordScore := KeywordScore(item.Title, ctx.Keywords)
	ipcScore := IPCScore(item.IPC, ctx.TargetIPC)
	yearScore := YearScore(item.Year, currentYear)
	similarityScore := Similarity(item.Title, ctx.ReferenceText) * 100

	overall := keywordScore*weights.Keyword +
		ipcScore*weights.IPC +
		yearScore*weights.Year +
		similarityScore*weights.Similarity
	return int(math.Round(overall))
}
