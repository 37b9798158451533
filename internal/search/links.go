// Package search builds deep links into the external patent databases. The
// links are one-way: the wizard never calls these services, it only hands
// the user a pre-filled query URL per database.
package search

import (
	"net/url"
	"strings"

	"github.com/junsang-dong/ipgps/internal/session"
)

const (
	kiprisEndpoint        = "https://doi.org/kipris/search/total_search.do"
	usptoEndpoint         = "https://ppubs.uspto.gov/pubwebapp/static/pages/ppubsbasic.html"
	jplatpatEndpoint      = "https://www.j-platpat.inpit.go.jp/c1800_C/AC_simple_search_quick_word"
	googlePatentsEndpoint = "https://patents.google.com/"
)

// GenerateLinks produces one query descriptor per supported database. Each
// database has its own query dialect:
//
//	KIPRIS         all keywords joined with " OR "
//	USPTO          every keyword wrapped as ABST/<kw>, joined with " OR "
//	J-PlatPat      first 3 keywords, space joined
//	Google Patents first 5 keywords, space joined, as both q and oq
//
// The classification codes are accepted for interface symmetry but none of
// the deep-link dialects consume them today.
func GenerateLinks(keywords []string, _ []string) []session.SearchQuery {
	queries := make([]session.SearchQuery, 0, 4)

	kiprisQuery := strings.Join(keywords, " OR ")
	queries = append(queries, session.SearchQuery{
		Database:    session.DatabaseKIPRIS,
		QueryString: kiprisQuery,
		URL:         kiprisEndpoint + "?query=" + url.QueryEscape(kiprisQuery),
	})

	usptoTerms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		usptoTerms = append(usptoTerms, "ABST/"+kw)
	}
	usptoQuery := strings.Join(usptoTerms, " OR ")
	queries = append(queries, session.SearchQuery{
		Database:    session.DatabaseUSPTO,
		QueryString: usptoQuery,
		URL:         usptoEndpoint + "?query=" + url.QueryEscape(usptoQuery),
	})

	jplatpatQuery := strings.Join(firstN(keywords, 3), " ")
	queries = append(queries, session.SearchQuery{
		Database:    session.DatabaseJPlatPat,
		QueryString: jplatpatQuery,
		URL:         jplatpatEndpoint + "?query=" + url.QueryEscape(jplatpatQuery),
	})

	googleQuery := strings.Join(firstN(keywords, 5), " ")
	queries = append(queries, session.SearchQuery{
		Database:    session.DatabaseGooglePatents,
		QueryString: googleQuery,
		URL:         googlePatentsEndpoint + "?q=" + url.QueryEscape(googleQuery) + "&oq=" + url.QueryEscape(googleQuery),
	})

	return queries
}

// WizardKeywords selects the keyword subset fed into link generation: the
// first 10 of korean ++ english, in that concatenation order.
func WizardKeywords(kw session.Keywords) []string {
	all := append(append([]string{}, kw.Korean...), kw.English...)
	return firstN(all, 10)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
