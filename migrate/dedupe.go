package migrate

import "github.com/birdcage/zendesk-ada/zendesk"

// Dedupe collapses the list to one entry per article id, first occurrence
// wins, relative order preserved.  Identity is the numeric Zendesk id alone:
// when the same article arrives through several fetch branches (brand and
// locale variants), whichever branch ran first decides the variant we keep.
// This matches the zd_{id} destination id scheme, which admits exactly one
// destination record per source article.
func Dedupe(articles []zendesk.Article) []zendesk.Article {
	seen := make(map[int64]bool, len(articles))
	unique := make([]zendesk.Article, 0, len(articles))

	for _, a := range articles {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		unique = append(unique, a)
	}

	return unique
}
