package migrate

import "github.com/birdcage/zendesk-ada/zendesk"

// FilterByCategories keeps the articles whose section resolves to one of the
// selected categories.  Articles without a section, or whose section is
// missing from the table, are dropped.
//
// With no section table to consult the filter fails open: dropping the whole
// result set because one lookup fetch failed would be worse than filtering a
// bit too little, but the caller gets told via the run log.
func FilterByCategories(articles []zendesk.Article, categoryIDs []int64, sections zendesk.SectionTable, log *RunLog) []zendesk.Article {
	if len(categoryIDs) == 0 {
		return articles
	}

	if len(sections) == 0 {
		log.Add("filter categories", StatusWarning, "",
			"no section table available, category filter passed everything through")
		return articles
	}

	selected := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = true
	}

	filtered := make([]zendesk.Article, 0, len(articles))
	for _, a := range articles {
		if a.SectionID == 0 {
			continue
		}
		categoryID, ok := sections[a.SectionID]
		if !ok {
			continue
		}
		if selected[categoryID] {
			filtered = append(filtered, a)
		}
	}

	return filtered
}

// DropDrafts removes unpublished articles.
func DropDrafts(articles []zendesk.Article) []zendesk.Article {
	published := make([]zendesk.Article, 0, len(articles))
	for _, a := range articles {
		if !a.Draft {
			published = append(published, a)
		}
	}
	return published
}
