package migrate

import (
	"context"
	"fmt"

	"github.com/birdcage/zendesk-ada/zendesk"
)

// Fetch plans and runs every article fetch the filter selection calls for,
// then applies category filtering, the published-only pass, and finally
// deduplication.  The branch taken is decided once, in priority order: a
// brand+locale combination beats either alone, and categories on their own
// mean fetching the whole catalogue and filtering it client-side.
//
// A branch that fails mid-pagination keeps its partial pages and does not
// stop sibling branches; the failure is logged and reported.
func (p *PipelineContext) Fetch(ctx context.Context) ([]zendesk.Article, error) {
	if p.Filters.Empty() {
		p.Log.Add("fetch articles", StatusInfo, "", "no filters selected, not fetching any articles")
		p.Articles = nil
		return nil, nil
	}

	brands, err := p.selectedBrands()
	if err != nil {
		return nil, err
	}

	var all []zendesk.Article

	switch {
	case len(brands) > 0 && len(p.Filters.Locales) == 0:
		for _, brand := range brands {
			all = append(all, p.fetchBranch(ctx, zendesk.BrandBaseURL(brand), "", &brand,
				fmt.Sprintf("brand %q", brand.Name))...)
		}

	case len(p.Filters.Locales) > 0 && len(brands) == 0:
		for _, locale := range p.Filters.Locales {
			all = append(all, p.fetchBranch(ctx, p.Zendesk.BaseURI.String(), locale, nil,
				fmt.Sprintf("locale %q", locale))...)
		}

	case len(brands) > 0 && len(p.Filters.Locales) > 0:
		for _, brand := range brands {
			for _, locale := range p.Filters.Locales {
				all = append(all, p.fetchBranch(ctx, zendesk.BrandBaseURL(brand), locale, &brand,
					fmt.Sprintf("brand %q, locale %q", brand.Name, locale))...)
			}
		}

	default:
		// categories only: fetch the entire catalogue, filter client-side
		all = p.fetchBranch(ctx, p.Zendesk.BaseURI.String(), "", nil, "full catalogue")
		all = FilterByCategories(all, p.Filters.CategoryIDs, p.Sections, p.Log)
	}

	if len(p.Filters.CategoryIDs) > 0 && (len(brands) > 0 || len(p.Filters.Locales) > 0) {
		all = FilterByCategories(all, p.Filters.CategoryIDs, p.Sections, p.Log)
	}

	if p.Filters.PublishedOnly {
		before := len(all)
		all = DropDrafts(all)
		p.Log.Add("drop drafts", StatusInfo, "", fmt.Sprintf("dropped %d draft articles", before-len(all)))
	}

	all = Dedupe(all)

	p.Log.Add("fetch articles", StatusSuccess, "",
		fmt.Sprintf("%d unique articles after filtering", len(all)))
	p.Articles = all
	return all, nil
}

// fetchBranch runs one endpoint branch to completion and absorbs its
// failure, keeping whatever pages were already fetched.
func (p *PipelineContext) fetchBranch(ctx context.Context, base string, locale string, brand *zendesk.Brand, desc string) []zendesk.Article {
	articles, err := p.Zendesk.FetchAllArticles(ctx, base, locale, brand)
	if err != nil {
		p.Log.Add("fetch articles", StatusError, base, fmt.Sprintf("%s: %v", desc, err))
		p.logf("warning: fetch for %s failed after %d articles: %v", desc, len(articles), err)
		return articles
	}

	p.Log.Add("fetch articles", StatusSuccess, base, fmt.Sprintf("%s: %d articles", desc, len(articles)))
	return articles
}

// selectedBrands resolves the selected brand ids against the brand table,
// preserving selection order.  An unknown id is an error: fetching silently
// less than the user asked for is how articles go missing.
func (p *PipelineContext) selectedBrands() ([]zendesk.Brand, error) {
	if len(p.Filters.BrandIDs) == 0 {
		return nil, nil
	}

	byID := make(map[int64]zendesk.Brand, len(p.Brands))
	for _, b := range p.Brands {
		byID[b.ID] = b
	}

	brands := make([]zendesk.Brand, 0, len(p.Filters.BrandIDs))
	for _, id := range p.Filters.BrandIDs {
		b, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("migrate: selected brand id %d not found; run 'list brands' to see what exists", id)
		}
		brands = append(brands, b)
	}

	return brands, nil
}
