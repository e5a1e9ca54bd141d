package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
)

// FetchAllArticles walks every page of one article listing endpoint: page 1,
// 2, 3... until a response arrives without a next_page link.  A non-nil
// brand stamps its context onto every article, so downstream stages know
// which domain the article really belongs to.
//
// On a failed page the error is returned together with whatever pages were
// already accumulated; partial results are kept, not discarded.
func (a *API) FetchAllArticles(ctx context.Context, base string, locale string, brand *Brand) ([]Article, error) {
	var articles []Article

	opts := ArticlesQuery{
		Page:    1,
		PerPage: PerPage,
	}

	var brandCtx *BrandContext
	if brand != nil {
		brandCtx = &BrandContext{
			ID:        brand.ID,
			Name:      brand.Name,
			Subdomain: brand.Subdomain,
			BaseURL:   BrandBaseURL(*brand),
		}
	}

	for {
		ep, err := articlesEndpoint(base, locale, opts)
		if err != nil {
			return articles, fmt.Errorf("zendesk: couldn't build articles endpoint: %w", err)
		}

		body, err := a.request(ctx, ep)
		a.pause()
		if err != nil {
			return articles, err
		}

		var page ArticlesResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return articles, fmt.Errorf("zendesk: couldn't parse json response: %w", err)
		}

		for i := range page.Articles {
			page.Articles[i].Brand = brandCtx
		}
		articles = append(articles, page.Articles...)

		if page.NextPage == "" {
			break
		}
		opts.Page++
	}

	return articles, nil
}
