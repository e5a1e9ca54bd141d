package zendesk

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// localesEndpoint returns the endpoint listing the account's locales:
// https://developer.zendesk.com/api-reference/ticketing/account-configuration/locales/#list-locales
func (a *API) localesEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/api/v2/locales")
}

// brandsEndpoint returns the endpoint listing the account's brands:
// https://developer.zendesk.com/api-reference/ticketing/account-configuration/brands/#list-brands
func (a *API) brandsEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/api/v2/brands")
}

// categoriesEndpoint returns the Help Center categories endpoint:
// https://developer.zendesk.com/api-reference/help_center/help-center-api/categories/#list-categories
func (a *API) categoriesEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/api/v2/help_center/categories")
}

// sectionsEndpoint returns the Help Center sections endpoint:
// https://developer.zendesk.com/api-reference/help_center/help-center-api/sections/#list-sections
func (a *API) sectionsEndpoint() (*url.URL, error) {
	return a.resolveEndpoint("/api/v2/help_center/sections")
}

// articlesEndpoint builds the paginated article listing URL against an
// arbitrary base (the main subdomain, or a brand's own domain).  A non-empty
// locale selects that locale's article variants.
func articlesEndpoint(base string, locale string, opts ArticlesQuery) (*url.URL, error) {
	path := "/api/v2/help_center/articles"
	if locale != "" {
		path = fmt.Sprintf("/api/v2/help_center/%s/articles", locale)
	}

	ep, err := url.ParseRequestURI(base + path)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse articles endpoint: %w", err)
	}

	v, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't encode query params: %w", err)
	}
	ep.RawQuery = v.Encode()

	return ep, nil
}

// Do a bit of error checking on endpoint format, and return it relative to the base URI.
func (a *API) resolveEndpoint(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("zendesk: failed to parse endpoint ref: %w", err)
	}

	return a.BaseURI.ResolveReference(ref), nil
}
