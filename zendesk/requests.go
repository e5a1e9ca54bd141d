package zendesk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// GetLocales fetches the account's locale list, lower-cased.  An empty
// remote list falls back to just "en".
func (a *API) GetLocales(ctx context.Context) ([]string, error) {
	ep, err := a.localesEndpoint()
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't get locales endpoint: %w", err)
	}

	body, err := a.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't fetch locales: %w", err)
	}

	var resp LocalesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse json response: %w", err)
	}

	locales := make([]string, 0, len(resp.Locales))
	for _, l := range resp.Locales {
		locales = append(locales, strings.ToLower(l.Locale))
	}
	if len(locales) == 0 {
		locales = []string{"en"}
	}

	return locales, nil
}

// GetBrands fetches the account's brands.  The brands endpoint requires
// authentication unconditionally, so this refuses to even try anonymously.
func (a *API) GetBrands(ctx context.Context) ([]Brand, error) {
	if !a.authenticated() {
		return nil, fmt.Errorf("zendesk: the brands endpoint requires credentials; set --zendesk-email and --zendesk-token")
	}

	ep, err := a.brandsEndpoint()
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't get brands endpoint: %w", err)
	}

	body, err := a.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't fetch brands: %w", err)
	}

	var resp BrandsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse json response: %w", err)
	}

	return resp.Brands, nil
}

func (a *API) GetCategories(ctx context.Context) ([]Category, error) {
	ep, err := a.categoriesEndpoint()
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't get categories endpoint: %w", err)
	}

	body, err := a.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't fetch categories: %w", err)
	}

	var resp CategoriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse json response: %w", err)
	}

	return resp.Categories, nil
}

func (a *API) GetSections(ctx context.Context) ([]Section, error) {
	ep, err := a.sectionsEndpoint()
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't get sections endpoint: %w", err)
	}

	body, err := a.request(ctx, ep)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't fetch sections: %w", err)
	}

	var resp SectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse json response: %w", err)
	}

	return resp.Sections, nil
}

// request performs one GET.  Any non-2xx status comes back as a *FetchError
// so callers can match on the failure kind.
func (a *API) request(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't instantiate http request: %w", err)
	}

	req.Header.Add("Accept", "application/json, */*")

	if a.authenticated() {
		req.SetBasicAuth(a.email+"/token", a.token)
	}

	response, err := a.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: NetworkFault, URL: u.String(), Err: err}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		response.Body.Close()
		return nil, &FetchError{Kind: NetworkFault, URL: u.String(), Err: err}
	}

	if err := response.Body.Close(); err != nil {
		return nil, fmt.Errorf("zendesk: couldn't close response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	return nil, classifyStatus(response.StatusCode, string(body), u.String())
}
