package zendesk

// See https://developer.zendesk.com/api-reference/ticketing/account-configuration/brands/
type Brand struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`

	// Custom domain the brand's Help Center is served from, if any.  Empty
	// for brands living on their *.zendesk.com subdomain.
	HostMapping string `json:"host_mapping"`
}

// Section is only used as a lookup from a section to its category.
type Section struct {
	ID         int64 `json:"id"`
	CategoryID int64 `json:"category_id"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// See https://developer.zendesk.com/api-reference/ticketing/account-configuration/locales/
type Locale struct {
	Locale string `json:"locale"`
}

// Article is one raw Help Center article as returned by the articles
// endpoints.  A null body or section_id on the wire decodes to the zero
// value; SectionID 0 means "no section".
type Article struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url"`
	Locale    string `json:"locale"`
	SectionID int64  `json:"section_id"`
	Draft     bool   `json:"draft"`

	// Brand is stamped on when the article was fetched through a
	// brand-scoped endpoint, and nil otherwise.  The API never sends this
	// field; it only appears in our own exports.
	Brand *BrandContext `json:"brand,omitempty"`
}

// BrandContext records which brand an article was fetched through, so later
// stages can repair URLs that the API reports against the wrong domain.
type BrandContext struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	BaseURL   string `json:"base_url"`
}

// SectionTable maps a section id to its category id.
type SectionTable map[int64]int64

func BuildSectionTable(sections []Section) SectionTable {
	table := make(SectionTable, len(sections))
	for _, s := range sections {
		table[s.ID] = s.CategoryID
	}
	return table
}
