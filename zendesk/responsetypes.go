package zendesk

// ArticlesResponse is one page of an article listing.  NextPage holds the
// URL of the following page, or is empty/null on the last one.
type ArticlesResponse struct {
	Articles []Article `json:"articles"`
	NextPage string    `json:"next_page"`
}

type LocalesResponse struct {
	Locales []Locale `json:"locales"`
}

type BrandsResponse struct {
	Brands []Brand `json:"brands"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type SectionsResponse struct {
	Sections []Section `json:"sections"`
}
