package zendesk

// PerPage is the page size requested from every paginated endpoint.
const PerPage = 100

// ArticlesQuery defines the query parameters for the paginated article
// listing endpoints:
// https://developer.zendesk.com/api-reference/help_center/help-center-api/articles/#list-articles
type ArticlesQuery struct {
	Page    int `url:"page"`     // 1-based page number
	PerPage int `url:"per_page"` // page size; Help Center caps this at 100
}
