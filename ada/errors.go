package ada

import (
	"fmt"
	"net/http"
)

// APIError reports a non-2xx response from the Knowledge API.  Status 0
// means the request never completed; Err holds the transport error.
type APIError struct {
	Status int
	Body   string
	URL    string
	Err    error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ada: network fault for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("ada: HTTP %d for %s: %s", e.Status, e.URL, e.Body)
}

func (e *APIError) Unwrap() error { return e.Err }

// RateLimited reports whether the API asked us to back off.
func (e *APIError) RateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}
