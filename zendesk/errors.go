package zendesk

import (
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of ways a Help Center request can fail.
// Callers match on the kind instead of branching on raw status codes.
type ErrorKind int

const (
	Unauthorized ErrorKind = iota
	Forbidden
	NotFound
	RateLimited
	ServerError
	NetworkFault
)

func (k ErrorKind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not found"
	case RateLimited:
		return "rate limited"
	case ServerError:
		return "server error"
	case NetworkFault:
		return "network fault"
	default:
		return "unknown"
	}
}

// FetchError reports a failed request against one endpoint.  Status and Body
// are zero for NetworkFault, where Err holds the transport error instead.
type FetchError struct {
	Kind   ErrorKind
	Status int
	Body   string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == NetworkFault {
		return fmt.Sprintf("zendesk: network fault for %s: %v", e.URL, e.Err)
	}
	if e.Kind == Unauthorized || e.Kind == Forbidden {
		return fmt.Sprintf("zendesk: %s (HTTP %d) for %s; check your email and API token", e.Kind, e.Status, e.URL)
	}
	return fmt.Sprintf("zendesk: %s (HTTP %d) for %s: %s", e.Kind, e.Status, e.URL, e.Body)
}

func (e *FetchError) Unwrap() error { return e.Err }

func classifyStatus(status int, body string, url string) *FetchError {
	kind := ServerError
	switch status {
	case http.StatusUnauthorized:
		kind = Unauthorized
	case http.StatusForbidden:
		kind = Forbidden
	case http.StatusNotFound:
		kind = NotFound
	case http.StatusTooManyRequests:
		kind = RateLimited
	}
	return &FetchError{
		Kind:   kind,
		Status: status,
		Body:   body,
		URL:    url,
	}
}
