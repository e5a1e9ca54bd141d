package ada

import (
	"fmt"
	"net/http"
	"net/url"
)

// NewAPI builds a client for one Ada bot's Knowledge API.  handle is the bot
// handle, i.e. HANDLE in https://HANDLE.ada.support.  Missing configuration
// is caught here, before any network call.
func NewAPI(handle string, token string) (*API, error) {
	if handle == "" {
		return &API{}, fmt.Errorf("ada: configure your Ada bot handle with --ada-handle")
	}
	if token == "" {
		return &API{}, fmt.Errorf("ada: knowledge API token is empty, set --ada-token or ada-token-cmd")
	}

	u, err := url.ParseRequestURI(fmt.Sprintf("https://%s.ada.support", handle))
	if err != nil {
		return nil, fmt.Errorf("ada: couldn't parse REST API URL: %w", err)
	}

	a := &API{
		BaseURI: u,
		token:   token,
	}
	a.Client = &http.Client{}

	return a, nil
}

type API struct {
	// The bot's base URL, e.g. https://HANDLE.ada.support
	BaseURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// Bearer token for the Knowledge API
	token string
}
