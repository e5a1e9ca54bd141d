package zendesk

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// CourtesyDelay is the fixed pause between sequential requests, to stay
// clear of Help Center rate limits.
const CourtesyDelay = 100 * time.Millisecond

var subdomainRe = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// NewAPI builds a Help Center client for one Zendesk account.  When
// includeRestricted is set, requests authenticate as "{email}/token" with the
// API token, and both must be present; missing credentials are caught here,
// before any network call is made.
func NewAPI(subdomain string, email string, token string, includeRestricted bool) (*API, error) {
	if subdomain == "" {
		return &API{}, fmt.Errorf("zendesk: configure your Zendesk subdomain with --zendesk-subdomain")
	}
	if !subdomainRe.MatchString(subdomain) {
		return &API{}, fmt.Errorf("zendesk: subdomain %q is not valid", subdomain)
	}
	if includeRestricted {
		if email == "" {
			return &API{}, fmt.Errorf("zendesk: restricted access requested but no email configured, set --zendesk-email")
		}
		if token == "" {
			return &API{}, fmt.Errorf("zendesk: restricted access requested but no API token configured, set --zendesk-token")
		}
	}

	u, err := url.ParseRequestURI(SubdomainBaseURL(subdomain))
	if err != nil {
		return nil, fmt.Errorf("zendesk: couldn't parse REST API URL: %w", err)
	}

	a := &API{
		BaseURI:           u,
		email:             email,
		token:             token,
		includeRestricted: includeRestricted,
		Delay:             CourtesyDelay,
		sleep:             time.Sleep,
	}
	a.Client = &http.Client{}

	return a, nil
}

type API struct {
	// The account's main subdomain, e.g. https://ACCOUNT.zendesk.com
	BaseURI *url.URL

	// An HTTP client - you can substitute VCR or whatnot.
	Client *http.Client

	// Pause inserted after every request.
	Delay time.Duration

	// Auth info
	email, token      string
	includeRestricted bool

	sleep func(time.Duration)
}

// authenticated reports whether requests will carry basic auth.
func (a *API) authenticated() bool {
	return a.includeRestricted && a.email != "" && a.token != ""
}

func (a *API) pause() {
	if a.Delay > 0 {
		a.sleep(a.Delay)
	}
}
