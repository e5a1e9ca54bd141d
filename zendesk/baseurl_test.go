package zendesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrandBaseURLPrefersHostMapping(t *testing.T) {
	brand := Brand{
		ID:          360001,
		Name:        "Support",
		Subdomain:   "acme-support",
		HostMapping: "help.acme.com",
	}

	assert.Equal(t, "https://help.acme.com", BrandBaseURL(brand))
}

func TestBrandBaseURLFallsBackToSubdomain(t *testing.T) {
	brand := Brand{
		ID:        360002,
		Name:      "Internal",
		Subdomain: "acme-internal",
	}

	assert.Equal(t, "https://acme-internal.zendesk.com", BrandBaseURL(brand))
}

func TestSubdomainBaseURL(t *testing.T) {
	assert.Equal(t, "https://acme.zendesk.com", SubdomainBaseURL("acme"))
}
