package zendesk

import "fmt"

// BrandBaseURL is the one place we decide which domain serves a brand's Help
// Center.  A brand with a custom domain mapping is reached there; everything
// else lives on its own *.zendesk.com subdomain.  Article fetching, URL
// repair and display listings must all go through here.
func BrandBaseURL(b Brand) string {
	if b.HostMapping != "" {
		return fmt.Sprintf("https://%s", b.HostMapping)
	}
	return fmt.Sprintf("https://%s.zendesk.com", b.Subdomain)
}

// SubdomainBaseURL returns the base URL of the account's main subdomain.
func SubdomainBaseURL(subdomain string) string {
	return fmt.Sprintf("https://%s.zendesk.com", subdomain)
}
