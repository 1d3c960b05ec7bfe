package checker

import (
	"net/http"
	"net/url"
)

// SiteContext is the read-only snapshot of the bootstrap exchange, built once
// per run and shared by pointer with every check. It reflects only the
// bootstrap request; checks that need a different path or scheme issue their
// own request through Client and never write back into the context.
type SiteContext struct {
	// URL is the target as requested.
	URL *url.URL
	// FinalURL is where the bootstrap request ended up after redirects.
	FinalURL *url.URL
	// Header holds the final response headers (case-insensitive lookup via
	// http.Header).
	Header http.Header
	// Cookies are the parsed Set-Cookie values of the final response,
	// including HttpOnly/Secure/SameSite flags.
	Cookies []*http.Cookie
	// Body is the response body text. May be empty.
	Body string
	// Client is the shared HTTP client for secondary check requests.
	Client *Client
}

// Cookie returns the named cookie from the bootstrap response, or nil.
func (sc *SiteContext) Cookie(name string) *http.Cookie {
	for _, ck := range sc.Cookies {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
