package placeholder

import (
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public JSONPlaceholder host.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets the API base URL. Trailing slashes are trimmed.
// Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimRight(u, "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout on the HTTP client.
// Zero keeps requests bound only by their context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
