package apiclient

import (
	"net/http"
	"time"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

// DefaultTimeout matches domain.DefaultConfig().Server.ClientTimeout.
const DefaultTimeout = 10 * time.Second

// WithTimeout bounds each call, reading the body included. Non-positive
// values keep the current timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// FromConfig returns the options a command derives from unitcalc.yaml.
func FromConfig(cfg domain.ServerConfig) []Option {
	return []Option{WithTimeout(cfg.ClientTimeout)}
}

// newHTTPClient clones the default transport so proxies and keep-alives
// behave as usual, and stops waiting on headers once the call budget is spent.
func newHTTPClient(timeout time.Duration) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.ResponseHeaderTimeout = timeout
	return &http.Client{Transport: tr, Timeout: timeout}
}
