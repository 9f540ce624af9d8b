// Package http provides an HTTP-based implementation of sensei.URLChecker
// for confirming that a documentation page exists before it is opened.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/sensei"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// Ensure Checker implements sensei.URLChecker at compile time.
var _ sensei.URLChecker = (*Checker)(nil)

// Checker requests documentation pages and inspects the status code.
type Checker struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.timeout = d
	}
}

// NewChecker creates a new HTTP-based Checker.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Check requests the page at url, ignoring any query string, and follows
// redirects. A 404 is reported as ENOTFOUND; any other failure as EOPEN.
func (c *Checker) Check(ctx context.Context, url string) error {
	page, _, _ := strings.Cut(url, "?")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return sensei.Errorf(sensei.EINVALID, "invalid documentation URL %q: %v", page, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return sensei.Errorf(sensei.EOPEN, "could not reach %s: %v", page, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sensei.Errorf(sensei.ENOTFOUND, "no documentation at %s", page)
	case resp.StatusCode >= 400:
		return sensei.Errorf(sensei.EOPEN, "HTTP %d for %s", resp.StatusCode, page)
	}
	return nil
}
