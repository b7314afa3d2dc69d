package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"time"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
)

// Option configures a Client during construction in New.
//
// Options run before the gateway is built, so a replaced credential store is
// the one the gateway's hooks observe. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the coarse per-request safety net that bounds one
// HTTP request end to end. Prefer per-call context deadlines where possible.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		return nil
	}
}

// WithDebugLogging installs a transport that dumps each request and response
// to the log. Dumps include credentials; do not enable outside development.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = c.debug || enabled
		return nil
	}
}

// WithCredentialStore replaces the persisted credential storage. Useful for
// tests (MemStore) and for hosts with their own secret handling.
func WithCredentialStore(s credstore.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("credential store must not be nil")
		}
		c.store = s
		return nil
	}
}

// WithCredentialPath stores the credential in a specific file instead of the
// default location.
func WithCredentialPath(path string) Option {
	return func(c *Client) error {
		if path == "" {
			return fmt.Errorf("credential path must not be empty")
		}
		c.store = credstore.NewFileStore(path)
		return nil
	}
}

// WithNotifier routes notification events to n instead of the log.
func WithNotifier(n Notifier) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("notifier must not be nil")
		}
		c.notifier = n
		return nil
	}
}

// WithNavigator routes navigation requests to n instead of the log.
func WithNavigator(n Navigator) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("navigator must not be nil")
		}
		c.nav = n
		return nil
	}
}
