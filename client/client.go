// Package client is the application core of the trip planner: session
// lifecycle, trip-collection synchronization and planning-request
// orchestration with offline fallback, all behind one HTTP gateway.
package client

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/gateway"
)

// Client wires the three stateful services to the shared gateway. Construct
// one per process with New, call Session().Bootstrap once at startup, and
// Close when done.
type Client struct {
	baseURL string
	store   credstore.Store
	http    *resty.Client

	notifier Notifier
	nav      Navigator

	session *Session
	trips   *TripStore
	planner *Planner

	// construction knobs collected by options
	timeout time.Duration
	debug   bool

	closedOnce uint32
}

// New constructs a Client for the service at baseURL. Additional options can
// be provided via functional arguments; environment defaults come from
// ConfigFromEnv.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = cfg.ServiceURL
	}
	credPath := cfg.CredentialFile
	if credPath == "" {
		credPath = credstore.DefaultPath()
	}

	c := &Client{
		baseURL:  baseURL,
		store:    credstore.NewFileStore(credPath),
		notifier: logNotifier{},
		nav:      logNavigator{},
		timeout:  cfg.HTTPTimeout,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// The teardown closure reads c.session at call time; the field is set
	// before any request can be issued.
	c.http = gateway.New(baseURL, c.store, func() {
		if s := c.session; s != nil {
			s.invalidate()
		}
	})
	c.http.SetTimeout(c.timeout)
	if c.debug {
		c.http.SetTransport(&debugTransport{base: http.DefaultTransport})
	}

	c.session = newSession(c.http, c.store, c.notifier, c.nav)
	c.trips = newTripStore(c.http, c.notifier)
	c.planner = newPlanner(c.http, c.notifier)
	return c, nil
}

// Session returns the session manager.
func (c *Client) Session() *Session { return c.session }

// Trips returns the trip synchronization layer.
func (c *Client) Trips() *TripStore { return c.trips }

// Planner returns the planning orchestrator.
func (c *Client) Planner() *Planner { return c.planner }

// BaseURL returns the configured API base.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle transport resources. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.GetClient().CloseIdleConnections()
	return nil
}
