package client

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Variant distinguishes informational notifications from failures.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a user-facing event pushed by an operation, separate from
// the result returned to its caller. Business-logic success or failure is
// always reported through the return value; notifications only feed the UI.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

// Notifier receives notification events.
type Notifier interface {
	Notify(n Notification)
}

// Navigator receives navigation requests, such as the redirect to login
// after a session teardown.
type Navigator interface {
	NavigateTo(route string)
}

// Well-known routes.
const (
	RouteLogin = "/login"
	RouteTrips = "/trips"
)

// logNotifier emits notifications as structured log events. It is the
// default when no UI is attached.
type logNotifier struct{}

func (logNotifier) Notify(n Notification) {
	ev := log.Info()
	if n.Variant == VariantDestructive {
		ev = log.Warn()
	}
	ev.Str("title", n.Title).Str("description", n.Description).Msg("notification")
}

// logNavigator records navigation requests in the log. Embedding
// applications replace it with real routing.
type logNavigator struct{}

func (logNavigator) NavigateTo(route string) {
	log.Info().Str("route", route).Msg("navigation requested")
}

// CollectingNotifier buffers notifications for inspection. Intended for
// tests and headless tooling.
type CollectingNotifier struct {
	mu   sync.Mutex
	seen []Notification
}

// Notify appends n to the buffer.
func (c *CollectingNotifier) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, n)
}

// Notifications returns a copy of everything received so far.
func (c *CollectingNotifier) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.seen))
	copy(out, c.seen)
	return out
}

// CollectingNavigator records navigation requests for inspection.
type CollectingNavigator struct {
	mu     sync.Mutex
	routes []string
}

// NavigateTo appends route to the record.
func (c *CollectingNavigator) NavigateTo(route string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes = append(c.routes, route)
}

// Routes returns a copy of the recorded navigation targets.
func (c *CollectingNavigator) Routes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.routes))
	copy(out, c.routes)
	return out
}
