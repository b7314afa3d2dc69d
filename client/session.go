package client

import (
	"context"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/api"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/claims"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// SessionState is the authentication lifecycle state.
type SessionState int

const (
	StateUnauthenticated SessionState = iota
	StateVerifying
	StateAuthenticated
)

// String returns the lifecycle state name.
func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session owns authentication state. The user is always derived from the
// credential's claims, never invented independently: user != nil exactly
// when the state is Authenticated.
type Session struct {
	mu    sync.Mutex
	state SessionState
	user  *types.User

	http     *resty.Client
	store    credstore.Store
	notifier Notifier
	nav      Navigator
}

func newSession(http *resty.Client, store credstore.Store, notifier Notifier, nav Navigator) *Session {
	s := &Session{
		http:     http,
		store:    store,
		notifier: notifier,
		nav:      nav,
		state:    StateUnauthenticated,
	}
	if _, ok := store.Load(); ok {
		s.state = StateVerifying
	}
	return s
}

// Bootstrap runs the one-time startup verification. If a credential is
// persisted it is checked against the server and decoded into the user
// profile; on any failure, including an undecodable credential, the
// credential is erased and the session ends up unauthenticated. Bootstrap
// never fails the caller; a dead credential is an expected outcome.
func (s *Session) Bootstrap(ctx context.Context) {
	tok, ok := s.store.Load()
	if !ok {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.user = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.state = StateVerifying
	s.mu.Unlock()

	err := api.VerifySession(ctx, s.http)
	var usr types.User
	if err == nil {
		usr, err = claims.Decode(tok)
		if err != nil {
			err = errs.Decode("verify session", err)
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("session verification failed, clearing credential")
		s.store.Clear()
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.user = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.state = StateAuthenticated
	s.user = &usr
	s.mu.Unlock()
}

// Login authenticates with the server. On success the returned credential is
// persisted, the profile becomes the session user, and the caller is
// navigated to the trips view. On failure the session is left untouched and
// the error propagates alongside a failure notification.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := api.Login(ctx, s.http, email, password)
	if err != nil {
		s.notifier.Notify(Notification{
			Title:       "Login failed",
			Description: "Invalid email or password",
			Variant:     VariantDestructive,
		})
		return err
	}

	if err := s.store.Save(resp.AccessToken); err != nil {
		s.notifier.Notify(Notification{
			Title:       "Login failed",
			Description: "Could not persist the session credential",
			Variant:     VariantDestructive,
		})
		return err
	}

	s.mu.Lock()
	u := resp.User
	s.user = &u
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.notifier.Notify(Notification{Title: "Login successful", Description: "Welcome back!", Variant: VariantDefault})
	s.nav.NavigateTo(RouteTrips)
	return nil
}

// Register creates a new account. Success navigates to the login view; the
// server does not log the new account in.
func (s *Session) Register(ctx context.Context, email, password, fullName string) error {
	if err := api.Register(ctx, s.http, email, password, fullName); err != nil {
		s.notifier.Notify(Notification{
			Title:       "Registration failed",
			Description: "Could not create your account. Please try again.",
			Variant:     VariantDestructive,
		})
		return err
	}
	s.notifier.Notify(Notification{
		Title:       "Registration successful",
		Description: "You can now log in with your credentials",
		Variant:     VariantDefault,
	})
	s.nav.NavigateTo(RouteLogin)
	return nil
}

// Logout erases the persisted credential, clears the user and navigates to
// login. It always succeeds and involves no network call.
func (s *Session) Logout() {
	s.store.Clear()
	s.mu.Lock()
	s.user = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()
	s.nav.NavigateTo(RouteLogin)
}

// invalidate is the gateway's teardown hook: any 401, from any operation,
// forces the session out regardless of what was in flight. The credential
// has already been erased by the gateway.
func (s *Session) invalidate() {
	s.mu.Lock()
	wasAuthenticated := s.state == StateAuthenticated
	s.user = nil
	s.state = StateUnauthenticated
	s.mu.Unlock()

	if wasAuthenticated {
		s.notifier.Notify(Notification{
			Title:       "Session expired",
			Description: "Please log in again",
			Variant:     VariantDestructive,
		})
	}
	s.nav.NavigateTo(RouteLogin)
}

// IsAuthenticated reports whether the session holds a verified user.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated
}

// IsLoading reports whether the bootstrap verification is still in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateVerifying
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns a copy of the authenticated user, or ok=false when the
// session is not authenticated.
func (s *Session) User() (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return types.User{}, false
	}
	return *s.user, true
}
