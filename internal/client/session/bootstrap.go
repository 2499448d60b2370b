// Package session decides the initial navigation state of the client from
// the locally stored credentials.
package session

import (
	"context"

	"github.com/pankitchen/pankitchen/internal/logging"
)

// State is the session state resolved at application start.
type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Directive is the navigation target issued once the state is resolved.
type Directive int

const (
	// RouteLogin sends the user to the login flow.
	RouteLogin Directive = iota
	// RouteFeed sends the user straight to the main feed.
	RouteFeed
)

// TokenSource reads the persisted access token; "" means absent.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Bootstrapper resolves the launch-time session state exactly once.
// Presence of an access token is the only input: validity is not checked
// locally, so an expired token still resolves to StateAuthenticated and a
// later protected call surfaces the failure.
type Bootstrapper struct {
	tokens   TokenSource
	log      logging.Logger
	state    State
	resolved bool
}

func NewBootstrapper(tokens TokenSource, log logging.Logger) *Bootstrapper {
	return &Bootstrapper{
		tokens: tokens,
		log:    log.With("component", "session"),
		state:  StateUnknown,
	}
}

// Resolve reads the stored access token and returns the resulting state and
// navigation directive. The decision is made once per process; later calls
// return the cached result. A storage read error is logged and treated as
// unauthenticated.
func (b *Bootstrapper) Resolve(ctx context.Context) (State, Directive) {
	if b.resolved {
		return b.state, b.directive()
	}
	b.resolved = true

	token, err := b.tokens.AccessToken(ctx)
	switch {
	case err != nil:
		b.log.Warn(ctx, "reading stored token failed, treating as unauthenticated", "error", err)
		b.state = StateUnauthenticated
	case token != "":
		b.state = StateAuthenticated
	default:
		b.state = StateUnauthenticated
	}

	b.log.Info(ctx, "session resolved", "state", b.state.String())
	return b.state, b.directive()
}

// State returns the resolved state (StateUnknown before Resolve).
func (b *Bootstrapper) State() State {
	return b.state
}

func (b *Bootstrapper) directive() Directive {
	if b.state == StateAuthenticated {
		return RouteFeed
	}
	return RouteLogin
}
