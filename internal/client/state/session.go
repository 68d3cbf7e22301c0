// Package state holds the two process-wide state containers: the session
// (current user) and the wallet balance. Each is constructed once in the
// composition root and injected into its consumers; neither is a package
// global, so tests substitute fakes freely.
package state

import (
	"context"
	"sync"

	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/logging"
)

// UserAPI is the slice of the backend contract the session container needs.
type UserAPI interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// TokenReader reads the persisted credential without mutating it.
type TokenReader interface {
	Token(ctx context.Context) (string, error)
}

// RouteSource reports the current route. The session uses it only to decide
// whether a fetch failure is worth logging.
type RouteSource interface {
	Current() nav.Route
}

// Session resolves the stored credential to a user profile.
//
// Exposed state is {User, IsLoading}. A fetch failure is deliberately not
// surfaced as an error field: consumers treat User() == nil uniformly as
// "not authenticated", whether the credential was absent or the fetch
// failed.
type Session struct {
	api    UserAPI
	creds  TokenReader
	routes RouteSource
	log    logging.Logger

	mu      sync.Mutex
	user    *models.User
	loading bool
	gen     uint64
}

func NewSession(api UserAPI, creds TokenReader, routes RouteSource, log logging.Logger) *Session {
	return &Session{api: api, creds: creds, routes: routes, log: log, loading: true}
}

// User returns the cached profile, or nil when unauthenticated.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Attach runs the one-shot mount lifecycle: a synchronous credential check,
// then at most one fetch. With no stored credential the container settles
// immediately and no network call is issued, so public pages never flash a
// loading state.
func (s *Session) Attach(ctx context.Context) {
	token, err := s.creds.Token(ctx)
	if err != nil || token == "" {
		s.mu.Lock()
		s.gen++
		s.loading = false
		s.mu.Unlock()
		return
	}
	s.fetch(ctx)
}

// Refetch re-runs the fetch on demand, e.g. after a 2FA toggle changed the
// profile. Single attempt, no retry; the caller decides whether to retry.
func (s *Session) Refetch(ctx context.Context) {
	s.fetch(ctx)
}

// Reset drops the cached user and invalidates any in-flight fetch. Called
// on logout.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.user = nil
	s.loading = false
}

func (s *Session) fetch(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	user, err := s.api.CurrentUser(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer request or a reset superseded this one; its owner
		// settles the loading flag.
		return
	}
	s.loading = false
	if err != nil {
		route := s.routes.Current()
		if !nav.IsAuthRoute(route) && route != nav.RouteRoot {
			s.log.Error(ctx, "failed to fetch user", "err", err)
		}
		return
	}
	s.user = user
}
