// Package nav models the application's navigation: the set of routes the
// web surface exposes and a Router that state containers subscribe to, so
// a credential rejection can force the whole app back to the login route.
package nav

import (
	"strings"
	"sync"
)

type Route string

const (
	RouteRoot            Route = "/"
	RouteLogin           Route = "/login"
	RouteRegister        Route = "/register"
	RouteForgotPassword  Route = "/forgot-password"
	RouteResetPassword   Route = "/reset-password"
	RouteVerifyEmail     Route = "/verify-email"
	RouteCreateOrRestore Route = "/create-or-restore"
	RouteDashboard       Route = "/dashboard"
	RouteProfile         Route = "/profile"
	RouteSettings        Route = "/settings"
	RouteSupport         Route = "/support"
)

// authRoutePrefixes are the unauthenticated-only routes. No balance fetch
// is issued while the user is on one of these; a 401 round-trip here would
// be spurious since authentication is still in progress.
var authRoutePrefixes = []Route{
	RouteLogin,
	RouteRegister,
	RouteForgotPassword,
	RouteResetPassword,
	RouteVerifyEmail,
}

// IsAuthRoute reports whether route belongs to the unauthenticated section,
// matched by path prefix. This is a routing heuristic, not a security
// boundary.
func IsAuthRoute(route Route) bool {
	for _, prefix := range authRoutePrefixes {
		if strings.HasPrefix(string(route), string(prefix)) {
			return true
		}
	}
	return false
}

// Router tracks the current route and notifies subscribers on navigation.
// Subscribers run synchronously on the navigating goroutine, in
// registration order.
type Router struct {
	mu        sync.Mutex
	current   Route
	listeners []func(Route)
}

func NewRouter(initial Route) *Router {
	return &Router{current: initial}
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Subscribe registers fn to run after every Navigate call.
func (r *Router) Subscribe(fn func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Navigate switches the current route and notifies subscribers. Navigating
// to the route the app is already on still notifies, matching the remount
// behavior of the web surface.
func (r *Router) Navigate(to Route) {
	r.mu.Lock()
	r.current = to
	listeners := make([]func(Route), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(to)
	}
}
