package state

import (
	"context"
	"sync"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/models"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/logging"
)

// BalanceAPI is the slice of the backend contract the wallet container needs.
type BalanceAPI interface {
	WalletBalance(ctx context.Context) (*models.Balance, error)
}

// CredentialStore reads and invalidates the persisted credential. Clear
// must remove it from both locations and be idempotent.
type CredentialStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Navigator forces a route change, used when a rejected credential ends the
// session.
type Navigator interface {
	Navigate(to nav.Route)
}

// ErrLoadBalance is the fallback message when a balance fetch fails without
// carrying one of its own.
const ErrLoadBalance = "unable to load wallet balance"

// Wallet tracks the on-chain balance for the logged-in user.
//
// The exposed state is three-way: a balance is present, or the user has no
// wallet yet (Balance() == nil with no error), or the fetch failed
// (ErrorMessage() != ""). Collapsing "no wallet" and "fetch failed" into
// one state would make the dashboard display a failure where it should
// prompt wallet creation, so the two are kept strictly apart.
//
// Exactly one instance coordinates fetches for the whole authenticated
// section of the application.
type Wallet struct {
	api    BalanceAPI
	creds  CredentialStore
	router Navigator
	log    logging.Logger

	mu      sync.Mutex
	balance *models.Balance
	errMsg  string
	loading bool
	gen     uint64
}

func NewWallet(api BalanceAPI, creds CredentialStore, router Navigator, log logging.Logger) *Wallet {
	return &Wallet{api: api, creds: creds, router: router, log: log, loading: true}
}

// Balance returns the last fetched snapshot, or nil when none exists.
func (w *Wallet) Balance() *models.Balance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// ErrorMessage returns the message of the last failed fetch, or "".
func (w *Wallet) ErrorMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

func (w *Wallet) IsLoading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

// HandleRoute reacts to a navigation event. A fetch is issued only when a
// credential is stored and the route is outside the unauthenticated
// section; otherwise the container settles without touching previous state,
// and any in-flight fetch is invalidated.
func (w *Wallet) HandleRoute(ctx context.Context, route nav.Route) {
	token, err := w.creds.Token(ctx)
	if err != nil || token == "" || nav.IsAuthRoute(route) {
		w.mu.Lock()
		w.gen++
		w.loading = false
		w.mu.Unlock()
		return
	}
	w.Refresh(ctx)
}

// Refresh fetches a new balance snapshot. It is the same routine the
// navigation path runs, exposed so that actions elsewhere (a completed
// wallet restore, a user-triggered retry) can force a resync.
func (w *Wallet) Refresh(ctx context.Context) {
	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.loading = true
	w.errMsg = ""
	w.mu.Unlock()

	balance, err := w.api.WalletBalance(ctx)

	w.mu.Lock()
	if gen != w.gen {
		// Superseded by a newer fetch or a route change; the owner of the
		// current generation settles the loading flag.
		w.mu.Unlock()
		return
	}
	w.loading = false

	sessionEnded := false
	switch {
	case err == nil:
		w.balance = balance
		w.errMsg = ""
	case api.IsUnauthorized(err):
		// The credential was rejected. The redirect is the resolution;
		// no error message flashes before navigation.
		sessionEnded = true
	case api.IsForbidden(err):
		// Authenticated but no wallet provisioned yet. Not a failure:
		// consumers branch on balance == nil with no error and prompt
		// the user to create a wallet.
		w.balance = nil
	default:
		// Keep the previous snapshot so a transient blip does not blank
		// the UI; the message alone signals the failure.
		w.errMsg = api.Message(err, ErrLoadBalance)
		w.log.Error(ctx, "failed to fetch balance", "err", err)
	}
	w.mu.Unlock()

	if sessionEnded {
		if cerr := w.creds.Clear(ctx); cerr != nil {
			w.log.Error(ctx, "failed to clear credential", "err", cerr)
		}
		w.router.Navigate(nav.RouteLogin)
	}
}

// Reset drops all cached state and invalidates any in-flight fetch. Called
// on logout.
func (w *Wallet) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	w.balance = nil
	w.errMsg = ""
	w.loading = false
}
