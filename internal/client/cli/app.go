// Package cli is the interactive surface of the wallet client: a REPL over
// the account, wallet and support operations. It is also the composition
// root where the state containers and services are wired together.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/umuhoratech/wallet-cli/internal/client/api"
	"github.com/umuhoratech/wallet-cli/internal/client/config"
	"github.com/umuhoratech/wallet-cli/internal/client/credentials"
	"github.com/umuhoratech/wallet-cli/internal/client/localdb"
	"github.com/umuhoratech/wallet-cli/internal/client/nav"
	"github.com/umuhoratech/wallet-cli/internal/client/repositories/metadata"
	"github.com/umuhoratech/wallet-cli/internal/client/services"
	"github.com/umuhoratech/wallet-cli/internal/client/settings"
	"github.com/umuhoratech/wallet-cli/internal/client/state"
	"github.com/umuhoratech/wallet-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	log       logging.Logger
	apiClient api.Client
	router    *nav.Router
	session   *state.Session
	wallet    *state.Wallet
	auth      services.AuthService
	walletSvc services.WalletService
	chat      *services.SupportChat
	prefs     *settings.Service
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := localdb.Open(ctx, c.DataFile)
	if err != nil {
		return nil, err
	}

	creds := credentials.NewStore(db, c.CookieFile)
	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout, creds, logger)

	router := nav.NewRouter(nav.RouteRoot)
	session := state.NewSession(apiClient, creds, router, logger)
	wallet := state.NewWallet(apiClient, creds, router, logger)

	return &App{
		config:    c,
		db:        db,
		log:       logger,
		apiClient: apiClient,
		router:    router,
		session:   session,
		wallet:    wallet,
		auth:      services.NewAuthService(apiClient, creds),
		walletSvc: services.NewWalletService(apiClient, c.RestorePollInterval, c.RestorePollTimeout, logger),
		chat:      services.NewSupportChat(apiClient),
		prefs:     settings.NewService(metadata.NewSQLiteRepository(db)),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run wires the wallet container to navigation events, resolves any stored
// credential to a user, and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.router.Subscribe(func(route nav.Route) {
		a.wallet.HandleRoute(ctx, route)
	})

	a.session.Attach(ctx)
	if a.isLoggedIn() {
		a.router.Navigate(nav.RouteDashboard)
	}

	a.Root(ctx)
}

func (a *App) Close() {
	_ = a.apiClient.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}
