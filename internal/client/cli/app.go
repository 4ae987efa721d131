// Package cli is the interactive front of the Mesto client. It plays the
// role the React component tree played in the original app: it consumes the
// session controller's state and notifications and turns user commands into
// controller calls.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/mesto-cli/internal/client/api"
	"github.com/dmitrijs2005/mesto-cli/internal/client/config"
	"github.com/dmitrijs2005/mesto-cli/internal/client/models"
	"github.com/dmitrijs2005/mesto-cli/internal/client/session"
	"github.com/dmitrijs2005/mesto-cli/internal/client/storage"
	"github.com/dmitrijs2005/mesto-cli/internal/logging"
)

// sessionController is the controller surface the CLI needs. The concrete
// session.Controller satisfies it; tests substitute a fake.
type sessionController interface {
	Start(ctx context.Context)
	Login(ctx context.Context, creds models.Credentials) error
	Register(ctx context.Context, creds models.Credentials) error
	Logout(ctx context.Context) error
	State() session.State
	Email() string
	User() *models.User
	Cards() []models.Card
	AddCard(ctx context.Context, name, link string) (*models.Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	ToggleLike(ctx context.Context, cardID string) (*models.Card, error)
	UpdateProfile(ctx context.Context, name, about string) error
	UpdateAvatar(ctx context.Context, avatar string) error
}

type App struct {
	config  *config.Config
	session sessionController
	reader  *bufio.Reader
	log     logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(parseLevel(cfg.LogLevel))

	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)

	a := &App{config: cfg, reader: bufio.NewReader(os.Stdin), log: log}

	authClient := api.NewAuthClient(cfg.AuthEndpoint, store)
	gateway := api.NewGateway(cfg.APIEndpoint, cfg.APIAuthorization)
	a.session = session.NewController(authClient, gateway, store, a, log)

	return a, nil
}

// Run performs silent re-authentication from the stored token, reports where
// the route guard lands, and enters the command loop.
func (a *App) Run(ctx context.Context) {
	a.session.Start(ctx)

	if session.Allow(a.session.State()) {
		printlnFn("Signed in as " + a.session.Email())
	} else {
		printlnFn("Not signed in (redirected to " + string(session.Resolve(a.session.State())) + "). Try 'register' or 'login'.")
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Notify implements session.Notifier: the CLI analog of the original's
// success/failure tooltip popup.
func (a *App) Notify(success bool) {
	if success {
		printlnFn("Success!")
	} else {
		printlnFn("Something went wrong! Try again.")
	}
}

func (a *App) isLoggedIn() bool {
	return session.Allow(a.session.State())
}

func (a *App) getStatus() string {
	if email := a.session.Email(); email != "" {
		return "(" + email + ")"
	}
	return ""
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
