package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/zapulam/myapp/internal/client/api"
	"github.com/zapulam/myapp/internal/client/config"
	"github.com/zapulam/myapp/internal/client/services"
	"github.com/zapulam/myapp/internal/client/session"
	"github.com/zapulam/myapp/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	auth      services.AuthService
	log       logging.Logger
	reader    *bufio.Reader
	loggedIn  bool
	userEmail string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}
	store := session.NewStore(session.NewSQLiteRepository(db))

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	as := services.NewAuthService(apiClient, store, logger)

	app := &App{config: c, auth: as, log: logger, reader: bufio.NewReader(os.Stdin)}
	app.restoreSession(ctx)
	return app, nil
}

// restoreSession picks up a persisted session from a previous run. A token
// with no cached user is a legal partial state (the profile fetch after
// login may have failed); the session still counts as logged in.
func (a *App) restoreSession(ctx context.Context) {
	token, err := a.auth.Token(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read persisted token", "error", err)
		return
	}
	if token == "" {
		return
	}
	a.loggedIn = true

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to read cached user", "error", err)
		return
	}
	if user != nil {
		a.userEmail = user.Email
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}
