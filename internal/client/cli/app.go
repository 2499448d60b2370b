package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/pankitchen/pankitchen/internal/client/api"
	"github.com/pankitchen/pankitchen/internal/client/config"
	"github.com/pankitchen/pankitchen/internal/client/repositories/credentials"
	"github.com/pankitchen/pankitchen/internal/client/services"
	"github.com/pankitchen/pankitchen/internal/client/session"
	"github.com/pankitchen/pankitchen/internal/client/storage"
	"github.com/pankitchen/pankitchen/internal/logging"
)

// App is the root controller of the CLI. It owns the resolved session state
// and the services the command handlers talk to.
type App struct {
	config      *config.Config
	authService services.AuthService
	postService services.PostService
	log         logging.Logger
	loggedIn    bool
	reader      *bufio.Reader
}

// NewApp opens the local database, builds the API client and services, and
// returns a ready-to-run App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.ServerURL, c.HTTPTimeout)

	as := services.NewAuthService(apiClient, creds, log)
	ps := services.NewPostService(apiClient, creds, log)

	return &App{
		config:      c,
		authService: as,
		postService: ps,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	if a.loggedIn {
		return "feed"
	}
	return "guest"
}

// Run resolves the launch-time session state, routes accordingly, and
// enters the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	boot := session.NewBootstrapper(a.authService, a.log)
	state, directive := boot.Resolve(ctx)
	a.loggedIn = state == session.StateAuthenticated

	printlnFn("Welcome to Pankitchen CLI (type 'help' for commands)")

	switch directive {
	case session.RouteFeed:
		// identity lookup is best-effort; an expired token just means the
		// next protected call asks the user to log in again
		if user, err := a.authService.CurrentUser(ctx); err == nil {
			printlnFn("Logged in as", user.Email)
		}
	case session.RouteLogin:
		_ = a.Login(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
