package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freementors/mentorctl/internal/config"
	"github.com/freementors/mentorctl/internal/credstore"
	"github.com/freementors/mentorctl/internal/errors"
	"github.com/freementors/mentorctl/internal/gateway"
	"github.com/freementors/mentorctl/internal/guard"
	"github.com/freementors/mentorctl/internal/log"
	"github.com/freementors/mentorctl/internal/platform"
	"github.com/freementors/mentorctl/internal/session"
	"github.com/freementors/mentorctl/internal/ux"
)

// App holds the fully wired dependencies of a command invocation. It is
// built once per invocation from the persistent flags, so commands never
// touch globals or re-read configuration.
type App struct {
	Config   *config.Config
	Logger   *log.Logger
	Session  *session.Store
	Platform *platform.Client
	Gateway  *gateway.Gateway
	Format   string
}

// newApp builds the application from persistent flags and the environment.
// The session store is initialized from the persisted credential record and
// the platform client picks up the stored token when one exists.
func newApp(cmd *cobra.Command) (*App, error) {
	home, _ := cmd.Flags().GetString("home")

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	creds := credstore.New(cfg.CredentialsPath(), credstore.WithPassphrase(cfg.Passphrase))
	store := session.NewStore(creds)
	store.Initialize()

	client := platform.NewClient(cfg.APIURL)
	if snap := store.Snapshot(); snap.Authenticated() {
		client.SetToken(snap.Token)
	}

	format, _ := cmd.Flags().GetString("format")

	return &App{
		Config:   cfg,
		Logger:   logger,
		Session:  store,
		Platform: client,
		Gateway:  gateway.New(client, store, logger),
		Format:   format,
	}, nil
}

// Formatter returns the output formatter selected by --format.
func (a *App) Formatter() (ux.Formatter, error) {
	return ux.NewFormatter(a.Format, &ux.FormatterOptions{Writer: os.Stdout})
}

// requireView enforces a guard requirement before a protected command runs.
// The returned errors mirror the navigation outcomes: a login redirect for
// unauthenticated visitors, an unauthorized redirect for missing flags.
func (a *App) requireView(req guard.Requirement) error {
	snap := a.Session.Snapshot()

	switch decision := guard.Evaluate(snap, req); decision {
	case guard.Render:
		return nil
	case guard.RedirectLogin:
		return errors.New(errors.ErrCodeAuthNotLoggedIn, "not logged in").
			WithSuggestions("Run 'mentorctl auth login' to sign in")
	case guard.RedirectUnauthorized:
		if req.RequireAdmin && !snap.IsAdmin {
			return errors.New(errors.ErrCodeAuthUnauthorized, "unauthorized: this view requires an administrator account")
		}
		return errors.New(errors.ErrCodeAuthUnauthorized, "unauthorized: this view requires a mentor account")
	default:
		return fmt.Errorf("unexpected guard decision: %s", decision)
	}
}
