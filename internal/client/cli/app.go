// Package cli is the interactive terminal front-end of the radar client.
package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jobtechradar/radar/internal/client/client"
	"github.com/jobtechradar/radar/internal/client/config"
	"github.com/jobtechradar/radar/internal/client/services"
	"github.com/jobtechradar/radar/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services behind the REPL.
type App struct {
	config  *config.Config
	session *services.Session
	search  *services.OfferSearch
	techs   *services.TechStats
	table   *services.TechTable
	reader  *bufio.Reader
	closeDB func() error
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)

	return &App{
		config:  c,
		session: services.NewSession(api, repos, logger),
		search:  services.NewOfferSearch(api, logger),
		techs:   services.NewTechStats(api, logger),
		table:   services.NewTechTable(),
		reader:  bufio.NewReader(os.Stdin),
		closeDB: repos.DB.Close,
	}, nil
}

// Run restores the persisted session, then hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.closeDB() }()
	a.session.Restore(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Username + ")"
	}
	return ""
}
