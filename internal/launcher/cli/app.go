package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/derol/majestic-launcher/internal/common"
	"github.com/derol/majestic-launcher/internal/launcher/auth"
	"github.com/derol/majestic-launcher/internal/launcher/config"
	"github.com/derol/majestic-launcher/internal/launcher/settings"
	"github.com/derol/majestic-launcher/internal/launcher/sim"
	"github.com/derol/majestic-launcher/internal/launcher/storage"
	"github.com/derol/majestic-launcher/internal/logging"
)

// App wires the launcher's services behind the interactive shell. All
// commands the REPL dispatches are methods on App.
type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	auth       *auth.Service
	settings   *settings.Service
	sched      sim.Scheduler
	population *sim.Population
	connect    *sim.Connect
	download   *sim.Download
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sched := sim.NewTickerScheduler()

	return &App{
		config:     cfg,
		logger:     logger,
		db:         db,
		auth:       auth.NewService(db, logger, []byte(cfg.SecretKey)),
		settings:   settings.NewService(storage.NewSQLiteStore(db), logger),
		sched:      sched,
		population: sim.NewPopulation(logger),
		connect:    sim.NewConnect(logger),
		download:   sim.NewDownload(logger, sched),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores any persisted session, starts the background population
// updates and hands control to the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintf(a.out, "Majestic RP launcher v%s (type 'help' for commands)\n", common.Version)

	if session := a.auth.RestoreSession(ctx); session != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", session.Login)
	}

	a.population.Start(a.sched)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close tears down background timers and releases the database handle.
func (a *App) Close() {
	a.population.Stop()
	a.connect.Stop()
	a.download.Stop()
	if err := a.db.Close(); err != nil {
		a.logger.Warn(context.Background(), "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) status() string {
	if s := a.auth.Current(); s != nil {
		return s.Login
	}
	return "guest"
}
