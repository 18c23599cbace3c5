package main

import (
	"fmt"
	"os"

	"github.com/mrsinham/hilom/internal/account"
	"github.com/mrsinham/hilom/internal/audit"
	"github.com/mrsinham/hilom/internal/config"
	"github.com/mrsinham/hilom/internal/logging"
	"github.com/mrsinham/hilom/internal/store"
	"github.com/rs/zerolog"
)

// app holds what every command shares. Logs go to a file in the data
// directory so they never mix with command output or the wizard screen.
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	logFile *os.File
	history *audit.Log

	// nil without HILOM_DATABASE_URL
	db      *store.SQLClient
	guarded *store.Guarded
}

func openApp(configFile string) (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.Path(config.LogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logging.Init(cfg.IsDev(), cfg.LogLevel, logFile),
		logFile: logFile,
		history: audit.New(cfg.Path(config.HistoryFile)),
	}

	if cfg.HasDatabase() {
		db, err := store.Open(cfg.DatabaseURL, cfg.DBConnectTimeout)
		if err != nil {
			// Same as an unreachable database: bookings go to history only.
			a.logger.Warn().Err(err).Msg("database disabled")
		} else {
			a.db = db
			a.guarded = store.NewGuarded("appointments", db, logging.Component("store"))
		}
	}

	return a, nil
}

func (a *app) sink() *store.Sink {
	return store.NewSink(a.guarded, a.history, logging.Component("sink"))
}

func (a *app) accounts() *account.Store {
	return account.New(a.cfg.Path(config.UsersFile), account.WithAdmins(a.cfg.AdminEmails))
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing database")
		}
	}
	a.logFile.Close()
}
