package main

import (
	"database/sql"
	"os"

	_ "home_patterns/docs"
	"home_patterns/internal/config"
	"home_patterns/internal/logger"
	"home_patterns/internal/repository"
	"home_patterns/internal/repository/db"
)

// @title        Home Patterns API
// @version      1.0
// @description  Read-only status API for the home remote: devices, remote histories and the event journal.
// @BasePath     /
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	repos *repository.Repository
	db    *sql.DB
}

// newApp loads configuration, builds the logger, and opens the journal.
func newApp(cfgPath string) (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	log := logger.Get(cfg.Log.Level)

	a := &app{cfg: cfg, log: log}
	if err := a.start(); err != nil {
		return nil, err
	}
	return a, nil
}

// start opens the journal. On failure the log is flushed before returning,
// since close will never run.
func (a *app) start() error {
	if err := a.openJournal(); err != nil {
		a.log.Errorw("journal_open_failed", "err", err, "path", a.cfg.DB.Path)
		_ = a.log.Sync()
		return err
	}
	return nil
}

// openJournal uses SQLite when db.path is set and memory otherwise.
func (a *app) openJournal() error {
	if a.cfg.DB.Path == "" {
		a.log.Debugw("journal_in_memory")
		a.repos = repository.NewMemoryRepository()
		return nil
	}
	conn, err := db.InitDB(a.cfg.DB.Path)
	if err != nil {
		return err
	}
	a.log.Debugw("journal_sqlite", "path", a.cfg.DB.Path)
	a.db = conn
	a.repos = repository.NewRepository(conn)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Errorw("failed to close sqlite", "err", err)
		}
	}
	_ = a.log.Sync()
}
