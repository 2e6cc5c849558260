// Package app wires the database, stores, and services together so the
// TUI and the CLI subcommands share one construction path.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"jornada/internal/board"
	"jornada/internal/config"
	"jornada/internal/database"
	"jornada/internal/dataio"
	"jornada/internal/dragdrop"
	"jornada/internal/services/issue"
	"jornada/internal/services/journey"
	"jornada/internal/services/release"
	"jornada/internal/services/undo"
)

// App holds every long-lived object of a running instance.
type App struct {
	DB       *sql.DB
	Config   *config.Config
	Undo     *undo.Service
	Journeys *journey.Service
	Issues   *issue.Service
	Releases *release.Service
	Drops    *dragdrop.Handler
	Gate     *board.ReadyGate
	DataIO   *dataio.Service
}

// New opens the default database and wires everything up, including
// the first load (and seed, when the tables are empty).
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var db *sql.DB
	if cfg.DBPath != "" {
		db, err = database.Open(ctx, cfg.DBPath)
	} else {
		db, err = database.InitDB(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app, err := NewWithDB(ctx, db, cfg)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}
	return app, nil
}

// NewWithDB wires the stores over an existing database connection.
// Tests use this with an in-memory database.
func NewWithDB(ctx context.Context, db *sql.DB, cfg *config.Config) (*App, error) {
	undoSvc := undo.NewService()
	undoSvc.SetDefaultDuration(cfg.UndoDuration())
	journeys := journey.NewService(database.NewJourneyTable(db))
	issues := issue.NewService(database.NewIssueTable(db), undoSvc, journeys)
	releases := release.NewService(database.NewReleaseTable(db), undoSvc, issues)

	if err := journeys.InitFromDB(ctx); err != nil {
		return nil, err
	}
	if err := issues.InitFromDB(ctx); err != nil {
		return nil, err
	}
	if err := releases.InitFromDB(ctx); err != nil {
		return nil, err
	}

	return &App{
		DB:       db,
		Config:   cfg,
		Undo:     undoSvc,
		Journeys: journeys,
		Issues:   issues,
		Releases: releases,
		Drops:    dragdrop.NewHandler(issues),
		Gate:     board.NewReadyGate(len(journeys.Journeys())),
		DataIO:   dataio.NewService(journeys, issues, releases),
	}, nil
}

// Close releases the database connection.
func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
