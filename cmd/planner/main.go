package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/planner/internal/cli"
	"github.com/alexanderramin/planner/internal/config"
	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/repository"
	"github.com/alexanderramin/planner/internal/series"
	"github.com/alexanderramin/planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load ~/.planner/config.toml, or $PLANNER_CONFIG, creating it on first launch.
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid config %s: %w", cfgPath, errors.Join(errs...))
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	eventRepo := repository.NewSQLiteEventRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	season := cfg.CalendarSeason()
	ctx := context.Background()
	if _, err := service.NewSeedService(uow, observer).Seed(ctx); err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	app := &cli.App{
		Events:          service.NewEventService(eventRepo, uow, series.NewIDGenerator(nil), cfg.EventType(), observer),
		Goals:           service.NewGoalService(goalRepo, recordRepo, uow, observer),
		Transfer:        service.NewTransferService(eventRepo, goalRepo, recordRepo, uow, season.Name, nil, observer),
		Status:          service.NewStatusService(season, eventRepo, goalRepo, recordRepo),
		Season:          season,
		DefaultInterval: cfg.DefaultCustomInterval,
	}

	// Prompts are only offered on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
