package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/praxis/internal/cli"
	"github.com/alexanderramin/praxis/internal/config"
	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/planner"
	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/alexanderramin/praxis/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		level, err := cfg.SlogLevel()
		if err != nil {
			return err
		}
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, level))
	}

	catalog, err := planner.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("loading plan catalog: %w", err)
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	exerciseRepo := repository.NewSQLiteExerciseRepo(database)
	importRepo := repository.NewSQLiteLibraryImportRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	librarySvc := service.NewLibraryService(exerciseRepo, importRepo, uow, observers...)
	planSvc := service.NewPlanService(planner.NewBuilder(catalog), librarySvc, observers...)

	app := &cli.App{
		Plans:   planSvc,
		Library: librarySvc,
		Exports: service.NewExportService(planSvc, observers...),
		Defaults: cli.Defaults{
			Persona:     cfg.Persona,
			LibraryPath: cfg.LibraryPath,
		},
	}

	// Prompts need a terminal on both ends.
	app.IsInteractive = func() bool {
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// SilenceErrors leaves error printing to main.
	rootCmd := cli.NewRootCmd(app)
	rootCmd.SilenceErrors = true
	return rootCmd.ExecuteContext(ctx)
}
