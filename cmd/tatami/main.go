package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/tatamilog/tatami/internal/cli"
	"github.com/tatamilog/tatami/internal/db"
	"github.com/tatamilog/tatami/internal/repository"
	"github.com/tatamilog/tatami/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tatami/tatami.db
	dbPath := os.Getenv("TATAMI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tatami", "tatami.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	activityRepo := repository.NewSQLiteActivityRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	reflectionRepo := repository.NewSQLiteReflectionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Dashboard:   service.NewDashboardService(activityRepo, scheduleRepo, goalRepo, reflectionRepo),
		Activities:  service.NewActivityService(activityRepo),
		Schedule:    service.NewScheduleService(scheduleRepo, uow),
		Goals:       service.NewGoalService(goalRepo, activityRepo, uow),
		Reflections: service.NewReflectionService(reflectionRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
