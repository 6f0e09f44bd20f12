package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/crewshift/internal/cli"
	"github.com/alexanderramin/crewshift/internal/config"
	"github.com/alexanderramin/crewshift/internal/db"
	"github.com/alexanderramin/crewshift/internal/logger"
	"github.com/alexanderramin/crewshift/internal/repository"
	"github.com/alexanderramin/crewshift/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts []config.LoaderOption
	if path := configFlag(os.Args[1:]); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	opts = append(opts, config.WithDotEnv(".env"))

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(
		logger.WithLevel(cfg.Log.Level),
		logger.WithFormat(cfg.Log.Format),
		logger.WithFile(cfg.Log.File),
	)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(log)
	log.Debug("config loaded", "file", cfg.ConfigFileUsed, "db", cfg.DBPath, "atomic_shift", cfg.Shift.Atomic)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	projectRepo := repository.NewSQLiteProjectRepo(database)
	categoryRepo := repository.NewSQLiteCategoryRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	manpowerRepo := repository.NewSQLiteManpowerRepo(database)

	// Shifts run through the unit of work; atomic mode rolls back a failed
	// shift, auto-commit mode keeps whatever was written.
	uow := db.NewUnitOfWork(database, cfg.Shift.Atomic)
	shifter := service.NewStartDateService(uow, service.SQLiteStoreBinder, cfg.Calendar,
		service.NewLogUseCaseObserver(log))

	app := &cli.App{
		Projects:    service.NewProjectService(projectRepo),
		Categories:  service.NewCategoryService(categoryRepo),
		Activities:  service.NewActivityService(activityRepo),
		Manpower:    service.NewManpowerService(manpowerRepo, activityRepo),
		Import:      service.NewImportService(db.NewSQLiteUnitOfWork(database), database),
		Shifter:     shifter,
		Calendar:    cfg.Calendar,
		Logger:      log,
		Listen:      cfg.Listen,
		CORSOrigins: cfg.CORSOrigins,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// configFlag pulls --config out of args before cobra runs, since the
// services cobra dispatches to are built from the loaded config.
func configFlag(args []string) string {
	fs := pflag.NewFlagSet("crewshift", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}
