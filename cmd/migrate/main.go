package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"lingodeck/internal/config"
	"lingodeck/internal/migration"
	"lingodeck/internal/repository/postgres"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const usage = `Usage: migrate [flags] <command>

Commands:
  up               apply all pending migrations
  down             roll back the latest migration
  version          print the applied migration version
  generate <name>  create a new numbered up/down migration pair

Flags:
`

func main() {
	configPath := flag.String("config", "", "path to the migration config (default ./migrate.yaml)")
	yes := flag.Bool("yes", false, "confirm destructive commands when strict mode is on")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadMigration(*configPath)
	if err != nil {
		logger.Fatal("Failed to load migration config", zap.Error(err))
	}

	command := flag.Arg(0)

	if command == "generate" {
		if flag.NArg() < 2 {
			logger.Fatal("generate needs a migration name")
		}
		paths, err := migration.Generate(cfg.Out, flag.Arg(1))
		if err != nil {
			logger.Fatal("Failed to generate migration", zap.Error(err))
		}
		for _, p := range paths {
			logger.Info("Created migration file", zap.String("path", p))
		}
		return
	}

	if command == "down" && cfg.Strict && !*yes {
		logger.Fatal("Strict mode is on: rerun with -yes to roll back")
	}

	if err := run(cfg, command, logger); err != nil {
		logger.Fatal("Migration command failed", zap.String("command", command), zap.Error(err))
	}
}

func run(cfg *config.MigrationConfig, command string, logger *zap.Logger) (err error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}

	db, err := postgres.Connect(dsn, postgres.ConnectOptions{MaxRetries: 3, RetryDelay: time.Second}, logger)
	if err != nil {
		return err
	}

	m, err := migration.New(db, migration.Options{
		Dir:     cfg.Out,
		Schema:  cfg.Schema,
		Verbose: cfg.Verbose,
	}, logger)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		err = multierr.Append(err, m.Close())
	}()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		logger.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
