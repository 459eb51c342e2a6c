package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"climate-server/internal/config"
	"climate-server/internal/logging"
	"climate-server/internal/migrate"
)

const appName = "climatectl"

var version = "dev"

const usage = `usage: %s <command> [flags]
  migrate                                       apply pending schema migrations
  load -stations FILE -measurements FILE        replace table contents with CSV exports
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf(usage, appName)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.SetDefault(logging.New(cfg, version, appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "migrate":
		return withDB(ctx, cfg, func(conn dbConn) error {
			if err := migrate.Run(ctx, conn.db, conn.dialect); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			_, err := fmt.Fprintln(stdout, "migrations applied")
			return err
		})
	case "load":
		fs := flag.NewFlagSet("load", flag.ContinueOnError)
		stationsPath := fs.String("stations", "", "station CSV export")
		measurementsPath := fs.String("measurements", "", "measurement CSV export")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *stationsPath == "" || *measurementsPath == "" {
			return fmt.Errorf("load: -stations and -measurements are required")
		}
		return withDB(ctx, cfg, func(conn dbConn) error {
			return load(ctx, conn, *stationsPath, *measurementsPath, stdout)
		})
	default:
		return fmt.Errorf("unknown command: %s\n"+usage, args[0], appName)
	}
}
