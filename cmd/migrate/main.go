package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"crudapi/internal/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("migrate", flag.ContinueOnError)
	var (
		command = flags.String("command", "up", "Migration command: up, down, status, version")
		driver  = flags.String("driver", "", "Storage driver (sqlite or postgres); defaults to STORAGE_DRIVER")
		dsn     = flags.String("dsn", "", "Database location; defaults to DB_DSN")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := target(*driver, *dsn)
	if err != nil {
		return err
	}
	db, dialect, err := storage.OpenForMigration(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := storage.MigrationProvider(db, dialect)
	if err != nil {
		return err
	}

	switch *command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		for _, r := range results {
			fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration)
		}
		fmt.Fprintf(out, "%d migrations applied\n", len(results))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
		fmt.Fprintf(out, "rolled back %s\n", r.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		for _, s := range statuses {
			applied := "Pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%-20s %s\n", applied, s.Source.Path)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "version %d\n", v)
	default:
		return fmt.Errorf("unknown command %q: use up, down, status or version", *command)
	}
	return nil
}
