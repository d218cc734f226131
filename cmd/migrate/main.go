// Command migrate applies or rolls back database migrations.
//
// Usage:
//
//	migrate up
//	migrate down
//	migrate status
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/migrations"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|status")
		os.Exit(2)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(dsn, migrations.FS)
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}
	defer migrator.Close()

	if err := run(ctx, migrator, os.Args[1]); err != nil {
		migrator.Close()
		log.Fatal(err)
	}
}

func run(ctx context.Context, m *postgres.Migrator, command string) error {
	switch command {
	case "up", "down":
		apply := m.Up
		if command == "down" {
			apply = m.Down
		}
		results, err := apply(ctx)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("Nothing to do.")
		}
		for _, r := range results {
			fmt.Printf("%s %d %s (%s)\n", command, r.Version, r.Source, r.Duration)
		}
		return nil

	case "status":
		version, lines, err := m.Status(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Current version: %d\n", version)
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
}
