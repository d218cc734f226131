// Command seed loads police departments, crime types and teams from a YAML
// dataset. Every record is upserted by name, so the command can be re-run.
//
// Flags:
//
//	--file     path to the dataset (default: $SEEDER_DATA_PATH or ./seed.yaml)
//	--phase    comma-separated list of phases to run (default: all)
//	--dry-run  validate the dataset without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/crimetype"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/department"
	"github.com/heartmarshall/crimewatch-backend/internal/adapter/postgres/team"
	"github.com/heartmarshall/crimewatch-backend/internal/app"
	"github.com/heartmarshall/crimewatch-backend/internal/app/seeder"
	"github.com/heartmarshall/crimewatch-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the dataset YAML file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run: "+strings.Join(seeder.Phases(), ","))
	dryRunFlag := flag.Bool("dry-run", false, "validate the dataset without writing to DB")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig()
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override env.
	if *fileFlag != "" {
		seederCfg.DataPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	dataset, err := seeder.LoadDataset(seederCfg.DataPath)
	if err != nil {
		logger.Error("load dataset", slog.String("path", seederCfg.DataPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repos := seeder.Repos{
		Departments: department.New(pool),
		CrimeTypes:  crimetype.New(pool),
		Teams:       team.New(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, dataset, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		pool.Close()
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
