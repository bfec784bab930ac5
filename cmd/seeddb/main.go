// Command seeddb seeds the demo database without destroying existing data.
// Tables are created if absent, demo users are upserted by their unique
// username/email pair, and the demo trade batch is appended. Re-running
// keeps the user count stable but appends the trades again; use initdb for
// a clean rebuild.
//
// Usage:
//
//	seeddb [db-path]
//
// The path defaults to trademindiq.db in the working directory. Exits 0 on
// success and 1 on failure; the log stream is the status report.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/trademindiq/trading-account/internal/infrastructure/db/sqlite"
	"github.com/trademindiq/trading-account/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()
	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	path := sqlite.DefaultPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store := sqlite.NewStore(path)
	seeder := sqlite.NewSeeder(store, log)

	sum, err := seeder.SeedPreserving(context.Background())
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("database seeding failed")
		return 1
	}

	sqlite.LogSummary(log, sum)
	return 0
}
