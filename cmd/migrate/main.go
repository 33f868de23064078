package main

import (
	"context"
	"fmt"

	"github.com/intellichat/backend/internal/config"
	"github.com/intellichat/backend/internal/repository/postgres"
	"github.com/intellichat/backend/internal/repository/sqlite"
	"github.com/joho/godotenv"
)

// Applies the embedded schema migrations for the configured driver.
// NewDB runs the same migrations at server start, so this exists for
// provisioning a database ahead of a deploy.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	switch cfg.Database.Driver {
	case "postgres":
		fmt.Printf("Migrating postgres database at %s:%d...\n", cfg.Database.Host, cfg.Database.Port)
		if err := postgres.Migrate(cfg.Database.DSN()); err != nil {
			panic(fmt.Sprintf("Migration failed: %v", err))
		}

	default:
		fmt.Printf("Migrating sqlite database at %s...\n", cfg.Database.Path)
		db, err := sqlite.NewDB(context.Background(), cfg.Database.Path)
		if err != nil {
			panic(fmt.Sprintf("Migration failed: %v", err))
		}
		defer db.Close()
	}

	fmt.Println("Migration complete")
}
