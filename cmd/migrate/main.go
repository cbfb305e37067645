// Command migrate applies pending SQL migrations and exits. Deployments that
// do not set AUTO_MIGRATE on the server run this as a release step instead.
package main

import (
	"database/sql"
	"log"

	"backoffice/internal/config"
	"backoffice/internal/database"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)
	if err := runner.WaitForDatabase(); err != nil {
		log.Fatalf("database never became ready: %v", err)
	}
	if err := runner.RunMigrations(); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}
}
