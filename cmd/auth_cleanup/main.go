package main

import (
	"context"
	"log"
	"os"

	"nextassist/internal/database"
	"nextassist/internal/repository"
)

// Sweeps expired and long-revoked sessions out of the store. Meant to
// run from cron against the same DATABASE_URL as cmd/api; pointless
// against the default in-memory store.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)
	removed, err := sessions.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("auth cleanup completed: sessions=%d", removed)
}
