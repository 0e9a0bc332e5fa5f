package database

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// CGO-free sqlite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

var memSeq atomic.Int64

// Connect opens the store. A postgres:// DSN gets a real PostgreSQL
// connection; anything else is treated as a SQLite path. The default
// deployment runs on ":memory:" since the portal serves a demo dataset
// and is not expected to survive restarts.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	// database/sql opens pooled connections lazily, and a plain
	// ":memory:" DSN hands every new connection its own empty
	// database. A named shared-cache DSN keeps the whole pool on one
	// database; the name is unique per Connect call so separate
	// stores never alias each other.
	if dsn == ":memory:" {
		dsn = fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", memSeq.Add(1))
	}

	log.Println("Using SQLite store:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
