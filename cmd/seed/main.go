package main

import (
	"flag"
	"log"

	"nextassist/internal/database"
	"nextassist/internal/fixtures"
)

func main() {
	dsn := flag.String("dsn", "nextassist.db", "database DSN (sqlite file or postgres:// URL)")
	flag.Parse()

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(fixtures.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM lessons")
	db.Exec("DELETE FROM learning_modules")
	db.Exec("DELETE FROM transactions")
	db.Exec("DELETE FROM assistant_charges")
	db.Exec("DELETE FROM balances")
	db.Exec("DELETE FROM courses")
	db.Exec("DELETE FROM available_skills")
	db.Exec("DELETE FROM skills")
	db.Exec("DELETE FROM work_experiences")
	db.Exec("DELETE FROM daily_reports")
	db.Exec("DELETE FROM comments")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM users")

	log.Println("Loading demo dataset...")
	if err := fixtures.Load(db); err != nil {
		log.Fatal("Seed failed:", err)
	}

	log.Printf("Done. Demo accounts use the password %q.", fixtures.DemoPassword)
}
