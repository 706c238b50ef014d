package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

var db *sql.DB

// Fixed-width UTC text: lexical order of created_at equals time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// InitDB opens (or creates) the sqlite file at path and makes sure the schema exists.
func InitDB(path string) error {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("InitDB(): failed to open database: %w", err)
	}
	if err = conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("InitDB(): failed to connect to database: %w", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL,
			"created_at" TEXT NOT NULL
	);`
	createGenerationsTable := `
	CREATE TABLE IF NOT EXISTS generations (
			"id" TEXT PRIMARY KEY,
			"user_id" INTEGER NOT NULL,
			"row_count" INTEGER NOT NULL,
			"seed" INTEGER NOT NULL,
			"filename" TEXT NOT NULL,
			"file_path" TEXT NOT NULL,
			"size_bytes" INTEGER NOT NULL,
			"created_at" TEXT NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
	);`
	createGenerationsIndex := `
	CREATE INDEX IF NOT EXISTS generations_user_created
			ON generations (user_id, created_at DESC);`

	for _, stmt := range []string{createUsersTable, createGenerationsTable, createGenerationsIndex} {
		if _, err := conn.Exec(stmt); err != nil {
			conn.Close()
			return fmt.Errorf("InitDB(): failed to create schema: %w", err)
		}
	}

	if db != nil {
		db.Close()
	}
	db = conn
	log.Println("InitDB(): Init and create table successfully!")
	return nil
}

// Close releases the database handle.
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		log.Printf("[WARN] storage: unparsable timestamp %q: %v", s, err)
		return time.Time{}
	}
	return t
}
