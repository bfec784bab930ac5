package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Column names and types are part of the external contract: tooling inspects
// the database file directly, so they must not drift.
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	email TEXT UNIQUE NOT NULL,
	hashed_password TEXT NOT NULL,
	first_name TEXT,
	last_name TEXT,
	role TEXT DEFAULT 'trader',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

const createTradesTable = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	profit_loss REAL DEFAULT 0,
	status TEXT DEFAULT 'open',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users (id)
)`

// CreateSchema ensures both tables exist. Safe to run repeatedly.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{createUsersTable, createTradesTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
