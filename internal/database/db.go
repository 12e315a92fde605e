package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// schema creates every table the service needs.  Statements are
// idempotent; there is no migration mechanism at this scale.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	salt          TEXT NOT NULL,
	role          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS donors (
	donor_id     TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	contact_info TEXT
);

CREATE TABLE IF NOT EXISTS categories (
	category_id INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	subcategory TEXT
);

CREATE TABLE IF NOT EXISTS items (
	item_id     TEXT PRIMARY KEY,
	category_id INTEGER REFERENCES categories(category_id),
	name        TEXT NOT NULL,
	description TEXT,
	status      TEXT NOT NULL DEFAULT 'available',
	location    TEXT
);

CREATE TABLE IF NOT EXISTS orders (
	order_id        TEXT PRIMARY KEY,
	client_username TEXT NOT NULL REFERENCES users(username),
	status          TEXT NOT NULL DEFAULT 'in_progress',
	created_at      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	order_id TEXT NOT NULL REFERENCES orders(order_id),
	item_id  TEXT NOT NULL REFERENCES items(item_id),
	PRIMARY KEY (order_id, item_id)
);

CREATE TABLE IF NOT EXISTS donations (
	donation_id    TEXT PRIMARY KEY,
	donor_id       TEXT NOT NULL REFERENCES donors(donor_id),
	staff_username TEXT NOT NULL REFERENCES users(username),
	donation_date  INTEGER NOT NULL
);
`

// Open opens (or creates) the SQLite store, verifies the connection and
// ensures the schema exists.  Pass ":memory:" for an ephemeral store.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Single-writer store: one connection serializes all writers and
	// keeps an in-memory database on a single handle.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
