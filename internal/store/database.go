// Package store owns the single database session a run holds: opening it,
// resolving source URLs from the registry table, and the schema-replace
// loader that writes the destination tables.
package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/fortuna/rinkside/internal/etl"
)

// Database wraps the run's PostgreSQL session. One session per run, held
// until process exit; no pooling.
type Database struct {
	conn *sql.DB
}

// Open establishes and verifies the session. Any failure here is a config
// error and fatal to the run.
func Open(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindConfig, "opening database")
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, etl.Wrap(err, etl.KindConfig, "connecting to database")
	}

	return &Database{conn: db}, nil
}

// Close closes the session.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB.
func (db *Database) DB() *sql.DB {
	return db.conn
}
