package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/fortuna/rinkside/internal/etl"
)

// ErrRolledBack marks a bulk-insert failure that was rolled back. The
// destination table exists and is empty; the run ends normally.
var ErrRolledBack = errors.New("bulk insert rolled back")

// Column describes one destination column.
type Column struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
}

// Table describes a destination table schema.
type Table struct {
	Name    string
	Columns []Column
}

// CreateStatement renders the CREATE TABLE DDL for the schema. Identifiers
// are quoted: some column names ("offset") collide with reserved words and
// the camelCase names must not fold to lowercase.
func (t Table) CreateStatement() string {
	defs := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		def := pq.QuoteIdentifier(col.Name) + " " + col.Type
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if !col.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", pq.QuoteIdentifier(t.Name), strings.Join(defs, ", "))
}

// InsertStatement renders the parameterized single-row INSERT for the schema.
func (t Table) InsertStatement() string {
	names := make([]string, len(t.Columns))
	params := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = pq.QuoteIdentifier(col.Name)
		params[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(t.Name), strings.Join(names, ", "), strings.Join(params, ", "))
}

// ReplaceTable performs the full-refresh load: drop the table if it exists,
// recreate it, then insert every record inside one transaction.
//
// Failure mode to be aware of: the drop and create commit before the insert
// transaction opens, so a rolled-back insert leaves the table existing and
// empty, not at its pre-run contents. Drop/create failures are fatal; a
// rolled-back insert is reported wrapped in ErrRolledBack and is not.
func (db *Database) ReplaceTable(ctx context.Context, t Table, records []etl.Record) error {
	if _, err := db.conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+pq.QuoteIdentifier(t.Name)); err != nil {
		return etl.Wrap(err, etl.KindLoad, "dropping table %s", t.Name)
	}
	if _, err := db.conn.ExecContext(ctx, t.CreateStatement()); err != nil {
		return etl.Wrap(err, etl.KindLoad, "creating table %s", t.Name)
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return etl.Wrap(err, etl.KindLoad, "beginning insert transaction for %s", t.Name)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, t.InsertStatement())
	if err != nil {
		return etl.Wrap(fmt.Errorf("%w: %v", ErrRolledBack, err), etl.KindLoad, "preparing insert for %s", t.Name)
	}
	defer stmt.Close()

	for i, rec := range records {
		if len(rec) != len(t.Columns) {
			return etl.Wrap(fmt.Errorf("%w: record %d has %d values, want %d", ErrRolledBack, i, len(rec), len(t.Columns)),
				etl.KindLoad, "inserting into %s", t.Name)
		}
		if _, err := stmt.ExecContext(ctx, rec...); err != nil {
			return etl.Wrap(fmt.Errorf("%w: record %d: %v", ErrRolledBack, i, err), etl.KindLoad, "inserting into %s", t.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return etl.Wrap(fmt.Errorf("%w: %v", ErrRolledBack, err), etl.KindLoad, "committing insert into %s", t.Name)
	}
	return nil
}
