package store

import (
	"context"

	"github.com/fortuna/rinkside/internal/etl"
)

// TeamIDs reads the current team ids from the loaded teams table. The
// players pipeline depends on the API-teams dataset having been loaded
// first; that precondition is checked here explicitly so a missing or
// empty table fails fast before any roster traffic.
func (db *Database) TeamIDs(ctx context.Context) ([]int, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'teams' AND column_name = 'team_id')").
		Scan(&exists)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindConfig, "checking teams table")
	}
	if !exists {
		return nil, etl.New(etl.KindConfig, "teams table with team_id not found; load the teams-api dataset first")
	}

	rows, err := db.conn.QueryContext(ctx, "SELECT team_id FROM teams")
	if err != nil {
		return nil, etl.Wrap(err, etl.KindConfig, "querying team ids")
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, etl.Wrap(err, etl.KindConfig, "scanning team id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, etl.Wrap(err, etl.KindConfig, "reading team ids")
	}

	if len(ids) == 0 {
		return nil, etl.New(etl.KindConfig, "teams table is empty; load the teams-api dataset first")
	}
	return ids, nil
}
