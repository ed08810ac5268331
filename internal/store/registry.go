package store

import (
	"context"

	"github.com/fortuna/rinkside/internal/etl"
)

// SourceURL resolves the source URL for a dataset purpose ("games", "teams")
// from the urls registry table. The registry must yield exactly one row;
// zero or multiple matches means the run cannot know which source to trust.
func (db *Database) SourceURL(ctx context.Context, purpose string) (string, error) {
	rows, err := db.conn.QueryContext(ctx, "SELECT url FROM urls WHERE purpose = $1", purpose)
	if err != nil {
		return "", etl.Wrap(err, etl.KindConfig, "querying url registry for %q", purpose)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return "", etl.Wrap(err, etl.KindConfig, "scanning url registry row")
		}
		urls = append(urls, u)
	}
	if err := rows.Err(); err != nil {
		return "", etl.Wrap(err, etl.KindConfig, "reading url registry")
	}

	if len(urls) != 1 {
		return "", etl.New(etl.KindConfig, "url registry has %d entries for %q, want exactly 1", len(urls), purpose)
	}
	return urls[0], nil
}
