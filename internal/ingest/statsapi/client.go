// Package statsapi extracts team and player records from the league's JSON
// REST API.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fortuna/rinkside/internal/cache"
	"github.com/fortuna/rinkside/internal/etl"
)

// Client issues blocking, sequential requests against the stats API. No
// batching, no fan-out: one round-trip per roster and per player profile.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.ProfileCache
}

// NewClient creates a client for the given API base URL with an explicit
// request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// WithProfileCache attaches an optional cache for player profile payloads.
func (c *Client) WithProfileCache(pc *cache.ProfileCache) *Client {
	c.cache = pc
	return c
}

// get fetches a path relative to the base URL and returns the raw body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "building request for %s", url)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, etl.New(etl.KindSource, "fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, etl.Wrap(err, etl.KindSource, "reading %s", url)
	}
	return body, nil
}

// getJSON fetches a path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return etl.Wrap(err, etl.KindSource, "decoding %s", c.baseURL+path)
	}
	return nil
}

func teamRosterPath(teamID int) string {
	return fmt.Sprintf("/teams/%d/roster", teamID)
}

func personPath(playerID int) string {
	return fmt.Sprintf("/people/%d", playerID)
}
