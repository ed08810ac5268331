package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rinkside/internal/etl"
)

const teamListing = `{
	"teams": [
		{
			"id": 6,
			"name": "Boston Bruins",
			"abbreviation": "BOS",
			"teamName": "Bruins",
			"locationName": "Boston",
			"firstYearOfPlay": "1924",
			"officialSiteUrl": "http://www.bostonbruins.com/",
			"division": {"name": "Atlantic"},
			"conference": {"name": "Eastern"},
			"venue": {
				"name": "TD Garden",
				"city": "Boston",
				"timeZone": {"tz": "EST", "offset": -5}
			}
		},
		{
			"id": 20,
			"name": "Calgary Flames",
			"abbreviation": "CGY",
			"teamName": "Flames",
			"locationName": "Calgary",
			"firstYearOfPlay": "1980",
			"officialSiteUrl": "http://www.calgaryflames.com/",
			"division": {"name": "Pacific"},
			"conference": {"name": "Western"},
			"venue": {
				"name": "Scotiabank Saddledome",
				"city": "Calgary",
				"timeZone": {"tz": "MST", "offset": -7}
			}
		}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestTeams(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/teams", r.URL.Path)
		w.Write([]byte(teamListing))
	}))

	teams, err := client.Teams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, Team{
		ID:           6,
		Franchise:    "Boston Bruins",
		Abbreviation: "BOS",
		Division:     "Atlantic",
		Conference:   "Eastern",
		City:         "Boston",
		Name:         "Bruins",
		Location:     "Boston",
		Venue:        "TD Garden",
		TZ:           "EST",
		Offset:       -5,
		URL:          "http://www.bostonbruins.com/",
		FirstYear:    1924,
	}, teams[0])
	assert.Equal(t, 20, teams[1].ID)
	assert.Equal(t, -7, teams[1].Offset)
}

func TestTeamsEmptyListing(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams": []}`))
	}))

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}

func TestTeamsMissingAbbreviation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"teams": [{"id": 6, "name": "Boston Bruins", "firstYearOfPlay": "1924"}]}`))
	}))

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}

func TestTeamsHTTPFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}

func TestTeamsMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	_, err := client.Teams(context.Background())
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}
