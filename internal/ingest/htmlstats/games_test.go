package htmlstats

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortuna/rinkside/internal/etl"
)

func gameRow(date, visitor, visitorGoals, home, homeGoals, overtime, attendance, duration string) string {
	return fmt.Sprintf(`<tr>
		<th data-stat="date_game">%s</th>
		<td data-stat="visitor_team_name">%s</td>
		<td data-stat="visitor_goals">%s</td>
		<td data-stat="home_team_name">%s</td>
		<td data-stat="home_goals">%s</td>
		<td data-stat="overtimes">%s</td>
		<td data-stat="attendance">%s</td>
		<td data-stat="game_duration">%s</td>
	</tr>`, date, visitor, visitorGoals, home, homeGoals, overtime, attendance, duration)
}

func gamesPage(listings ...string) string {
	page := "<html><body>"
	for _, rows := range listings {
		page += "<table><tbody>" + rows + "</tbody></table>"
	}
	return page + "</body></html>"
}

func TestExtractGames(t *testing.T) {
	doc, err := ParseHTML(gamesPage(
		gameRow("2023-10-10", "Team A", "2", "Team B", "3", "OT", "12,345", "65:30"),
	))
	require.NoError(t, err)

	games, err := ExtractGames(doc)
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	assert.Equal(t, time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC), g.Date)
	assert.Equal(t, "Team A", g.Visitor)
	assert.Equal(t, 2, g.VisitorGoals)
	assert.Equal(t, "Team B", g.Home)
	assert.Equal(t, 3, g.HomeGoals)
	assert.Equal(t, "OT", g.Overtime)
	assert.Equal(t, 12345, g.Attendance)
	assert.Equal(t, 65, g.Duration)
}

func TestExtractGamesStopsAtUnplayedRow(t *testing.T) {
	// Games are chronological; an empty visitor-goals field marks the first
	// unplayed game, and nothing after it may appear, played-looking or not.
	doc, err := ParseHTML(gamesPage(
		gameRow("2023-10-10", "Team A", "2", "Team B", "3", "", "17,850", "60:00")+
			gameRow("2023-10-11", "Team C", "4", "Team D", "1", "", "18,000", "58:41")+
			gameRow("2023-10-12", "Team E", "", "Team F", "", "", "", "")+
			gameRow("2023-10-13", "Team G", "5", "Team H", "2", "SO", "19,000", "72:11"),
	))
	require.NoError(t, err)

	games, err := ExtractGames(doc)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Team A", games[0].Visitor)
	assert.Equal(t, "Team C", games[1].Visitor)
}

func TestExtractGamesTerminationIsPerListing(t *testing.T) {
	doc, err := ParseHTML(gamesPage(
		gameRow("2023-10-10", "Team A", "2", "Team B", "3", "", "17,850", "60:00")+
			gameRow("2023-10-12", "Team E", "", "Team F", "", "", "", ""),
		gameRow("2023-11-01", "Team G", "1", "Team H", "0", "", "15,222", "59:48"),
	))
	require.NoError(t, err)

	games, err := ExtractGames(doc)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Team G", games[1].Visitor)
}

func TestExtractGamesMissingCell(t *testing.T) {
	doc, err := ParseHTML(gamesPage(`<tr><th data-stat="date_game">2023-10-10</th></tr>`))
	require.NoError(t, err)

	_, err = ExtractGames(doc)
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}

func TestExtractGamesMalformedAttendance(t *testing.T) {
	doc, err := ParseHTML(gamesPage(
		gameRow("2023-10-10", "Team A", "2", "Team B", "3", "", "n/a", "60:00"),
	))
	require.NoError(t, err)

	_, err = ExtractGames(doc)
	require.Error(t, err)
	assert.True(t, etl.IsKind(err, etl.KindSource))
}
