package htmlstats

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/rinkside/internal/normalize"
)

// Game is one played game row extracted from the schedule listing.
type Game struct {
	Date         time.Time
	Visitor      string
	VisitorGoals int
	Home         string
	HomeGoals    int
	Overtime     string
	Attendance   int
	Duration     int
}

// ExtractGames parses every game table body in the document. Rows are in
// chronological order; a row with an empty visitor-goals field marks the
// first unplayed game, so extraction stops for that listing there. That is
// a hard break, not a row filter: nothing after the sentinel row is read,
// whatever it contains.
func ExtractGames(doc *goquery.Document) ([]Game, error) {
	var games []Game
	var extractErr error

	doc.Find("tbody").Each(func(_ int, listing *goquery.Selection) {
		if extractErr != nil {
			return
		}
		listing.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			game, played, err := extractGameRow(row)
			if err != nil {
				extractErr = err
				return false
			}
			if !played {
				return false
			}
			games = append(games, game)
			return true
		})
	})

	if extractErr != nil {
		return nil, extractErr
	}
	return games, nil
}

// extractGameRow parses one schedule row. played is false for the
// unplayed-game sentinel (empty visitor goals).
func extractGameRow(row *goquery.Selection) (Game, bool, error) {
	rawDate, err := cellText(row, `th[data-stat="date_game"]`)
	if err != nil {
		return Game{}, false, err
	}
	date, err := normalize.Date(rawDate)
	if err != nil {
		return Game{}, false, err
	}

	visitor, err := cellText(row, `td[data-stat="visitor_team_name"]`)
	if err != nil {
		return Game{}, false, err
	}

	rawVisitorGoals, err := rawCellText(row, `td[data-stat="visitor_goals"]`)
	if err != nil {
		return Game{}, false, err
	}
	if rawVisitorGoals == "" {
		return Game{}, false, nil
	}
	visitorGoals, err := normalize.NonNegativeInt(rawVisitorGoals)
	if err != nil {
		return Game{}, false, err
	}

	home, err := cellText(row, `td[data-stat="home_team_name"]`)
	if err != nil {
		return Game{}, false, err
	}
	rawHomeGoals, err := cellText(row, `td[data-stat="home_goals"]`)
	if err != nil {
		return Game{}, false, err
	}
	homeGoals, err := normalize.NonNegativeInt(rawHomeGoals)
	if err != nil {
		return Game{}, false, err
	}

	overtime, err := cellText(row, `td[data-stat="overtimes"]`)
	if err != nil {
		return Game{}, false, err
	}

	rawAttendance, err := cellText(row, `td[data-stat="attendance"]`)
	if err != nil {
		return Game{}, false, err
	}
	attendance, err := normalize.NonNegativeInt(rawAttendance)
	if err != nil {
		return Game{}, false, err
	}

	rawDuration, err := cellText(row, `td[data-stat="game_duration"]`)
	if err != nil {
		return Game{}, false, err
	}
	duration, err := normalize.ClockMinutes(rawDuration)
	if err != nil {
		return Game{}, false, err
	}

	return Game{
		Date:         date,
		Visitor:      visitor,
		VisitorGoals: visitorGoals,
		Home:         home,
		HomeGoals:    homeGoals,
		Overtime:     overtime,
		Attendance:   attendance,
		Duration:     duration,
	}, true, nil
}
