package statsapi

import (
	"context"

	"github.com/fortuna/rinkside/internal/etl"
	"github.com/fortuna/rinkside/internal/normalize"
)

// Team is one franchise from the team listing endpoint, with the nested
// venue and timezone sub-objects flattened.
type Team struct {
	ID           int
	Franchise    string
	Abbreviation string
	Division     string
	Conference   string
	City         string
	Name         string
	Location     string
	Venue        string
	TZ           string
	Offset       int
	URL          string
	FirstYear    int
}

// Teams fetches the full franchise listing in a single call.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var resp teamsResponse
	if err := c.getJSON(ctx, "/teams", &resp); err != nil {
		return nil, err
	}
	if len(resp.Teams) == 0 {
		return nil, etl.New(etl.KindSource, "team listing is empty")
	}

	teams := make([]Team, 0, len(resp.Teams))
	for _, t := range resp.Teams {
		team, err := flattenTeam(t)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func flattenTeam(t teamInfo) (Team, error) {
	if t.ID == 0 || t.Name == "" {
		return Team{}, etl.New(etl.KindSource, "team entry missing id or name (id=%d)", t.ID)
	}
	if t.Abbreviation == "" {
		return Team{}, etl.New(etl.KindSource, "team %q missing abbreviation", t.Name)
	}

	firstYear, err := normalize.Int(t.FirstYearOfPlay)
	if err != nil {
		return Team{}, etl.Wrap(err, etl.KindSource, "team %q firstYearOfPlay", t.Name)
	}

	return Team{
		ID:           t.ID,
		Franchise:    t.Name,
		Abbreviation: t.Abbreviation,
		Division:     t.Division.Name,
		Conference:   t.Conference.Name,
		City:         t.LocationName,
		Name:         t.TeamName,
		Location:     t.Venue.City,
		Venue:        t.Venue.Name,
		TZ:           t.Venue.TimeZone.TZ,
		Offset:       t.Venue.TimeZone.Offset,
		URL:          t.OfficialSiteURL,
		FirstYear:    firstYear,
	}, nil
}
