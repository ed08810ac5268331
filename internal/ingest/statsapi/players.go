package statsapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fortuna/rinkside/internal/etl"
	"github.com/fortuna/rinkside/internal/normalize"
)

// Player is one player profile, fields coerced to destination types.
// BirthStateProvince is nil when the profile omits it.
type Player struct {
	ID                 int
	FullName           string
	PrimaryNumber      string
	BirthDate          time.Time
	BirthCity          string
	BirthStateProvince *string
	BirthCountry       string
	Nationality        string
	Height             int
	Weight             int
	AlternateCaptain   bool
	Captain            bool
	Rookie             bool
	ShootsCatches      string
	TeamID             int
	PositionType       string
	PositionName       string
}

// RosterPlayerIDs fetches a team's current roster and returns its player ids.
func (c *Client) RosterPlayerIDs(ctx context.Context, teamID int) ([]int, error) {
	var resp rosterResponse
	if err := c.getJSON(ctx, teamRosterPath(teamID), &resp); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(resp.Roster))
	for _, entry := range resp.Roster {
		if entry.Person.ID == 0 {
			return nil, etl.New(etl.KindSource, "roster entry for team %d missing person id", teamID)
		}
		ids = append(ids, entry.Person.ID)
	}
	return ids, nil
}

// Player fetches one full player profile. When a profile cache is attached,
// the raw payload is served from and written through it.
func (c *Client) Player(ctx context.Context, playerID int) (Player, error) {
	body, cached := c.cachedProfile(ctx, playerID)
	if !cached {
		var err error
		body, err = c.get(ctx, personPath(playerID))
		if err != nil {
			return Player{}, err
		}
		if c.cache != nil {
			c.cache.Set(ctx, playerID, body)
		}
	}

	var resp peopleResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Player{}, etl.Wrap(err, etl.KindSource, "decoding profile for player %d", playerID)
	}
	if len(resp.People) != 1 {
		return Player{}, etl.New(etl.KindSource, "profile for player %d has %d entries, want 1", playerID, len(resp.People))
	}
	return flattenPlayer(resp.People[0])
}

func (c *Client) cachedProfile(ctx context.Context, playerID int) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(ctx, playerID)
}

func flattenPlayer(p personInfo) (Player, error) {
	if p.ID == 0 || p.FullName == "" {
		return Player{}, etl.New(etl.KindSource, "player profile missing id or name (id=%d)", p.ID)
	}

	birthDate, err := normalize.Date(p.BirthDate)
	if err != nil {
		return Player{}, etl.Wrap(err, etl.KindSource, "player %s birth date", p.FullName)
	}
	height, err := normalize.HeightInches(p.Height)
	if err != nil {
		return Player{}, etl.Wrap(err, etl.KindSource, "player %s height", p.FullName)
	}

	if p.PrimaryNumber == "" || p.ShootsCatches == "" {
		return Player{}, etl.New(etl.KindSource, "player %s missing required field", p.FullName)
	}
	if p.CurrentTeam.ID == 0 {
		return Player{}, etl.New(etl.KindSource, "player %s has no current team", p.FullName)
	}
	if p.PrimaryPosition.Type == "" || p.PrimaryPosition.Name == "" {
		return Player{}, etl.New(etl.KindSource, "player %s missing position", p.FullName)
	}

	return Player{
		ID:                 p.ID,
		FullName:           p.FullName,
		PrimaryNumber:      p.PrimaryNumber,
		BirthDate:          birthDate,
		BirthCity:          p.BirthCity,
		BirthStateProvince: p.BirthStateProvince,
		BirthCountry:       p.BirthCountry,
		Nationality:        p.Nationality,
		Height:             height,
		Weight:             p.Weight,
		AlternateCaptain:   p.AlternateCaptain,
		Captain:            p.Captain,
		Rookie:             p.Rookie,
		ShootsCatches:      p.ShootsCatches,
		TeamID:             p.CurrentTeam.ID,
		PositionType:       p.PrimaryPosition.Type,
		PositionName:       p.PrimaryPosition.Name,
	}, nil
}
