// Package pipeline wires each dataset's extract, normalize and load stages
// into a single sequential run.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/fortuna/rinkside/internal/etl"
	"github.com/fortuna/rinkside/internal/ingest/htmlstats"
	"github.com/fortuna/rinkside/internal/ingest/statsapi"
	"github.com/fortuna/rinkside/internal/store"
)

// Registry purposes for the HTML-sourced datasets.
const (
	PurposeGames = "games"
	PurposeTeams = "teams"
)

// Runner executes one dataset pipeline per invocation. All collaborators
// are passed in explicitly; the runner holds no state across runs.
type Runner struct {
	DB           *store.Database
	HTML         htmlstats.Fetcher
	API          *statsapi.Client
	ExcludedCity string
	Log          *zap.Logger
}

// RunGames loads the games table from the HTML schedule listing.
func (r *Runner) RunGames(ctx context.Context) error {
	url, err := r.DB.SourceURL(ctx, PurposeGames)
	if err != nil {
		return err
	}
	r.Log.Info("extracting games", zap.String("url", url))

	doc, err := r.HTML.Fetch(ctx, url)
	if err != nil {
		return err
	}
	games, err := htmlstats.ExtractGames(doc)
	if err != nil {
		return err
	}

	builder := etl.NewBuilder(len(GamesTable.Columns))
	for _, g := range games {
		if err := builder.Append(g.Date, g.Visitor, g.VisitorGoals, g.Home, g.HomeGoals, g.Overtime, g.Attendance, g.Duration); err != nil {
			return err
		}
	}

	r.Log.Info("loading games", zap.Int("records", builder.Len()))
	return r.DB.ReplaceTable(ctx, GamesTable, builder.Records())
}

// RunTeams loads the teams table from the HTML conference/division listing.
// With withAbbrev set it produces the variant schema carrying the 3-letter
// code resolved from the franchise lookup table.
func (r *Runner) RunTeams(ctx context.Context, withAbbrev bool) error {
	url, err := r.DB.SourceURL(ctx, PurposeTeams)
	if err != nil {
		return err
	}
	r.Log.Info("extracting teams", zap.String("url", url), zap.Bool("abbreviations", withAbbrev))

	doc, err := r.HTML.Fetch(ctx, url)
	if err != nil {
		return err
	}

	if withAbbrev {
		teams, err := htmlstats.ExtractTeamsWithAbbreviations(doc, r.ExcludedCity)
		if err != nil {
			return err
		}
		builder := etl.NewBuilder(len(TeamsAbbrevTable.Columns))
		for _, t := range teams {
			if err := builder.Append(t.Name, t.Abbreviation, t.Conference, t.Division); err != nil {
				return err
			}
		}
		r.Log.Info("loading teams", zap.Int("records", builder.Len()))
		return r.DB.ReplaceTable(ctx, TeamsAbbrevTable, builder.Records())
	}

	teams, err := htmlstats.ExtractTeams(doc, r.ExcludedCity)
	if err != nil {
		return err
	}
	builder := etl.NewBuilder(len(TeamsTable.Columns))
	for _, t := range teams {
		if err := builder.Append(t.Name, t.Conference, t.Division); err != nil {
			return err
		}
	}
	r.Log.Info("loading teams", zap.Int("records", builder.Len()))
	return r.DB.ReplaceTable(ctx, TeamsTable, builder.Records())
}

// RunAPITeams loads the teams table from the franchise listing endpoint.
func (r *Runner) RunAPITeams(ctx context.Context) error {
	r.Log.Info("extracting teams from api")

	teams, err := r.API.Teams(ctx)
	if err != nil {
		return err
	}

	builder := etl.NewBuilder(len(APITeamsTable.Columns))
	for _, t := range teams {
		err := builder.Append(t.ID, t.Franchise, t.Abbreviation, t.Division, t.Conference,
			t.City, t.Name, t.Location, t.Venue, t.TZ, t.Offset, t.URL, t.FirstYear)
		if err != nil {
			return err
		}
	}

	r.Log.Info("loading teams", zap.Int("records", builder.Len()))
	return r.DB.ReplaceTable(ctx, APITeamsTable, builder.Records())
}

// RunPlayers loads the players table. It depends on the API-teams dataset
// having been loaded: team ids are read from the teams table up front, then
// each team's roster and each player's profile is fetched sequentially, one
// round-trip each.
func (r *Runner) RunPlayers(ctx context.Context) error {
	teamIDs, err := r.DB.TeamIDs(ctx)
	if err != nil {
		return err
	}
	r.Log.Info("extracting rosters", zap.Int("teams", len(teamIDs)))

	var playerIDs []int
	for _, teamID := range teamIDs {
		ids, err := r.API.RosterPlayerIDs(ctx, teamID)
		if err != nil {
			return err
		}
		playerIDs = append(playerIDs, ids...)
	}
	r.Log.Info("extracting profiles", zap.Int("players", len(playerIDs)))

	builder := etl.NewBuilder(len(PlayersTable.Columns))
	for _, playerID := range playerIDs {
		p, err := r.API.Player(ctx, playerID)
		if err != nil {
			return err
		}
		err = builder.Append(p.ID, p.FullName, p.PrimaryNumber, p.BirthDate, p.BirthCity,
			nullableString(p.BirthStateProvince), p.BirthCountry, p.Nationality, p.Height, p.Weight,
			p.AlternateCaptain, p.Captain, p.Rookie, p.ShootsCatches, p.TeamID,
			p.PositionType, p.PositionName)
		if err != nil {
			return err
		}
	}

	r.Log.Info("loading players", zap.Int("records", builder.Len()))
	return r.DB.ReplaceTable(ctx, PlayersTable, builder.Records())
}

// nullableString maps an absent optional field to SQL NULL.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
