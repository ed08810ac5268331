package pipeline

import "github.com/fortuna/rinkside/internal/store"

// Destination schemas, columns in insert order.

// GamesTable holds one row per played game.
var GamesTable = store.Table{
	Name: "games",
	Columns: []store.Column{
		{Name: "gamedate", Type: "date"},
		{Name: "visitor", Type: "varchar(50)"},
		{Name: "visitor_goals", Type: "int"},
		{Name: "home", Type: "varchar(50)"},
		{Name: "home_goals", Type: "int"},
		{Name: "overtime", Type: "varchar(5)"},
		{Name: "attendance", Type: "int"},
		{Name: "duration", Type: "int"},
	},
}

// TeamsTable is the HTML-sourced team listing.
var TeamsTable = store.Table{
	Name: "teams",
	Columns: []store.Column{
		{Name: "team", Type: "varchar(50)", PrimaryKey: true},
		{Name: "conference", Type: "varchar(50)"},
		{Name: "division", Type: "varchar(50)"},
	},
}

// TeamsAbbrevTable is the HTML variant carrying the 3-letter code.
var TeamsAbbrevTable = store.Table{
	Name: "teams",
	Columns: []store.Column{
		{Name: "team", Type: "varchar(50)", PrimaryKey: true},
		{Name: "abbreviation", Type: "char(3)"},
		{Name: "conference", Type: "varchar(50)"},
		{Name: "division", Type: "varchar(50)"},
	},
}

// APITeamsTable is the API-sourced franchise listing.
var APITeamsTable = store.Table{
	Name: "teams",
	Columns: []store.Column{
		{Name: "team_id", Type: "int", PrimaryKey: true},
		{Name: "franchise", Type: "varchar(50)"},
		{Name: "abbreviation", Type: "char(3)"},
		{Name: "division", Type: "varchar(50)"},
		{Name: "conference", Type: "varchar(50)"},
		{Name: "city", Type: "varchar(50)"},
		{Name: "name", Type: "varchar(50)"},
		{Name: "location", Type: "varchar(50)"},
		{Name: "venue", Type: "varchar(50)"},
		{Name: "tz", Type: "char(3)"},
		{Name: "offset", Type: "int"},
		{Name: "url", Type: "varchar(100)"},
		{Name: "firstYearOfPlay", Type: "int"},
	},
}

// PlayersTable holds one row per rostered player.
var PlayersTable = store.Table{
	Name: "players",
	Columns: []store.Column{
		{Name: "player_id", Type: "int", PrimaryKey: true},
		{Name: "fullName", Type: "varchar(50)"},
		{Name: "primaryNumber", Type: "varchar(5)"},
		{Name: "birthDate", Type: "date"},
		{Name: "birthCity", Type: "varchar(50)"},
		{Name: "birthStateProvince", Type: "varchar(50)", Nullable: true},
		{Name: "birthCountry", Type: "varchar(5)"},
		{Name: "nationality", Type: "varchar(5)"},
		{Name: "height", Type: "int"},
		{Name: "weight", Type: "int"},
		{Name: "alternateCaptain", Type: "boolean"},
		{Name: "captain", Type: "boolean"},
		{Name: "rookie", Type: "boolean"},
		{Name: "shootsCatches", Type: "char(1)"},
		{Name: "team_id", Type: "int"},
		{Name: "type", Type: "varchar(10)"},
		{Name: "position", Type: "varchar(10)"},
	},
}
