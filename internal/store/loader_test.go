package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var gamesTable = Table{
	Name: "games",
	Columns: []Column{
		{Name: "gamedate", Type: "date"},
		{Name: "visitor", Type: "varchar(50)"},
		{Name: "visitor_goals", Type: "int"},
	},
}

func TestCreateStatement(t *testing.T) {
	assert.Equal(t,
		`CREATE TABLE "games" ("gamedate" date NOT NULL, "visitor" varchar(50) NOT NULL, "visitor_goals" int NOT NULL)`,
		gamesTable.CreateStatement())
}

func TestCreateStatementPrimaryKeyAndNullable(t *testing.T) {
	table := Table{
		Name: "players",
		Columns: []Column{
			{Name: "player_id", Type: "int", PrimaryKey: true},
			{Name: "birthStateProvince", Type: "varchar(50)", Nullable: true},
			{Name: "offset", Type: "int"},
		},
	}
	assert.Equal(t,
		`CREATE TABLE "players" ("player_id" int PRIMARY KEY NOT NULL, "birthStateProvince" varchar(50), "offset" int NOT NULL)`,
		table.CreateStatement())
}

func TestInsertStatement(t *testing.T) {
	assert.Equal(t,
		`INSERT INTO "games" ("gamedate", "visitor", "visitor_goals") VALUES ($1, $2, $3)`,
		gamesTable.InsertStatement())
}
