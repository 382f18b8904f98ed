package memory

import (
	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

const (
	LeagueIDPremierLeague int64 = 2021
	LeagueCodePL                = "PL"

	TeamIDArsenal int64 = 57
	TeamIDFulham  int64 = 63
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:   LeagueIDPremierLeague,
			Code: LeagueCodePL,
			Name: "Premier League",
			Metadata: map[string]any{
				"type":   "LEAGUE",
				"emblem": "https://crests.football-data.org/PL.png",
			},
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:        TeamIDArsenal,
			LeagueIDs: []int64{LeagueIDPremierLeague},
			Name:      "arsenal_fc",
			TLA:       "ARS",
			ShortName: "Arsenal",
			AreaID:    2072,
			AreaName:  "England",
			Address:   "75 Drayton Park London N5 1BU",
		},
		{
			ID:        TeamIDFulham,
			LeagueIDs: []int64{LeagueIDPremierLeague},
			Name:      "fulham_fc",
			TLA:       "FUL",
			ShortName: "Fulham",
			AreaID:    2072,
			AreaName:  "England",
			Address:   "Craven Cottage, Stevenage Road London SW6 6HH",
		},
	}
}

func SeedPeople() []person.Person {
	shirtSeven := 7

	return []person.Person{
		{
			ID:          3141,
			Name:        "Bukayo Saka",
			Position:    "Right Winger",
			DateOfBirth: "2001-09-05",
			Nationality: "England",
			ShirtNumber: &shirtSeven,
			TeamID:      TeamIDArsenal,
		},
		{
			ID:          7882,
			Name:        "David Raya",
			Position:    "Goalkeeper",
			DateOfBirth: "1995-09-15",
			Nationality: "Spain",
			TeamID:      TeamIDArsenal,
		},
		{
			ID:          11603,
			Name:        "Marco Silva",
			Position:    person.PositionCoach,
			DateOfBirth: "1977-07-12",
			Nationality: "Portugal",
			TeamID:      TeamIDFulham,
		},
	}
}
