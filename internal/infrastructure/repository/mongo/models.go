package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type leagueDocument struct {
	DocID    primitive.ObjectID `bson:"_id,omitempty"`
	ID       int64              `bson:"id"`
	Code     string             `bson:"code"`
	Name     string             `bson:"name"`
	Metadata bson.M             `bson:"metadata,omitempty"`
}

func newLeagueDocument(item league.League) leagueDocument {
	return leagueDocument{
		ID:       item.ID,
		Code:     item.Code,
		Name:     item.Name,
		Metadata: bson.M(item.Metadata),
	}
}

func (d leagueDocument) toDomain() league.League {
	return league.League{
		DocID:    objectIDString(d.DocID),
		ID:       d.ID,
		Code:     d.Code,
		Name:     d.Name,
		Metadata: map[string]any(d.Metadata),
	}
}

// teamDocument keeps the historical "leaugeId" key: every stored team uses
// it and the query contract exposes it verbatim.
type teamDocument struct {
	DocID     primitive.ObjectID `bson:"_id,omitempty"`
	ID        int64              `bson:"id"`
	LeagueIDs []int64            `bson:"leaugeId"`
	Name      string             `bson:"name"`
	TLA       string             `bson:"tla,omitempty"`
	ShortName string             `bson:"shortName,omitempty"`
	AreaID    int64              `bson:"areaId,omitempty"`
	AreaName  string             `bson:"areaName,omitempty"`
	Address   string             `bson:"address,omitempty"`
}

func newTeamDocument(item team.Team) teamDocument {
	return teamDocument{
		ID:        item.ID,
		LeagueIDs: item.LeagueIDs,
		Name:      item.Name,
		TLA:       item.TLA,
		ShortName: item.ShortName,
		AreaID:    item.AreaID,
		AreaName:  item.AreaName,
		Address:   item.Address,
	}
}

func (d teamDocument) toDomain() team.Team {
	return team.Team{
		DocID:     objectIDString(d.DocID),
		ID:        d.ID,
		LeagueIDs: d.LeagueIDs,
		Name:      d.Name,
		TLA:       d.TLA,
		ShortName: d.ShortName,
		AreaID:    d.AreaID,
		AreaName:  d.AreaName,
		Address:   d.Address,
	}
}

type personDocument struct {
	DocID       primitive.ObjectID `bson:"_id,omitempty"`
	ID          int64              `bson:"id,omitempty"`
	Name        string             `bson:"name"`
	Position    string             `bson:"position,omitempty"`
	DateOfBirth string             `bson:"dateOfBirth,omitempty"`
	Nationality string             `bson:"nationality,omitempty"`
	ShirtNumber *int               `bson:"shirtNumber,omitempty"`
	TeamID      int64              `bson:"teamId"`
}

func newPersonDocument(item person.Person) personDocument {
	return personDocument{
		ID:          item.ID,
		Name:        item.Name,
		Position:    item.Position,
		DateOfBirth: item.DateOfBirth,
		Nationality: item.Nationality,
		ShirtNumber: item.ShirtNumber,
		TeamID:      item.TeamID,
	}
}

func (d personDocument) toDomain() person.Person {
	return person.Person{
		DocID:       objectIDString(d.DocID),
		ID:          d.ID,
		Name:        d.Name,
		Position:    d.Position,
		DateOfBirth: d.DateOfBirth,
		Nationality: d.Nationality,
		ShirtNumber: d.ShirtNumber,
		TeamID:      d.TeamID,
	}
}

func objectIDString(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
