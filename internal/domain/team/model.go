package team

import (
	"fmt"

	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
)

// Team is a real football club. ID is the stable external identifier from
// the upstream provider and the store's natural key; the internal document
// id only shows up stringified in query responses.
//
// LeagueIDs serializes as "leaugeId": the stored documents use that key,
// misspelling included, so renaming it would orphan every existing team.
type Team struct {
	DocID     string  `json:"_id,omitempty"`
	ID        int64   `json:"id"`
	LeagueIDs []int64 `json:"leaugeId"`
	Name      string  `json:"name"`
	TLA       string  `json:"tla,omitempty"`
	ShortName string  `json:"shortName,omitempty"`
	AreaID    int64   `json:"areaId,omitempty"`
	AreaName  string  `json:"areaName,omitempty"`
	Address   string  `json:"address,omitempty"`

	// Players is populated only when a query asks for resolve_players; it is
	// never persisted with the team document.
	Players []person.Person `json:"players,omitempty"`
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(t.LeagueIDs) == 0 {
		return fmt.Errorf("team league ids are required")
	}

	return nil
}

// HasLeague reports whether the team already appeared in the given league.
func (t Team) HasLeague(leagueID int64) bool {
	for _, id := range t.LeagueIDs {
		if id == leagueID {
			return true
		}
	}

	return false
}
