package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

// teamLookup finds a previously imported team by its external id.
type teamLookup func(ctx context.Context, externalID int64) (team.Team, bool, error)

// normalizeLeague flattens a raw competition payload into a league record.
// The seasons block is transient upstream state and is stripped from the
// retained metadata.
func normalizeLeague(code string, raw map[string]any) (league.League, error) {
	id, ok := rawInt64(raw, "id")
	if !ok {
		return league.League{}, fmt.Errorf("%w: competition id absent", ErrMissingData)
	}

	name, _ := raw["name"].(string)
	if strings.TrimSpace(name) == "" {
		return league.League{}, fmt.Errorf("%w: competition name absent", ErrMissingData)
	}

	metadata := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == "seasons" {
			continue
		}
		metadata[key] = value
	}

	leagueCode, _ := raw["code"].(string)
	if strings.TrimSpace(leagueCode) == "" {
		leagueCode = strings.TrimSpace(code)
	}

	return league.League{
		ID:       id,
		Code:     leagueCode,
		Name:     name,
		Metadata: metadata,
	}, nil
}

// normalizeTeams splits a competition's team list into new team records,
// flattened person records, and the external ids of already-known teams whose
// league-id set needs this league appended. Known teams contribute no people:
// their squads were extracted when they were first imported.
func normalizeTeams(ctx context.Context, raws []UpstreamTeam, leagueID int64, lookup teamLookup) ([]team.Team, []person.Person, []int64, error) {
	newTeams := make([]team.Team, 0, len(raws))
	people := make([]person.Person, 0, 64)
	appendIDs := make([]int64, 0, 4)

	for _, raw := range raws {
		existing, found, err := lookup(ctx, raw.ID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("lookup team id=%d: %w", raw.ID, err)
		}

		if found {
			if !existing.HasLeague(leagueID) {
				appendIDs = append(appendIDs, raw.ID)
			}
			continue
		}

		newTeams = append(newTeams, team.Team{
			ID:        raw.ID,
			LeagueIDs: []int64{leagueID},
			Name:      normalizeTeamName(raw.Name),
			TLA:       raw.TLA,
			ShortName: raw.ShortName,
			AreaID:    raw.AreaID,
			AreaName:  raw.AreaName,
			Address:   raw.Address,
		})
		people = append(people, extractPeople(raw)...)
	}

	return newTeams, people, appendIDs, nil
}

// extractPeople flattens a team's personnel. A non-empty squad wins; an empty
// squad falls back to the coach as a single synthetic record. A team with
// neither yields nothing, which is not an error.
func extractPeople(raw UpstreamTeam) []person.Person {
	if len(raw.Squad) > 0 {
		out := make([]person.Person, 0, len(raw.Squad))
		for _, member := range raw.Squad {
			out = append(out, person.Person{
				ID:          member.ID,
				Name:        member.Name,
				Position:    member.Position,
				DateOfBirth: member.DateOfBirth,
				Nationality: member.Nationality,
				ShirtNumber: member.ShirtNumber,
				TeamID:      raw.ID,
			})
		}
		return out
	}

	if raw.Coach == nil {
		return nil
	}

	return []person.Person{{
		ID:          raw.Coach.ID,
		Name:        raw.Coach.Name,
		Position:    person.PositionCoach,
		DateOfBirth: raw.Coach.DateOfBirth,
		Nationality: raw.Coach.Nationality,
		TeamID:      raw.ID,
	}}
}

// normalizeTeamName makes team names stable as path and filter values.
// Applied only when a team record is first created, never to stored records.
func normalizeTeamName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

func rawInt64(raw map[string]any, key string) (int64, bool) {
	switch v := raw[key].(type) {
	case float64:
		if v <= 0 {
			return 0, false
		}
		return int64(v), true
	case int64:
		if v <= 0 {
			return 0, false
		}
		return v, true
	case int:
		if v <= 0 {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}
