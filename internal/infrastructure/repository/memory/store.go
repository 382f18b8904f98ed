package memory

import (
	"context"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

// Store bundles the in-memory repositories behind the same lifecycle
// contract as the document store. Open hands back the shared instance so
// imports and queries observe the same data; Close is a no-op.
type Store struct {
	leagues *LeagueRepository
	teams   *TeamRepository
	people  *PersonRepository
}

func NewStore() *Store {
	return &Store{
		leagues: NewLeagueRepository(nil),
		teams:   NewTeamRepository(nil),
		people:  NewPersonRepository(nil),
	}
}

func NewSeededStore() *Store {
	return &Store{
		leagues: NewLeagueRepository(SeedLeagues()),
		teams:   NewTeamRepository(SeedTeams()),
		people:  NewPersonRepository(SeedPeople()),
	}
}

func (s *Store) Leagues() league.Repository {
	return s.leagues
}

func (s *Store) Teams() team.Repository {
	return s.teams
}

func (s *Store) People() person.Repository {
	return s.people
}

func (s *Store) Close(_ context.Context) error {
	return nil
}

func (s *Store) Open(_ context.Context) (usecase.ImportStore, error) {
	return s, nil
}
