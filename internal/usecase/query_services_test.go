package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rifqialifauzan/football-data-service/internal/infrastructure/repository/memory"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

func newLeagueService(store *memory.Store) *usecase.LeagueService {
	return usecase.NewLeagueService(store.Leagues(), store.Teams(), store.People())
}

func TestLeagueService_ListPlayersByLeagueCode(t *testing.T) {
	t.Parallel()

	svc := newLeagueService(memory.NewSeededStore())

	players, err := svc.ListPlayersByLeagueCode(context.Background(), memory.LeagueCodePL, "")
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	// Both seeded teams play in the league, so the coach is included too.
	if len(players) != 3 {
		t.Fatalf("expected 3 people across the league, got %d", len(players))
	}
}

func TestLeagueService_ListPlayersByLeagueCode_TeamFilter(t *testing.T) {
	t.Parallel()

	svc := newLeagueService(memory.NewSeededStore())

	players, err := svc.ListPlayersByLeagueCode(context.Background(), memory.LeagueCodePL, "arsenal_fc")
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 Arsenal players, got %d", len(players))
	}
	for _, member := range players {
		if member.TeamID != memory.TeamIDArsenal {
			t.Fatalf("expected only Arsenal records, got teamId %d", member.TeamID)
		}
	}
}

func TestLeagueService_ListPlayersByLeagueCode_NotFound(t *testing.T) {
	t.Parallel()

	svc := newLeagueService(memory.NewSeededStore())

	if _, err := svc.ListPlayersByLeagueCode(context.Background(), "XX", ""); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown league, got %v", err)
	}
	if _, err := svc.ListPlayersByLeagueCode(context.Background(), memory.LeagueCodePL, "ghost_fc"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team filter, got %v", err)
	}
	if _, err := svc.ListPlayersByLeagueCode(context.Background(), "", ""); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank code, got %v", err)
	}
}

func TestLeagueService_ListPlayersByLeagueCode_TeamOutsideLeague(t *testing.T) {
	t.Parallel()

	store := memory.NewSeededStore()
	svc := newLeagueService(store)

	// Second league the seeded teams do not belong to.
	other := memory.SeedLeagues()[0]
	other.ID = 2002
	other.Code = "BL1"
	other.Name = "Bundesliga"
	if err := store.Leagues().Insert(context.Background(), other); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := svc.ListPlayersByLeagueCode(context.Background(), "BL1", "arsenal_fc")
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for team outside the league, got %v", err)
	}
}

func TestTeamService_GetTeamByID(t *testing.T) {
	t.Parallel()

	store := memory.NewSeededStore()
	svc := usecase.NewTeamService(store.Teams(), store.People())

	item, err := svc.GetTeamByID(context.Background(), memory.TeamIDArsenal)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if item.Name != "arsenal_fc" {
		t.Fatalf("unexpected team: %+v", item)
	}

	if _, err := svc.GetTeamByID(context.Background(), 424242); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetTeamByID(context.Background(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive id, got %v", err)
	}
}

func TestTeamService_GetTeamByName_ResolvePlayers(t *testing.T) {
	t.Parallel()

	store := memory.NewSeededStore()
	svc := usecase.NewTeamService(store.Teams(), store.People())

	plain, err := svc.GetTeamByName(context.Background(), "arsenal_fc", false)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if len(plain.Players) != 0 {
		t.Fatalf("expected players omitted without resolve, got %d", len(plain.Players))
	}

	resolved, err := svc.GetTeamByName(context.Background(), "arsenal_fc", true)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if len(resolved.Players) != 2 {
		t.Fatalf("expected 2 embedded players, got %d", len(resolved.Players))
	}
	for _, member := range resolved.Players {
		if member.TeamID != memory.TeamIDArsenal {
			t.Fatalf("expected embedded players filtered by team, got teamId %d", member.TeamID)
		}
	}
}

func TestPersonService_ListByTeamName(t *testing.T) {
	t.Parallel()

	store := memory.NewSeededStore()
	svc := usecase.NewPersonService(store.Teams(), store.People())

	people, err := svc.ListByTeamName(context.Background(), "fulham_fc")
	if err != nil {
		t.Fatalf("list by team failed: %v", err)
	}
	if len(people) != 1 || people[0].Name != "Marco Silva" {
		t.Fatalf("expected Fulham's coach record, got %+v", people)
	}

	if _, err := svc.ListByTeamName(context.Background(), "ghost_fc"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPersonService_ListCoaches(t *testing.T) {
	t.Parallel()

	store := memory.NewSeededStore()
	svc := usecase.NewPersonService(store.Teams(), store.People())

	coaches, err := svc.ListCoaches(context.Background())
	if err != nil {
		t.Fatalf("list coaches failed: %v", err)
	}
	if len(coaches) != 1 || !coaches[0].IsCoach() {
		t.Fatalf("expected single coach record, got %+v", coaches)
	}

	empty := usecase.NewPersonService(memory.NewStore().Teams(), memory.NewStore().People())
	if _, err := empty.ListCoaches(context.Background()); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty coach list, got %v", err)
	}
}
