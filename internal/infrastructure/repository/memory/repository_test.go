package memory

import (
	"context"
	"testing"

	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

func TestTeamRepository_AppendLeagueID(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())
	ctx := context.Background()

	if err := repo.AppendLeagueID(ctx, TeamIDArsenal, 2001); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	item, found, err := repo.GetByExternalID(ctx, TeamIDArsenal)
	if err != nil || !found {
		t.Fatalf("expected team present, found=%v err=%v", found, err)
	}
	if len(item.LeagueIDs) != 2 || !item.HasLeague(2001) {
		t.Fatalf("expected league 2001 appended, got %v", item.LeagueIDs)
	}

	// Appending the same league again keeps the set stable.
	if err := repo.AppendLeagueID(ctx, TeamIDArsenal, 2001); err != nil {
		t.Fatalf("repeat append failed: %v", err)
	}
	item, _, _ = repo.GetByExternalID(ctx, TeamIDArsenal)
	if len(item.LeagueIDs) != 2 {
		t.Fatalf("expected league set unchanged, got %v", item.LeagueIDs)
	}

	if err := repo.AppendLeagueID(ctx, 424242, 2001); err == nil {
		t.Fatalf("expected error appending to a missing team")
	}
}

func TestTeamRepository_ListByLeague(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository(SeedTeams())
	ctx := context.Background()

	if err := repo.InsertMany(ctx, []team.Team{{
		ID:        100,
		LeagueIDs: []int64{2002},
		Name:      "bayern_munich",
	}}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	teams, err := repo.ListByLeague(ctx, LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("list by league failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams in the league, got %d", len(teams))
	}
	for _, item := range teams {
		if !item.HasLeague(LeagueIDPremierLeague) {
			t.Fatalf("unexpected team %q in league listing", item.Name)
		}
	}
}

func TestPersonRepository_Filters(t *testing.T) {
	t.Parallel()

	repo := NewPersonRepository(SeedPeople())
	ctx := context.Background()

	arsenal, err := repo.ListByTeam(ctx, TeamIDArsenal)
	if err != nil {
		t.Fatalf("list by team failed: %v", err)
	}
	if len(arsenal) != 2 {
		t.Fatalf("expected 2 Arsenal records, got %d", len(arsenal))
	}

	both, err := repo.ListByTeams(ctx, []int64{TeamIDArsenal, TeamIDFulham})
	if err != nil {
		t.Fatalf("list by teams failed: %v", err)
	}
	if len(both) != 3 {
		t.Fatalf("expected 3 records across both teams, got %d", len(both))
	}

	none, err := repo.ListByTeams(ctx, nil)
	if err != nil {
		t.Fatalf("list by empty team set failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty result for empty team set, got %d", len(none))
	}

	coaches, err := repo.ListCoaches(ctx)
	if err != nil {
		t.Fatalf("list coaches failed: %v", err)
	}
	if len(coaches) != 1 || coaches[0].TeamID != TeamIDFulham {
		t.Fatalf("expected Fulham's coach, got %+v", coaches)
	}
}

func TestLeagueRepository_GetByCode(t *testing.T) {
	t.Parallel()

	repo := NewLeagueRepository(SeedLeagues())
	ctx := context.Background()

	item, found, err := repo.GetByCode(ctx, LeagueCodePL)
	if err != nil || !found {
		t.Fatalf("expected league present, found=%v err=%v", found, err)
	}
	if item.ID != LeagueIDPremierLeague {
		t.Fatalf("unexpected league: %+v", item)
	}

	_, found, err = repo.GetByCode(ctx, "XX")
	if err != nil || found {
		t.Fatalf("expected unknown code to be absent, found=%v err=%v", found, err)
	}
}
