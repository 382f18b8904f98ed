package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	items := make([]team.Team, 0, len(seed))
	items = append(items, seed...)

	return &TeamRepository{items: items}
}

func (r *TeamRepository) InsertMany(_ context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, items...)
	return nil
}

func (r *TeamRepository) GetByExternalID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name == name {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		if item.HasLeague(leagueID) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *TeamRepository) AppendLeagueID(_ context.Context, teamID, leagueID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.items {
		if r.items[idx].ID != teamID {
			continue
		}
		if !r.items[idx].HasLeague(leagueID) {
			r.items[idx].LeagueIDs = append(r.items[idx].LeagueIDs, leagueID)
		}
		return nil
	}

	return fmt.Errorf("append league=%d to team=%d: team missing", leagueID, teamID)
}
