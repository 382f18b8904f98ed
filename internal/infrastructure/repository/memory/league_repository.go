package memory

import (
	"context"
	"sync"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
}

func NewLeagueRepository(seed []league.League) *LeagueRepository {
	items := make([]league.League, 0, len(seed))
	items = append(items, seed...)

	return &LeagueRepository{items: items}
}

func (r *LeagueRepository) Insert(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Code == code {
			return item, true, nil
		}
	}

	return league.League{}, false, nil
}
