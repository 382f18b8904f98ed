package memory

import (
	"context"
	"sync"

	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
)

type PersonRepository struct {
	mu    sync.RWMutex
	items []person.Person
}

func NewPersonRepository(seed []person.Person) *PersonRepository {
	items := make([]person.Person, 0, len(seed))
	items = append(items, seed...)

	return &PersonRepository{items: items}
}

func (r *PersonRepository) InsertMany(_ context.Context, items []person.Person) error {
	if len(items) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, items...)
	return nil
}

func (r *PersonRepository) List(_ context.Context) ([]person.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]person.Person, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

func (r *PersonRepository) ListByTeam(_ context.Context, teamID int64) ([]person.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]person.Person, 0, 16)
	for _, item := range r.items {
		if item.TeamID == teamID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PersonRepository) ListByTeams(_ context.Context, teamIDs []int64) ([]person.Person, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	wanted := make(map[int64]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]person.Person, 0, 32)
	for _, item := range r.items {
		if _, ok := wanted[item.TeamID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PersonRepository) ListCoaches(_ context.Context) ([]person.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]person.Person, 0, 8)
	for _, item := range r.items {
		if item.IsCoach() {
			out = append(out, item)
		}
	}

	return out, nil
}
