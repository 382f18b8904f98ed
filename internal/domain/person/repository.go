package person

import "context"

// Repository describes person persistence needs from use cases.
// InsertMany must treat an empty slice as a successful no-op.
type Repository interface {
	InsertMany(ctx context.Context, items []Person) error
	List(ctx context.Context) ([]Person, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Person, error)
	ListByTeams(ctx context.Context, teamIDs []int64) ([]Person, error)
	ListCoaches(ctx context.Context) ([]Person, error)
}
