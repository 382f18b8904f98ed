package team

import "context"

// Repository describes team persistence needs from use cases.
// InsertMany must treat an empty slice as a successful no-op. AppendLeagueID
// is a set append: adding a league id the team already has changes nothing.
type Repository interface {
	InsertMany(ctx context.Context, items []Team) error
	GetByExternalID(ctx context.Context, id int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID int64) ([]Team, error)
	AppendLeagueID(ctx context.Context, teamID, leagueID int64) error
}
