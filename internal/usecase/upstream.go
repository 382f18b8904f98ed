package usecase

import "context"

// UpstreamTeam is one club as the provider returns it inside a competition's
// team list, squad and coaching staff included.
type UpstreamTeam struct {
	ID        int64
	Name      string
	TLA       string
	ShortName string
	Address   string
	AreaID    int64
	AreaName  string
	Squad     []UpstreamPerson
	Coach     *UpstreamCoach
}

// UpstreamPerson is one squad member. ShirtNumber is optional upstream.
type UpstreamPerson struct {
	ID          int64
	Name        string
	Position    string
	DateOfBirth string
	Nationality string
	ShirtNumber *int
}

// UpstreamCoach deliberately omits the provider's firstName/lastName/contract
// block: coach records are persisted without those fields.
type UpstreamCoach struct {
	ID          int64
	Name        string
	DateOfBirth string
	Nationality string
}

// UpstreamGateway is the slice of the football-data API the import pipeline
// needs. Competition returns the raw competition payload so arbitrary
// provider metadata survives into the league document.
type UpstreamGateway interface {
	Competition(ctx context.Context, code string) (map[string]any, error)
	CompetitionTeams(ctx context.Context, code, season string) ([]UpstreamTeam, error)
}
