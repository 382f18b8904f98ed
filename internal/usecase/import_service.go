package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
)

// ImportStore is the persistence surface one import works against. Close
// releases the underlying connection.
type ImportStore interface {
	Leagues() league.Repository
	Teams() team.Repository
	People() person.Repository
	Close(ctx context.Context) error
}

// StoreOpener produces a fresh store per import so repeated imports cannot
// leak connections. The query services keep their own long-lived store.
type StoreOpener interface {
	Open(ctx context.Context) (ImportStore, error)
}

type ImportResult struct {
	Message      string `json:"message"`
	NewTeams     int    `json:"newTeams"`
	NewPeople    int    `json:"newPeople"`
	UpdatedTeams int    `json:"updatedTeams"`
}

// ImportService runs the synchronous import pipeline for one competition:
// fetch league metadata, fetch teams with squads, normalize, persist.
type ImportService struct {
	upstream UpstreamGateway
	stores   StoreOpener
	logger   *logging.Logger
}

func NewImportService(upstream UpstreamGateway, stores StoreOpener, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ImportService{
		upstream: upstream,
		stores:   stores,
		logger:   logger,
	}
}

// ImportCompetition imports one competition end to end on the calling
// goroutine. Persist-step failures are reported without rolling back
// documents already written; there is no cross-collection transaction.
func (s *ImportService) ImportCompetition(ctx context.Context, code string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportCompetition")
	defer span.End()

	code = strings.TrimSpace(code)
	if code == "" {
		return ImportResult{}, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	rawLeague, err := s.upstream.Competition(ctx, code)
	if err != nil {
		return ImportResult{}, fmt.Errorf("league %s not found: %w", code, err)
	}

	item, err := normalizeLeague(code, rawLeague)
	if err != nil {
		return ImportResult{}, fmt.Errorf("league %s not found: %w", code, err)
	}

	rawTeams, err := s.upstream.CompetitionTeams(ctx, code, "")
	if err != nil {
		return ImportResult{}, fmt.Errorf("no teams found for league %s: %w", code, err)
	}
	if len(rawTeams) == 0 {
		return ImportResult{}, fmt.Errorf("%w: no teams found for league %s", ErrNotFound, code)
	}

	store, err := s.stores.Open(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: open store: %v", ErrPersistence, err)
	}
	defer func() {
		if closeErr := store.Close(ctx); closeErr != nil {
			s.logger.WarnContext(ctx, "close import store failed", "code", code, "error", closeErr)
		}
	}()

	newTeams, people, appendIDs, err := normalizeTeams(ctx, rawTeams, item.ID, store.Teams().GetByExternalID)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// One league insert per import, re-imports included. Duplicate league and
	// person documents are accepted; teams are the only deduped entity.
	if err := store.Leagues().Insert(ctx, item); err != nil {
		return ImportResult{}, fmt.Errorf("%w: insert league: %v", ErrPersistence, err)
	}
	if err := store.Teams().InsertMany(ctx, newTeams); err != nil {
		return ImportResult{}, fmt.Errorf("%w: insert teams: %v", ErrPersistence, err)
	}
	if err := store.People().InsertMany(ctx, people); err != nil {
		return ImportResult{}, fmt.Errorf("%w: insert people: %v", ErrPersistence, err)
	}
	for _, teamID := range appendIDs {
		if err := store.Teams().AppendLeagueID(ctx, teamID, item.ID); err != nil {
			return ImportResult{}, fmt.Errorf("%w: append league to team id=%d: %v", ErrPersistence, teamID, err)
		}
	}

	s.logger.InfoContext(ctx, "league imported",
		"code", code,
		"league_id", item.ID,
		"new_teams", len(newTeams),
		"new_people", len(people),
		"updated_teams", len(appendIDs),
	)

	return ImportResult{
		Message:      fmt.Sprintf("League %s data downloaded and saved", code),
		NewTeams:     len(newTeams),
		NewPeople:    len(people),
		UpdatedTeams: len(appendIDs),
	}, nil
}
