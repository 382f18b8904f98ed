package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	personRepo person.Repository
}

func NewLeagueService(leagueRepo league.Repository, teamRepo team.Repository, personRepo person.Repository) *LeagueService {
	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		personRepo: personRepo,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

// ListPlayersByLeagueCode returns the people of every team in the league, or
// of a single team when teamName is set. The filter is honest about league
// membership: a known team outside this league is reported as not part of it.
func (s *LeagueService) ListPlayersByLeagueCode(ctx context.Context, code, teamName string) ([]person.Person, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListPlayersByLeagueCode")
	defer span.End()

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: league code is required", ErrInvalidInput)
	}

	item, found, err := s.leagueRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get league by code: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: league code %s", ErrNotFound, code)
	}

	teamName = strings.TrimSpace(teamName)

	var teamIDs []int64
	if teamName != "" {
		filtered, found, err := s.teamRepo.GetByName(ctx, teamName)
		if err != nil {
			return nil, fmt.Errorf("get team by name: %w", err)
		}
		if !found {
			return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamName)
		}
		if !filtered.HasLeague(item.ID) {
			return nil, fmt.Errorf("%w: %s is not part of the %s league", ErrNotFound, teamName, code)
		}
		teamIDs = []int64{filtered.ID}
	} else {
		teams, err := s.teamRepo.ListByLeague(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("list teams by league: %w", err)
		}
		teamIDs = make([]int64, 0, len(teams))
		for _, t := range teams {
			teamIDs = append(teamIDs, t.ID)
		}
	}

	players, err := s.personRepo.ListByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list players by teams: %w", err)
	}
	if len(players) == 0 {
		if teamName != "" {
			return nil, fmt.Errorf("%w: %s is not part of the %s league", ErrNotFound, teamName, code)
		}
		return nil, fmt.Errorf("%w: no players found for league %s", ErrNotFound, code)
	}

	return players, nil
}
