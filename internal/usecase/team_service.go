package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	personRepo person.Repository
}

func NewTeamService(teamRepo team.Repository, personRepo person.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		personRepo: personRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeamByID(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamByID")
	defer span.End()

	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	item, found, err := s.teamRepo.GetByExternalID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team id %d", ErrNotFound, id)
	}

	return item, nil
}

// GetTeamByName looks a team up by its normalized name. With resolvePlayers
// set, the team's person records are embedded inline.
func (s *TeamService) GetTeamByName(ctx context.Context, name string, resolvePlayers bool) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeamByName")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	item, found, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, name)
	}

	if resolvePlayers {
		players, err := s.personRepo.ListByTeam(ctx, item.ID)
		if err != nil {
			return team.Team{}, fmt.Errorf("resolve team players: %w", err)
		}
		item.Players = players
	}

	return item, nil
}
