package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type PersonService struct {
	teamRepo   team.Repository
	personRepo person.Repository
}

func NewPersonService(teamRepo team.Repository, personRepo person.Repository) *PersonService {
	return &PersonService{
		teamRepo:   teamRepo,
		personRepo: personRepo,
	}
}

// ListPeople returns every persisted person record, coaches included.
func (s *PersonService) ListPeople(ctx context.Context) ([]person.Person, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PersonService.ListPeople")
	defer span.End()

	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	return people, nil
}

func (s *PersonService) ListByTeamName(ctx context.Context, teamName string) ([]person.Person, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PersonService.ListByTeamName")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	item, found, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("get team by name: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: team %s", ErrNotFound, teamName)
	}

	people, err := s.personRepo.ListByTeam(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("list people by team: %w", err)
	}

	return people, nil
}

func (s *PersonService) ListCoaches(ctx context.Context) ([]person.Person, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PersonService.ListCoaches")
	defer span.End()

	coaches, err := s.personRepo.ListCoaches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	if len(coaches) == 0 {
		return nil, fmt.Errorf("%w: no coaches found", ErrNotFound)
	}

	return coaches, nil
}
