package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

const (
	collLeagues = "leagues"
	collTeams   = "teams"
	collPeople  = "people"

	pingTimeout = 5 * time.Second
)

// Store owns one client connection to the document store and hands out
// collection-backed repositories. The query side keeps a single Store for
// the life of the process; each import opens and closes its own.
type Store struct {
	client  *mongo.Client
	leagues *LeagueRepository
	teams   *TeamRepository
	people  *PersonRepository
}

func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect document store: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	db := client.Database(database)

	return &Store{
		client:  client,
		leagues: NewLeagueRepository(db.Collection(collLeagues)),
		teams:   NewTeamRepository(db.Collection(collTeams)),
		people:  NewPersonRepository(db.Collection(collPeople)),
	}, nil
}

func (s *Store) Leagues() league.Repository {
	return s.leagues
}

func (s *Store) Teams() team.Repository {
	return s.teams
}

func (s *Store) People() person.Repository {
	return s.people
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Opener implements usecase.StoreOpener by dialing a fresh connection.
type Opener struct {
	URI      string
	Database string
}

func (o Opener) Open(ctx context.Context) (usecase.ImportStore, error) {
	return Open(ctx, o.URI, o.Database)
}
