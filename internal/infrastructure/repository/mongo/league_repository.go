package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rifqialifauzan/football-data-service/internal/domain/league"
)

type LeagueRepository struct {
	coll *mongo.Collection
}

func NewLeagueRepository(coll *mongo.Collection) *LeagueRepository {
	return &LeagueRepository{coll: coll}
}

func (r *LeagueRepository) Insert(ctx context.Context, item league.League) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validate league: %w", err)
	}

	if _, err := r.coll.InsertOne(ctx, newLeagueDocument(item)); err != nil {
		return fmt.Errorf("insert league id=%d: %w", item.ID, err)
	}

	return nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find leagues: %w", err)
	}

	var docs []leagueDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode leagues: %w", err)
	}

	out := make([]league.League, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	var doc leagueDocument
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return league.League{}, false, nil
	}
	if err != nil {
		return league.League{}, false, fmt.Errorf("find league code=%s: %w", code, err)
	}

	return doc.toDomain(), true, nil
}
