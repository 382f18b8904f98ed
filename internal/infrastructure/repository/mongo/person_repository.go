package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rifqialifauzan/football-data-service/internal/domain/person"
)

type PersonRepository struct {
	coll *mongo.Collection
}

func NewPersonRepository(coll *mongo.Collection) *PersonRepository {
	return &PersonRepository{coll: coll}
}

func (r *PersonRepository) InsertMany(ctx context.Context, items []person.Person) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]any, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validate person id=%d: %w", item.ID, err)
		}
		docs = append(docs, newPersonDocument(item))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %d people: %w", len(docs), err)
	}

	return nil
}

func (r *PersonRepository) List(ctx context.Context) ([]person.Person, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *PersonRepository) ListByTeam(ctx context.Context, teamID int64) ([]person.Person, error) {
	return r.findMany(ctx, bson.M{"teamId": teamID})
}

func (r *PersonRepository) ListByTeams(ctx context.Context, teamIDs []int64) ([]person.Person, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{"teamId": bson.M{"$in": teamIDs}})
}

func (r *PersonRepository) ListCoaches(ctx context.Context) ([]person.Person, error) {
	return r.findMany(ctx, bson.M{"position": person.PositionCoach})
}

func (r *PersonRepository) findMany(ctx context.Context, filter bson.M) ([]person.Person, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find people %v: %w", filter, err)
	}

	var docs []personDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}

	out := make([]person.Person, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}

	return out, nil
}
