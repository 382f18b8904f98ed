package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rifqialifauzan/football-data-service/internal/domain/team"
)

type TeamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(coll *mongo.Collection) *TeamRepository {
	return &TeamRepository{coll: coll}
}

func (r *TeamRepository) InsertMany(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	docs := make([]any, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("validate team id=%d: %w", item.ID, err)
		}
		docs = append(docs, newTeamDocument(item))
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert %d teams: %w", len(docs), err)
	}

	return nil
}

func (r *TeamRepository) GetByExternalID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.findMany(ctx, bson.M{})
}

// ListByLeague relies on array-contains matching against the league-id set.
func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	return r.findMany(ctx, bson.M{"leaugeId": leagueID})
}

// AppendLeagueID grows the team's league-id set. $addToSet keeps the append
// idempotent: re-adding a known league id leaves the document untouched.
func (r *TeamRepository) AppendLeagueID(ctx context.Context, teamID, leagueID int64) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": teamID},
		bson.M{"$addToSet": bson.M{"leaugeId": leagueID}},
	)
	if err != nil {
		return fmt.Errorf("append league=%d to team=%d: %w", leagueID, teamID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("append league=%d to team=%d: team document missing", leagueID, teamID)
	}

	return nil
}

func (r *TeamRepository) findOne(ctx context.Context, filter bson.M) (team.Team, bool, error) {
	var doc teamDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("find team %v: %w", filter, err)
	}

	return doc.toDomain(), true, nil
}

func (r *TeamRepository) findMany(ctx context.Context, filter bson.M) ([]team.Team, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find teams %v: %w", filter, err)
	}

	var docs []teamDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	out := make([]team.Team, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toDomain())
	}

	return out, nil
}
