package engagementRepo

import (
	"context"
	"fmt"
	"time"

	"lokapasar/config"
	"lokapasar/database"
	"lokapasar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEngagementRepo implements EngagementRepository using MongoDB.
type MongoEngagementRepo struct {
	coll *mongo.Collection
}

// NewMongoEngagementRepo creates a new instance of EngagementRepository using MongoDB.
func NewMongoEngagementRepo() EngagementRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("engagement_events")
	repo := &MongoEngagementRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("engagement repo: %v", err))
	}
	return repo
}

func (r *MongoEngagementRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Compound index serving the throttle existence check and the like lookup.
	throttleIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "reelId", Value: 1},
			{Key: "kind", Value: 1},
			{Key: "actor", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reelId", Value: 1}}},
		throttleIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoEngagementRepo) Insert(ctx context.Context, event *models.EngagementEvent) error {
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to insert engagement event: %w", err)
	}
	return nil
}

func (r *MongoEngagementRepo) HasRecent(ctx context.Context, reelID string, kind models.EventKind, actor string, since time.Time) (bool, error) {
	filter := bson.M{
		"reelId":    reelID,
		"kind":      kind,
		"actor":     actor,
		"createdAt": bson.M{"$gte": since},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check recent event: %w", err)
	}
	return count > 0, nil
}

func (r *MongoEngagementRepo) DeleteLike(ctx context.Context, reelID, actor string) (bool, error) {
	filter := bson.M{"reelId": reelID, "kind": models.EventLike, "actor": actor}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete like for reel %s: %w", reelID, err)
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoEngagementRepo) CountByKind(ctx context.Context, reelID string) (map[models.EventKind]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reelId": reelID}}},
		{{Key: "$group", Value: bson.M{"_id": "$kind", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate events for reel %s: %w", reelID, err)
	}
	defer cursor.Close(ctx)

	counts := make(map[models.EventKind]int64)
	for cursor.Next(ctx) {
		var row struct {
			Kind  models.EventKind `bson:"_id"`
			Count int64            `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode count row: %w", err)
		}
		counts[row.Kind] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return counts, nil
}

func (r *MongoEngagementRepo) CountByKindForReels(ctx context.Context, reelIDs []string) (map[string]map[models.EventKind]int64, error) {
	result := make(map[string]map[models.EventKind]int64, len(reelIDs))
	if len(reelIDs) == 0 {
		return result, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"reelId": bson.M{"$in": reelIDs}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"reelId": "$reelId", "kind": "$kind"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate events for reels: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID struct {
				ReelID string           `bson:"reelId"`
				Kind   models.EventKind `bson:"kind"`
			} `bson:"_id"`
			Count int64 `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode count row: %w", err)
		}
		if result[row.ID.ReelID] == nil {
			result[row.ID.ReelID] = make(map[models.EventKind]int64)
		}
		result[row.ID.ReelID][row.ID.Kind] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return result, nil
}

func (r *MongoEngagementRepo) DeleteByReel(ctx context.Context, reelID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"reelId": reelID}); err != nil {
		return fmt.Errorf("failed to delete events for reel %s: %w", reelID, err)
	}
	return nil
}
