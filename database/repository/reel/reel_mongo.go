package reelRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lokapasar/config"
	"lokapasar/database"
	"lokapasar/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReelRepo implements ReelRepository using MongoDB.
type MongoReelRepo struct {
	coll *mongo.Collection
}

// NewMongoReelRepo creates a new instance of ReelRepository using MongoDB.
func NewMongoReelRepo() ReelRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reels")
	repo := &MongoReelRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("reel repo: %v", err))
	}
	return repo
}

func (r *MongoReelRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Compound index covering the visible-feed query plus its sort key.
	feedIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "blocked", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "merchantId", Value: 1}}},
		feedIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoReelRepo) GetByID(ctx context.Context, id string) (*models.Reel, error) {
	var reel models.Reel
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&reel); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch reel with id %s: %w", id, err)
	}
	return &reel, nil
}

func (r *MongoReelRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Reel, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reels: %w", err)
	}
	defer cursor.Close(ctx)
	var reels []models.Reel
	for cursor.Next(ctx) {
		var reel models.Reel
		if err := cursor.Decode(&reel); err != nil {
			return nil, fmt.Errorf("failed to decode reel: %w", err)
		}
		reels = append(reels, reel)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reels, nil
}

func (r *MongoReelRepo) GetPublished(ctx context.Context) ([]models.Reel, error) {
	filter := bson.M{"status": models.ReelStatusPublished, "blocked": false}
	return r.find(ctx, filter)
}

func (r *MongoReelRepo) GetPublishedByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error) {
	filter := bson.M{
		"merchantId": merchantID,
		"status":     models.ReelStatusPublished,
		"blocked":    false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoReelRepo) GetByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"merchantId": merchantID}, opts)
}

func (r *MongoReelRepo) GetAll(ctx context.Context) ([]models.Reel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoReelRepo) Create(ctx context.Context, reel *models.Reel) error {
	if _, err := r.coll.InsertOne(ctx, reel); err != nil {
		return fmt.Errorf("failed to create reel: %w", err)
	}
	return nil
}

func (r *MongoReelRepo) Update(ctx context.Context, reel *models.Reel) error {
	filter := bson.M{"id": reel.ID}
	update := bson.M{"$set": reel}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reel with id %s: %w", reel.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReelRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reel with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReelRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"blocked": blocked, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set blocked=%v for reel %s: %w", blocked, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
