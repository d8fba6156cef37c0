package merchantRepo

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

// MongoMerchantRepo implements MerchantRepository using MongoDB.
type MongoMerchantRepo struct {
	coll *mongo.Collection
}

// NewMongoMerchantRepo creates a new instance of MerchantRepository using MongoDB.
func NewMongoMerchantRepo() MerchantRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("merchants")
	repo := &MongoMerchantRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("merchant repo: %v", err))
	}
	return repo
}

func (r *MongoMerchantRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "blocked", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoMerchantRepo) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	var merchant models.Merchant
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&merchant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch merchant with id %s: %w", id, err)
	}
	return &merchant, nil
}

func (r *MongoMerchantRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Merchant, error) {
	result := make(map[string]models.Merchant, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merchants by ids: %w", err)
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var m models.Merchant
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode merchant: %w", err)
		}
		result[m.ID] = m
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return result, nil
}

func (r *MongoMerchantRepo) GetAll(ctx context.Context) ([]models.Merchant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve merchants: %w", err)
	}
	defer cursor.Close(ctx)
	var merchants []models.Merchant
	for cursor.Next(ctx) {
		var m models.Merchant
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	return merchants, nil
}

func (r *MongoMerchantRepo) Create(ctx context.Context, merchant *models.Merchant) error {
	if _, err := r.coll.InsertOne(ctx, merchant); err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

func (r *MongoMerchantRepo) Update(ctx context.Context, merchant *models.Merchant) error {
	filter := bson.M{"id": merchant.ID}
	update := bson.M{"$set": merchant}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update merchant with id %s: %w", merchant.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoMerchantRepo) SetBlocked(ctx context.Context, id string, blocked bool) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"blocked": blocked, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set blocked=%v for merchant %s: %w", blocked, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
