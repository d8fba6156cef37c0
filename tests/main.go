package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"lokapasar/config"
	"lokapasar/database"
	"lokapasar/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)
	merchantColl := db.Collection("merchants")
	reelColl := db.Collection("reels")
	eventColl := db.Collection("engagement_events")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	for _, coll := range []string{"merchants", "reels", "engagement_events"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	// Fixed shopper point for simulation (Yogyakarta).
	userLat, userLng := -7.7956, 110.3695

	categories := []string{"kuliner", "fashion", "kerajinan"}
	merchantsPerCategory := 10
	totalMerchants := len(categories) * merchantsPerCategory
	reelsPerMerchant := 3

	// Linearly assign distances so that the furthest merchant is at 15 km and
	// the closest at ~0.1 km; a default 10 km radius splits the set.
	maxDistance := 15.0
	minDistance := 0.1
	spacing := (maxDistance - minDistance) / float64(totalMerchants-1)

	var merchants []interface{}
	var reels []interface{}
	merchantCounter := 1

	for _, category := range categories {
		for i := 1; i <= merchantsPerCategory; i++ {
			globalIndex := float64(merchantCounter - 1)
			distanceKm := maxDistance - spacing*globalIndex

			// Random angle (0 to 2π) for positioning within the circle.
			angle := rand.Float64() * 2 * math.Pi

			// Approximate: 1 km ≈ 0.009° latitude; longitude scaled by cos(lat).
			deltaLat := distanceKm * 0.009 * math.Sin(angle)
			deltaLng := distanceKm * 0.009 / math.Cos(userLat*math.Pi/180) * math.Cos(angle)

			now := time.Now()
			merchant := models.Merchant{
				ID:        fmt.Sprintf("umkm-%d", merchantCounter),
				Name:      fmt.Sprintf("%s UMKM %d", category, merchantCounter),
				WhatsApp:  fmt.Sprintf("62812%07d", merchantCounter),
				Address:   "Jl. Malioboro No. 1, Yogyakarta",
				Latitude:  userLat + deltaLat,
				Longitude: userLng + deltaLng,
				CreatedAt: now,
				UpdatedAt: now,
			}
			merchants = append(merchants, merchant)

			for j := 1; j <= reelsPerMerchant; j++ {
				status := models.ReelStatusPublished
				if j == reelsPerMerchant {
					status = models.ReelStatusDraft
				}
				createdAt := now.Add(-time.Duration(j) * time.Hour)
				reel := models.Reel{
					ID:         uuid.NewString(),
					MerchantID: merchant.ID,
					Title:      fmt.Sprintf("%s promo %d-%d", category, merchantCounter, j),
					Caption:    "Promo spesial minggu ini!",
					MediaURL:   fmt.Sprintf("https://cdn.example.com/reels/%d-%d.mp4", merchantCounter, j),
					Status:     status,
					CreatedAt:  createdAt,
					UpdatedAt:  createdAt,
				}
				reels = append(reels, reel)
			}
			merchantCounter++
		}
	}

	if _, err := merchantColl.InsertMany(ctx, merchants); err != nil {
		log.Fatalf("Failed to insert merchants: %v", err)
	}
	reelResult, err := reelColl.InsertMany(ctx, reels)
	if err != nil {
		log.Fatalf("Failed to insert reels: %v", err)
	}

	// Sprinkle some engagement history on the first few reels.
	kinds := []models.EventKind{models.EventView, models.EventLike, models.EventShare, models.EventClickToContact}
	var events []interface{}
	for i, raw := range reels {
		if i >= 10 {
			break
		}
		reel := raw.(models.Reel)
		for _, kind := range kinds {
			n := rand.Intn(5) + 1
			for k := 0; k < n; k++ {
				events = append(events, models.EngagementEvent{
					ID:        uuid.NewString(),
					ReelID:    reel.ID,
					Kind:      kind,
					Actor:     fmt.Sprintf("ip:10.0.%d.%d", i, k),
					CreatedAt: time.Now().Add(-time.Duration(k) * time.Hour),
				})
			}
		}
	}
	if len(events) > 0 {
		if _, err := eventColl.InsertMany(ctx, events); err != nil {
			log.Fatalf("Failed to insert engagement events: %v", err)
		}
	}

	fmt.Printf("Seeded %d merchants, %d reels, %d events\n", len(merchants), len(reelResult.InsertedIDs), len(events))
}
