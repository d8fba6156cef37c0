// File: lokapasar/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lokapasar/config"
	"lokapasar/database"
	engagementRepoPkg "lokapasar/database/repository/engagement"
	merchantRepoPkg "lokapasar/database/repository/merchant"
	reelRepoPkg "lokapasar/database/repository/reel"
	"lokapasar/handlers"
	"lokapasar/middleware"
	"lokapasar/routes"
	"lokapasar/services/admin"
	"lokapasar/services/engagement"
	"lokapasar/services/feed"
	"lokapasar/services/stats"
	"lokapasar/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	merchantRepo := merchantRepoPkg.NewMongoMerchantRepo()
	reelRepo := reelRepoPkg.NewMongoReelRepo()
	engagementRepo := engagementRepoPkg.NewMongoEngagementRepo()

	// services.
	feedService := &feed.DefaultFeedService{
		Reels:      reelRepo,
		Merchants:  merchantRepo,
		Cache:      utils.GetCacheClient(),
		MaxPerPage: config.AppConfig.MaxPerPage,
	}
	engagementService := engagement.NewEngagementService(
		engagementRepo,
		reelRepo,
		merchantRepo,
		time.Duration(config.AppConfig.ThrottleWindowSeconds)*time.Second,
	)
	statsService := &stats.DefaultStatsService{
		Events: engagementRepo,
		Reels:  reelRepo,
		Cache:  utils.GetCacheClient(),
	}
	adminService := &admin.DefaultAdminService{
		Merchants:  merchantRepo,
		Reels:      reelRepo,
		Events:     engagementRepo,
		MaxPerPage: config.AppConfig.MaxPerPage,
	}

	feedHandler := handlers.NewFeedHandler(feedService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	statsHandler := handlers.NewStatsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetFeedHandler:         feedHandler.GetFeedHandler,
		GetMerchantFeedHandler: feedHandler.GetMerchantFeedHandler,

		RecordEventHandler: engagementHandler.RecordEventHandler,
		ToggleLikeHandler:  engagementHandler.ToggleLikeHandler,

		GetMerchantStatsHandler: statsHandler.GetMerchantStatsHandler,
		GetReelStatsHandler:     statsHandler.GetReelStatsHandler,

		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
