// File: sanocare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sanocare/config"
	"sanocare/cron"
	"sanocare/database"
	adminRepoPkg "sanocare/database/repository/admin"
	bookingRepoPkg "sanocare/database/repository/booking"
	paramedicRepoPkg "sanocare/database/repository/paramedic"
	"sanocare/handlers"
	"sanocare/routes"
	"sanocare/services/admin"
	bookingSvc "sanocare/services/booking"
	"sanocare/services/dispatch"
	"sanocare/services/feed"
	"sanocare/services/geolocation"
	"sanocare/services/notification"
	"sanocare/services/session"
	"sanocare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paramedicRepo := paramedicRepoPkg.NewMongoParamedicRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	noticeQueueRedis := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueue,
	})
	utils.StartHealthMonitor(database.MongoClient, utils.GetSessionCacheClient(), noticeQueueRedis)

	// services.
	bookingService := bookingSvc.NewDefaultBookingService(bookingRepo)

	notifier := notification.NewWhatsAppNotifier()
	noticeQueue := cron.NewNoticeQueue()
	cron.InitNoticeWorker(notifier)

	dispatchService := dispatch.NewDefaultDispatchService(bookingRepo, paramedicRepo, noticeQueue)

	authService := &admin.DefaultAuthService{Repo: adminRepo}

	sessionStore := session.NewStore(&session.RedisKV{Client: utils.GetSessionCacheClient()})

	geocoder := geolocation.NewNominatimGeocoder()

	feedService := feed.NewService(bookingRepo, feed.NewMongoBookingStream(), feed.NewHub())
	feedCtx, stopFeed := context.WithCancel(context.Background())
	go feedService.Run(feedCtx)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, routes.Handlers{
		Booking:     handlers.NewBookingHandler(bookingService),
		Session:     handlers.NewSessionHandler(sessionStore),
		Geolocation: handlers.NewGeolocationHandler(geocoder),
		Ops:         handlers.NewOpsHandler(authService, bookingService, dispatchService, feedService),
		Paramedic:   handlers.NewParamedicHandler(paramedicRepo),
		Feed:        handlers.NewFeedHandler(feedService),
	})

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

	stopFeed()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
