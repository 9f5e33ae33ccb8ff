package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"happymeals/internal/cache"
	"happymeals/internal/catalog"
	"happymeals/internal/chatbot"
	"happymeals/internal/config"
	"happymeals/internal/db"
	"happymeals/internal/logger"
	"happymeals/internal/offers"
	"happymeals/internal/restaurant"
	"happymeals/internal/router"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	// ───────────────────────── CONFIG ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(cfg.Database.URL)
	if err != nil {
		logger.Fatal("Postgres connection failed", zap.Error(err))
	}
	defer pgDB.Close()

	// ───────────────────────── CACHE ─────────────────────────
	store, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Addr, cfg.Cache.TTL)
	if err != nil {
		logger.Fatal("cache init failed", zap.Error(err))
	}
	if store != nil {
		defer store.Close()
	}

	// ───────────────────────── REPOS ─────────────────────────
	catalogRepo := catalog.NewPostgresRepository(pgDB)
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	restaurantService := restaurant.NewService(restaurantRepo, catalogService)
	offerService := offers.NewService(catalogRepo)
	chatbotService := chatbot.NewService(catalogService, store, cfg.Chatbot.ComboCount)

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	r := router.New(router.Handlers{
		Restaurant: restaurant.NewHandler(restaurantService),
		Catalog:    catalog.NewHandler(catalogService),
		Chatbot:    chatbot.NewHandler(chatbotService),
		Offers:     offers.NewHandler(offerService, catalogService),
	})

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("API running",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.App.Env),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// ───────────────────────── SHUTDOWN ─────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Server exited")
}
