package main

import (
	"context"
	"log"
	"time"

	"ongkir-api/internal/core/cache"
	"ongkir-api/internal/core/config"
	"ongkir-api/internal/core/logger"
	"ongkir-api/internal/core/server"
	geoadapter "ongkir-api/internal/features/geo/adapters"
	geohandler "ongkir-api/internal/features/geo/handler"
	geoservice "ongkir-api/internal/features/geo/service"
	historyadapter "ongkir-api/internal/features/history/adapters"
	historyhandler "ongkir-api/internal/features/history/handler"
	historyservice "ongkir-api/internal/features/history/service"
	rateadapter "ongkir-api/internal/features/rates/adapters"
	ratehandler "ongkir-api/internal/features/rates/handler"
	rateservice "ongkir-api/internal/features/rates/service"
	sessionadapter "ongkir-api/internal/features/session/adapters"
	sessionhandler "ongkir-api/internal/features/session/handler"
	sessionservice "ongkir-api/internal/features/session/service"

	"go.uber.org/zap"
)

// @title Ongkir API
// @version 1.0
// @description Indonesian shipping cost calculator backed by a RajaOngkir-style rate provider.
// @contact.name API Support
// @contact.email support@ongkir-api.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize Redis store and run Health Check
	store, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer store.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Geo catalog
	geoAdapter := geoadapter.NewRajaOngkirAdapter(cfg.RajaOngkir, cfg.HTTPTimeout)
	catalogService := geoservice.NewCatalogService(geoAdapter)
	catalogHandler := geohandler.NewCatalogHandler(catalogService)

	// Session store
	sessionRepo := sessionadapter.NewRedisSessionRepository(store)
	sessionService := sessionservice.NewSessionService(sessionRepo, cfg.Session.LoginDelay)
	sessionHandler := sessionhandler.NewSessionHandler(sessionService)

	// History journal
	historyRepo := historyadapter.NewRedisHistoryRepository(store)
	historyService := historyservice.NewHistoryService(historyRepo)
	historyHandler := historyhandler.NewHistoryHandler(historyService, sessionService)

	// Rate lookup, recording into the history journal
	rateAdapter := rateadapter.NewRajaOngkirAdapter(cfg.RajaOngkir, cfg.HTTPTimeout)
	rateService := rateservice.NewRateService(rateAdapter, historyService)
	rateHandler := ratehandler.NewRateHandler(rateService, sessionService)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/provinces", catalogHandler.ListProvinces)
	srv.App.Get("/cities", catalogHandler.ListCities)
	srv.App.Post("/shipping/cost", rateHandler.Calculate)
	srv.App.Get("/history", historyHandler.List)
	srv.App.Delete("/history", historyHandler.Clear)
	srv.App.Post("/auth/login", sessionHandler.Login)
	srv.App.Post("/auth/register", sessionHandler.Register)
	srv.App.Post("/auth/logout", sessionHandler.Logout)
	srv.App.Get("/auth/me", sessionHandler.Current)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
