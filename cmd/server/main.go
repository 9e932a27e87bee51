// Package main is the entry point for the jurnalfx trading journal server.
// The application records trades and withdrawals per account, aggregates
// them into performance analytics, imports/exports CSV statements, sizes
// positions, caches a market news feed and optionally asks a generative
// API for trading insights.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jurnalfx/jurnalfx/internal/clients/gemini"
	"github.com/jurnalfx/jurnalfx/internal/clients/rss2json"
	"github.com/jurnalfx/jurnalfx/internal/config"
	"github.com/jurnalfx/jurnalfx/internal/database"
	"github.com/jurnalfx/jurnalfx/internal/modules/accounts"
	accounthandlers "github.com/jurnalfx/jurnalfx/internal/modules/accounts/handlers"
	"github.com/jurnalfx/jurnalfx/internal/modules/analytics"
	analyticshandlers "github.com/jurnalfx/jurnalfx/internal/modules/analytics/handlers"
	"github.com/jurnalfx/jurnalfx/internal/modules/insights"
	insighthandlers "github.com/jurnalfx/jurnalfx/internal/modules/insights/handlers"
	"github.com/jurnalfx/jurnalfx/internal/modules/interchange"
	interchangehandlers "github.com/jurnalfx/jurnalfx/internal/modules/interchange/handlers"
	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
	journalhandlers "github.com/jurnalfx/jurnalfx/internal/modules/journal/handlers"
	"github.com/jurnalfx/jurnalfx/internal/modules/news"
	newshandlers "github.com/jurnalfx/jurnalfx/internal/modules/news/handlers"
	riskhandlers "github.com/jurnalfx/jurnalfx/internal/modules/risk/handlers"
	"github.com/jurnalfx/jurnalfx/internal/scheduler"
	"github.com/jurnalfx/jurnalfx/internal/server"
	"github.com/jurnalfx/jurnalfx/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting jurnalfx")

	// The journal holds real money records, so it gets the ledger profile
	// (FULL synchronous writes).
	db, err := database.New(database.Config{
		Path:    cfg.DatabasePath(),
		Profile: database.ProfileLedger,
		Name:    "journal",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Repositories and services
	accountRepo := accounts.NewRepository(db.Conn(), log)
	tradeRepo := journal.NewRepository(db.Conn(), log)
	journalService := journal.NewService(tradeRepo, accountRepo, log)
	analyticsService := analytics.NewService(tradeRepo, accountRepo, log)
	interchangeService := interchange.NewService(db.Conn(), tradeRepo, log)

	// External clients
	feedClient := rss2json.NewClient(cfg.RSSToJSONURL, cfg.NewsFeedURL, "investing.com", log)
	newsService := news.NewService(feedClient, log)

	geminiClient := gemini.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, log)
	insightService := insights.NewService(geminiClient, tradeRepo, accountRepo, newsService, log)
	if !geminiClient.Configured() {
		log.Warn().Msg("Generative API key not set, insight endpoints will return 503")
	}

	// Background news refresh
	sched := scheduler.New(log)
	refreshJob := news.NewRefreshJob(newsService)
	if err := sched.AddJob(cfg.NewsRefreshSpec, refreshJob); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.NewsRefreshSpec).Msg("Failed to register news refresh job")
	}
	sched.Start()
	if err := sched.RunNow(refreshJob); err != nil {
		log.Warn().Err(err).Msg("Initial news refresh failed")
	}

	srv := server.New(server.Config{
		Log:                 log,
		DB:                  db,
		Port:                cfg.Port,
		DevMode:             cfg.DevMode,
		AccountHandlers:     accounthandlers.NewAccountHandlers(accountRepo, log),
		JournalHandlers:     journalhandlers.NewJournalHandlers(tradeRepo, journalService, log),
		AnalyticsHandlers:   analyticshandlers.NewAnalyticsHandlers(analyticsService, log),
		InterchangeHandlers: interchangehandlers.NewInterchangeHandlers(interchangeService, log),
		RiskHandlers:        riskhandlers.NewRiskHandlers(log),
		NewsHandlers:        newshandlers.NewNewsHandlers(newsService, log),
		InsightHandlers:     insighthandlers.NewInsightHandlers(insightService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Shutdown complete")
}
