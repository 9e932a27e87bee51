// Package server provides the HTTP server and routing for the trading journal.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/jurnalfx/jurnalfx/internal/database"
	accounthandlers "github.com/jurnalfx/jurnalfx/internal/modules/accounts/handlers"
	analyticshandlers "github.com/jurnalfx/jurnalfx/internal/modules/analytics/handlers"
	insighthandlers "github.com/jurnalfx/jurnalfx/internal/modules/insights/handlers"
	interchangehandlers "github.com/jurnalfx/jurnalfx/internal/modules/interchange/handlers"
	journalhandlers "github.com/jurnalfx/jurnalfx/internal/modules/journal/handlers"
	newshandlers "github.com/jurnalfx/jurnalfx/internal/modules/news/handlers"
	riskhandlers "github.com/jurnalfx/jurnalfx/internal/modules/risk/handlers"
)

// Config holds server configuration
type Config struct {
	Log     zerolog.Logger
	DB      *database.DB
	Port    int
	DevMode bool

	AccountHandlers     *accounthandlers.AccountHandlers
	JournalHandlers     *journalhandlers.JournalHandlers
	AnalyticsHandlers   *analyticshandlers.AnalyticsHandlers
	InterchangeHandlers *interchangehandlers.InterchangeHandlers
	RiskHandlers        *riskhandlers.RiskHandlers
	NewsHandlers        *newshandlers.NewsHandlers
	InsightHandlers     *insighthandlers.InsightHandlers
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	log    zerolog.Logger
	db     *database.DB
	cfg    Config
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router: chi.NewRouter(),
		log:    cfg.Log.With().Str("component", "server").Logger(),
		db:     cfg.DB,
		cfg:    cfg,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Router exposes the configured router, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	// Module routes are registered flat under /api so that several modules
	// can attach endpoints beneath /accounts/{accountID}/ without prefix
	// conflicts.
	s.router.Route("/api", func(r chi.Router) {
		s.cfg.AccountHandlers.RegisterRoutes(r)
		s.cfg.JournalHandlers.RegisterRoutes(r)
		s.cfg.AnalyticsHandlers.RegisterRoutes(r)
		s.cfg.InterchangeHandlers.RegisterRoutes(r)
		s.cfg.RiskHandlers.RegisterRoutes(r)
		s.cfg.NewsHandlers.RegisterRoutes(r)
		if s.cfg.InsightHandlers != nil {
			s.cfg.InsightHandlers.RegisterRoutes(r)
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
