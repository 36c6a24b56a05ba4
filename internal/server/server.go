package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/chat"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/games"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/planning"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
)

// Server is the HTTP API server for the planning assistant.
type Server struct {
	cfg        *config.Config
	gateway    *llm.Gateway
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates the server and mounts all feature routes.
func New(cfg *config.Config, store *catalog.Store, gateway *llm.Gateway, searcher *search.Service, orch *chat.Orchestrator, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		gateway: gateway,
		logger:  logger,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if cfg.AllowAllCORS {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/api/v1/health", s.handleHealth(store))
	r.Get("/api/v1/config/features", s.handleFeatures)

	chat.RegisterRoutes(r, orch, gateway, cfg)
	games.RegisterRoutes(r, store, searcher, cfg.EnableGameSearch)
	planning.RegisterRoutes(r, cfg.EnablePlanning)

	s.router = r
	return s
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) handleHealth(store *catalog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"services": map[string]any{
				"azure_openai": s.gateway.IsAvailable(),
				"game_catalog": store.Count(),
			},
			"features": map[string]bool{
				"chatbot":     s.cfg.EnableChat,
				"game_search": s.cfg.EnableGameSearch,
				"planning":    s.cfg.EnablePlanning,
			},
		})
	}
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{
		"chatbot":                 s.cfg.EnableChat,
		"game_search":             s.cfg.EnableGameSearch,
		"planning":                s.cfg.EnablePlanning,
		"azure_openai_configured": s.cfg.AzureConfigured(),
	})
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("http server listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
