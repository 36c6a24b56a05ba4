package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/catalog"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/chat"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/config"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/knowledge"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/llm"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/search"
	"github.com/Mirakulix/GuSp-Planungs-Assistent/internal/tools"
)

// services bundles the wired application components shared by the
// server and MCP commands.
type services struct {
	cfg          *config.Config
	logger       zerolog.Logger
	store        *catalog.Store
	gateway      *llm.Gateway
	search       *search.Service
	knowledge    *knowledge.Service
	registry     *tools.Registry
	orchestrator *chat.Orchestrator
}

// newLogger builds the process logger. Everything goes to stderr so
// stdio transports (MCP) keep stdout clean.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// buildServices loads the config and wires the full service graph.
func buildServices(ctx context.Context) (*services, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger()

	store := catalog.NewSeededStore()
	if cfg.CatalogFile != "" {
		if err := store.LoadFile(cfg.CatalogFile); err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", cfg.CatalogFile, err)
		}
	}

	gateway := llm.NewGateway(cfg, logger)
	if !gateway.IsAvailable() {
		logger.Warn().Msg("Azure OpenAI not configured, chat runs in fallback mode")
	}

	searchSvc := search.NewService(store, gateway, logger)
	knowledgeSvc := knowledge.NewService(ctx, gateway, logger)
	registry := tools.NewRegistry(searchSvc, knowledgeSvc, logger)
	memory := chat.NewMemory(cfg.HistoryLimit)
	orch := chat.NewOrchestrator(gateway, registry, memory, logger)

	return &services{
		cfg:          cfg,
		logger:       logger,
		store:        store,
		gateway:      gateway,
		search:       searchSvc,
		knowledge:    knowledgeSvc,
		registry:     registry,
		orchestrator: orch,
	}, nil
}
