// go_portfolio — portfolio content-management MCP server.
//
// Exposes profile auditing, hiring recommendations, LinkedIn import,
// content export, and score history as MCP tools. Content lives in
// Postgres; score history lives in a local SQLite file.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_portfolio/internal/engine"
	"github.com/anatolykoptev/go_portfolio/internal/portfolio"
	"github.com/anatolykoptev/go_portfolio/internal/portfolioserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_portfolio",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_portfolio",
		Version: version,
	}, nil)

	portfolioserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", portfolioserver.ToolCount))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_portfolio",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DatabaseURL:          env.Str("DATABASE_URL", ""),
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", 5*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 500),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		MaxImportRunes:       env.Int("MAX_IMPORT_RUNES", 4000),
	}
	engine.Init(c)

	// Content store (PostgreSQL). The writer capability is decided once
	// here, not resolved per call.
	if c.DatabaseURL != "" {
		db, err := portfolio.ConnectPortfolioDB(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("content DB init failed, import/export disabled", slog.Any("error", err))
		} else {
			portfolio.SetContentDB(db)
			slog.Info("content DB initialized")
		}
	}

	engine.InitCache(c.RedisURL, c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
