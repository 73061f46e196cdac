// Forge orchestrator server — provides the HTTP API, runs the task
// governor, and drives multi-role code generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgeproject/forge/pkg/api"
	"github.com/forgeproject/forge/pkg/cleanup"
	"github.com/forgeproject/forge/pkg/config"
	"github.com/forgeproject/forge/pkg/database"
	"github.com/forgeproject/forge/pkg/events"
	"github.com/forgeproject/forge/pkg/llm"
	"github.com/forgeproject/forge/pkg/orchestrator"
	"github.com/forgeproject/forge/pkg/queue"
	"github.com/forgeproject/forge/pkg/store"
	"github.com/forgeproject/forge/pkg/store/entstore"
	"github.com/forgeproject/forge/pkg/store/memstore"
	"github.com/forgeproject/forge/pkg/version"
)

// resolveWorkerID determines the worker identifier for multi-replica
// coordination. Priority: WORKER_ID env > HOSTNAME env > "local".
func resolveWorkerID() string {
	if id := os.Getenv("WORKER_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file", ".env", "Path to an optional .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "path", *envFile)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	workerID := resolveWorkerID()
	slog.Info("Starting forge", "version", version.Full(), "worker_id", workerID)

	ctx := context.Background()

	// 1. Configuration: process settings, codex, templates.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	codex, codexHash, err := config.LoadCodex(cfg.CodexPath)
	if err != nil {
		slog.Error("Failed to load codex", "error", err)
		os.Exit(1)
	}
	slog.Info("Codex loaded", "hash", codexHash[:12], "modes", len(codex.Modes))

	templates, err := config.LoadTemplates(cfg.TemplatesDir)
	if err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}
	slog.Info("Template catalog loaded", "count", templates.Len())

	// 2. Store: Postgres when DATABASE_URL is set, in-memory otherwise.
	caps := store.FileCaps{
		MaxTaskBytes: cfg.Limits.MaxTaskBytes,
		MaxTaskFiles: cfg.Limits.MaxTaskFiles,
	}
	var st store.Store
	if cfg.DatabaseURL != "" {
		dbCfg, err := database.ConfigFromURL(cfg.DatabaseURL)
		if err != nil {
			slog.Error("Failed to parse DATABASE_URL", "error", err)
			os.Exit(1)
		}
		dbClient, err := database.NewClient(ctx, dbCfg)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		st = entstore.New(dbClient.Client, dbClient.DB(), caps)
		slog.Info("Connected to PostgreSQL database")
	} else {
		st = memstore.NewWithCaps(caps)
		slog.Warn("DATABASE_URL not set, using in-memory store; tasks will not survive restarts")
	}

	// 3. Event stream.
	pub := events.NewPublisher(st, events.NewHub())

	// 4. LLM gateway.
	var provider llm.Provider
	switch cfg.LLM.Provider {
	case "openai":
		provider = llm.NewOpenAIProvider(llm.OpenAIConfig{
			APIKey:         cfg.LLM.APIKey,
			BaseURL:        cfg.LLM.BaseURL,
			RequestTimeout: cfg.LLM.Timeout,
		})
	default:
		provider = llm.NewMockProvider()
		slog.Warn("Using mock LLM provider; set LLM_PROVIDER=openai for real generation")
	}
	gateway := llm.NewGateway(provider, llm.GatewayConfig{
		MaxRetries:  cfg.LLM.MaxRetriesPerStep,
		BackoffBase: time.Second,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	})
	slog.Info("LLM gateway initialized", "provider", gateway.Provider(), "model", cfg.LLM.Model)

	// 5. Per-owner limits and the orchestrator.
	quota := queue.NewQuotaKeeper(st, cfg.Limits)
	limiter := queue.NewRateLimiter(st, cfg.Limits)
	orch := orchestrator.New(st, pub, gateway, codex, codexHash, templates, cfg, quota)

	// 6. Governor (before the HTTP server so queued work resumes first).
	governor := queue.NewGovernor(workerID, st, cfg.Governor, orch)
	if err := governor.Start(ctx); err != nil {
		slog.Error("Failed to start governor", "error", err)
		os.Exit(1)
	}

	// 7. Retention.
	cleaner := cleanup.NewService(cfg.Retention, cfg.Workspace, st)
	cleaner.Start(ctx)

	// 8. HTTP server.
	server := api.NewServer(cfg, st, governor, limiter, quota, templates, codex, codexHash, pub)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Forge started successfully",
		"worker_id", workerID,
		"max_concurrent_tasks", cfg.Governor.MaxConcurrentTasks)

	// 9. Wait for shutdown signal or server error.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop claiming work, finish in-flight tasks,
	// then drain HTTP.
	done := make(chan struct{})
	go func() {
		governor.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Governor stopped gracefully")
	case <-time.After(60 * time.Second):
		slog.Warn("Governor shutdown timeout exceeded; in-flight tasks will be orphan-recovered")
	}

	cleaner.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
