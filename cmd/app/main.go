package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Aorux01/Neodyme-sub003/internal/catalog"
	"github.com/Aorux01/Neodyme-sub003/internal/config"
	"github.com/Aorux01/Neodyme-sub003/internal/database"
	"github.com/Aorux01/Neodyme-sub003/internal/database/postgres"
	"github.com/Aorux01/Neodyme-sub003/internal/expedition"
	"github.com/Aorux01/Neodyme-sub003/internal/handler"
	"github.com/Aorux01/Neodyme-sub003/internal/lootbox"
	"github.com/Aorux01/Neodyme-sub003/internal/mcp"
	"github.com/Aorux01/Neodyme-sub003/internal/operation"
	"github.com/Aorux01/Neodyme-sub003/internal/profile"
	"github.com/Aorux01/Neodyme-sub003/internal/repository"
	"github.com/Aorux01/Neodyme-sub003/internal/server"
)

const (
	catalogCacheSize = 256

	dbMaxConns    = 10
	dbMaxIdleTime = 5 * time.Minute
	dbMaxLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	repo, journal, readiness, err := buildStore(cfg)
	if err != nil {
		slog.Error("Storage initialization failed", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}

	store := profile.NewStore(repo, profile.NewDirTemplates(cfg.TemplatesDir))

	offers, err := catalog.NewCached(
		catalog.NewFileProvider(filepath.Join(cfg.ConfigsDir, "catalog.json")),
		catalogCacheSize,
	)
	if err != nil {
		slog.Error("Catalog initialization failed", "error", err)
		os.Exit(1)
	}

	packs, err := lootbox.NewServiceFromFile(filepath.Join(cfg.ConfigsDir, "droppools.json"))
	if err != nil {
		slog.Error("Drop pool initialization failed", "error", err)
		os.Exit(1)
	}

	expCfg, err := expedition.LoadConfig(filepath.Join(cfg.ConfigsDir, "expeditions.json"))
	if err != nil {
		slog.Error("Expedition config initialization failed", "error", err)
		os.Exit(1)
	}

	registry := operation.NewRegistry(operation.Config{
		Catalog:     offers,
		Lootbox:     packs,
		Expeditions: expedition.NewService(expCfg),
	})

	dispatcher := mcp.NewDispatcher(store, registry, journal)

	reportPendingOperations(journal)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
	}, dispatcher, readiness)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// buildStore selects the profile persistence backend. The file backend
// serves both the profile and journal contracts from one directory tree;
// postgres splits them across tables and reports readiness via pool pings.
func buildStore(cfg *config.Config) (repository.Profile, repository.Journal, handler.ReadinessChecker, error) {
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect: %w", err)
		}
		if err := database.Migrate(pool); err != nil {
			return nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return postgres.NewProfileRepository(pool), postgres.NewJournalRepository(pool), pool, nil
	default:
		fs, err := repository.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("file store: %w", err)
		}
		return fs, fs, handler.AlwaysReady{}, nil
	}
}

// reportPendingOperations logs journal entries left behind by a crash
// mid-commit so operators can inspect the affected profiles.
func reportPendingOperations(journal repository.Journal) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pending, err := journal.PendingOperations(ctx)
	if err != nil {
		slog.Warn("Could not read operation journal", "error", err)
		return
	}
	for _, entry := range pending {
		slog.Warn("Uncommitted operation found in journal",
			"id", entry.ID,
			"account_id", entry.AccountID,
			"operation", entry.Operation,
			"profile_ids", entry.ProfileIDs,
			"started_at", entry.StartedAt)
	}
}
