package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mswatii/shoecard/internal/api"
	"github.com/mswatii/shoecard/internal/catalog"
	"github.com/mswatii/shoecard/internal/config"
	"github.com/mswatii/shoecard/internal/database"
	"github.com/mswatii/shoecard/internal/logging"
	"github.com/mswatii/shoecard/internal/store"
	"github.com/mswatii/shoecard/internal/theme"
)

func main() {
	// Load environment variables from .env file
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !envLoaded {
		logger.Warn(".env file not found or cannot be loaded")
	}

	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		logger.Fatal("Failed to load theme", zap.Error(err))
	}

	ctx := context.Background()

	// Postgres when configured, otherwise an in-memory catalog
	var st store.Store
	if cfg.Database.Enabled() {
		db, err := database.NewDatabase(ctx, cfg.Database.ConnString())
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		// Create tables if they don't exist
		if err := db.CreateTables(ctx); err != nil {
			logger.Fatal("Failed to create tables", zap.Error(err))
		}
		st = db
	} else {
		logger.Info("DB_HOST not set, using in-memory store")
		st = store.NewMemory()
	}

	if cfg.RedisURL != "" {
		cached, err := store.NewCached(ctx, st, cfg.RedisURL, cfg.CacheTTL, logger)
		if err != nil {
			logger.Warn("Redis unavailable, serving without cache", zap.Error(err))
		} else {
			defer cached.Close()
			st = cached
		}
	}

	importer := catalog.NewImporter(st, cfg.CatalogSource, logger)

	// Import on startup unless SKIP_INITIAL_IMPORT is set
	if !cfg.SkipInitialImport {
		logger.Info("Starting initial catalog import", zap.String("source", cfg.CatalogSource))
		// Run the import in a goroutine so it doesn't block server startup
		go func() {
			importCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if _, err := importer.Import(importCtx); err != nil {
				logger.Error("Error during initial catalog import", zap.Error(err))
			}
		}()
	} else {
		logger.Info("Skipping initial catalog import (SKIP_INITIAL_IMPORT=true)")
	}

	handler, err := api.NewHandler(st, importer, th, cfg.StaticDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize handler", zap.Error(err))
	}

	logger.Info("Starting server", zap.String("port", cfg.Port))
	requestHandler := api.Recover(api.LogRequests(handler.HandleRequest, logger), logger)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, requestHandler); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
