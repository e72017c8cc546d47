package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/pocketwatch-io/pocketwatch/internal/ai"
	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/auth"
	"github.com/pocketwatch-io/pocketwatch/internal/cache"
	"github.com/pocketwatch-io/pocketwatch/internal/category"
	categoryStore "github.com/pocketwatch-io/pocketwatch/internal/category/store"
	"github.com/pocketwatch-io/pocketwatch/internal/config"
	"github.com/pocketwatch-io/pocketwatch/internal/database"
	pocketwatchHttp "github.com/pocketwatch-io/pocketwatch/internal/http"
	aiHandler "github.com/pocketwatch-io/pocketwatch/internal/http/ai"
	analyticsHandler "github.com/pocketwatch-io/pocketwatch/internal/http/analytics"
	authHandler "github.com/pocketwatch-io/pocketwatch/internal/http/authapi"
	categoryHandler "github.com/pocketwatch-io/pocketwatch/internal/http/category"
	importHandler "github.com/pocketwatch-io/pocketwatch/internal/http/importcsv"
	matchingHandler "github.com/pocketwatch-io/pocketwatch/internal/http/matching"
	receiptHandler "github.com/pocketwatch-io/pocketwatch/internal/http/receipt"
	txHandler "github.com/pocketwatch-io/pocketwatch/internal/http/transaction"
	"github.com/pocketwatch-io/pocketwatch/internal/importer"
	"github.com/pocketwatch-io/pocketwatch/internal/matching"
	matchingStore "github.com/pocketwatch-io/pocketwatch/internal/matching/store"
	"github.com/pocketwatch-io/pocketwatch/internal/receipt"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
	txStore "github.com/pocketwatch-io/pocketwatch/internal/transaction/store"
	"github.com/pocketwatch-io/pocketwatch/internal/user"
	userStore "github.com/pocketwatch-io/pocketwatch/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	resultCache := cache.New[analytics.Result](cfg.Analytics.CacheTTL)

	cacheManager := cache.NewManager()
	cacheManager.Register(resultCache)
	cacheManager.StartCleanup(cfg.Analytics.SweepInterval)
	defer cacheManager.Stop()

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		userService        = user.NewService(userStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		analyticsService   = analytics.NewService(transactionService, resultCache, cfg.Analytics.EmptyCacheTTL)
		aiService          = ai.NewService(ai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model))
		receiptService     = receipt.NewService(receipt.NewTesseract(), receipt.NewParser())
		importService      = importer.NewService()
		matchingService    = matching.NewService(matchingStore.New(db))
	)

	var (
		authH        = authHandler.NewHandler(userService, tokens)
		transactionH = txHandler.NewHandler(transactionService)
		analyticsH   = analyticsHandler.NewHandler(analyticsService, cfg.Analytics.CacheTTL, cfg.Analytics.EmptyCacheTTL)
		categoryH    = categoryHandler.NewHandler(categoryService)
		receiptH     = receiptHandler.NewHandler(receiptService)
		aiH          = aiHandler.NewHandler(aiService, analyticsService)
		importH      = importHandler.NewHandler(importService, transactionService, categoryService, matchingService)
		matchingH    = matchingHandler.NewHandler(matchingService)
	)

	router := pocketwatchHttp.New(tokens, authH, transactionH, analyticsH, categoryH, receiptH, aiH, importH, matchingH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
