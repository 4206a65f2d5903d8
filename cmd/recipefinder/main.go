package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipeadjuster/recipefinder/internal/api"
	"github.com/recipeadjuster/recipefinder/internal/cache"
	"github.com/recipeadjuster/recipefinder/internal/catalog"
	"github.com/recipeadjuster/recipefinder/internal/clients"
	"github.com/recipeadjuster/recipefinder/internal/config"
	"github.com/recipeadjuster/recipefinder/internal/ingredients"
	"github.com/recipeadjuster/recipefinder/internal/session"
)

const expirySweepInterval = time.Hour

func main() {
	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func run(ctx context.Context, cfg config.Config) error {
	// A malformed synonym table must fail startup, not degrade matching.
	if err := catalog.IngredientSynonyms().Validate(); err != nil {
		return fmt.Errorf("synonym table: %w", err)
	}

	db, err := cache.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store := cache.NewSQLiteStore(db)
	sessions, err := session.NewStore(db)
	if err != nil {
		return err
	}

	var suggester ingredients.Suggester
	if cfg.SuggestionURL != "" {
		suggester = clients.NewSuggestionClient(cfg.SuggestionURL)
	} else {
		suggester = clients.NewLocalSuggester(catalog.KnownIngredients())
	}

	ing := ingredients.New(suggester, store, ingredients.Config{Debounce: cfg.SuggestDebounce})
	defer ing.Close()

	// Restore the submitted list from the previous run.
	if names, err := store.Ingredients(ctx); err == nil && len(names) > 0 {
		ing.Dispatch(ingredients.LoadFromStorageSuccess{Ingredients: names})
		slog.Info("restored ingredients", "count", len(names))
	}

	handler := api.NewRouter(api.Deps{
		Catalog:       catalog.Recipes(),
		Synonyms:      catalog.IngredientSynonyms(),
		Cache:         store,
		Ingredients:   ing,
		Sessions:      sessions,
		Substitutions: clients.NewSubstitutionClient(cfg.SubstitutionURL),
	})

	go sweepExpired(ctx, store)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("recipefinder listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// sweepExpired periodically drops cached recipes past their expiry age
// so the cache does not serve week-old data after a long uptime.
func sweepExpired(ctx context.Context, store cache.Store) {
	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.ClearExpiredRecipes(ctx)
			if err != nil {
				slog.Error("expiry sweep failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("expired recipes cleared", "count", n)
			}
		}
	}
}
