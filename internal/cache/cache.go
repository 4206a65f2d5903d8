// Package cache is the offline store for recipe details, the user's
// ingredient list, preferences, and the pending-sync queue. All
// persisted entities live in four sibling tables under one SQLite
// connection, so multi-table operations like ClearAll are atomic.
//
// Read failures are logged and reported as "nothing found"; write
// failures are returned to the caller so the initiating action can
// react.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/recipeadjuster/recipefinder/internal/catalog"
)

const (
	// MaxCachedRecipes caps the recipes table. When the cap is reached
	// a new insert first evicts the oldest EvictCount records.
	MaxCachedRecipes = 100

	// EvictCount is 20% of the cap, removed in one batch under
	// capacity pressure.
	EvictCount = MaxCachedRecipes / 5

	// ExpiryAge is how long a cached recipe stays readable.
	ExpiryAge = 7 * 24 * time.Hour
)

// Operation is the kind of a queued sync intent.
type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Entity is the record type a queued sync intent applies to.
type Entity string

const (
	EntityRecipe     Entity = "recipe"
	EntityIngredient Entity = "ingredient"
	EntityPreference Entity = "preference"
)

// PendingOp is one queued offline mutation awaiting synchronization.
type PendingOp struct {
	ID         int64           `json:"id"`
	Op         Operation       `json:"operation"`
	Entity     Entity          `json:"entity"`
	Payload    json.RawMessage `json:"payload"`
	QueuedAt   time.Time       `json:"queued_at"`
	RetryCount int             `json:"retry_count"`
}

// Store is the storage gateway every component depends on. Nothing
// outside this package touches the database directly; tests substitute
// an in-memory database behind the same interface.
type Store interface {
	// CacheRecipe upserts a recipe detail with a fresh cached-at
	// timestamp, evicting the oldest records first if the table is at
	// capacity. Returns the recipe's identifier.
	CacheRecipe(ctx context.Context, recipe catalog.RecipeDetail) (string, error)

	// CachedRecipe returns the recipe if present and not expired,
	// nil otherwise.
	CachedRecipe(ctx context.Context, id string) (*catalog.RecipeDetail, error)

	// CachedRecipes returns up to MaxCachedRecipes non-expired recipes,
	// most recently cached first.
	CachedRecipes(ctx context.Context) ([]catalog.RecipeDetail, error)

	// ClearExpiredRecipes deletes recipes older than ExpiryAge and
	// returns the number deleted.
	ClearExpiredRecipes(ctx context.Context) (int64, error)

	// SaveIngredients replaces the stored ingredient list wholesale.
	SaveIngredients(ctx context.Context, names []string) error

	// Ingredients returns the stored list in insertion order.
	Ingredients(ctx context.Context) ([]string, error)

	// SavePreference upserts one key with a fresh updated-at timestamp.
	SavePreference(ctx context.Context, key string, value any) error

	// Preference unmarshals the stored value into out. The bool is
	// false when the key is absent.
	Preference(ctx context.Context, key string, out any) (bool, error)

	// QueuePendingSync appends a sync intent with retry count zero and
	// returns the generated identifier.
	QueuePendingSync(ctx context.Context, op Operation, entity Entity, payload any) (int64, error)

	// PendingSync returns all queued intents, oldest first.
	PendingSync(ctx context.Context) ([]PendingOp, error)

	// ClearPendingSync deletes one intent by id; no-op if absent.
	ClearPendingSync(ctx context.Context, id int64) error

	// IncrementSyncRetry bumps one intent's retry counter atomically;
	// no-op if absent.
	IncrementSyncRetry(ctx context.Context, id int64) error

	// ClearAll empties all four tables in one transaction.
	ClearAll(ctx context.Context) error
}
