package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeadjuster/recipefinder/internal/catalog"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	return NewSQLiteStore(OpenMemory(t))
}

func detail(id string) catalog.RecipeDetail {
	return catalog.RecipeDetail{
		ID:    id,
		Title: "Recipe " + id,
		Ingredients: []catalog.DetailIngredient{
			{Name: "flour", Amount: "1 cup", Available: true},
		},
		Instructions: []string{"mix", "bake"},
		Nutrition:    catalog.Nutrition{Calories: 100, Protein: "2g", Carbs: "20g", Fat: "1g"},
	}
}

func TestCacheRecipeRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CacheRecipe(ctx, detail("42"))
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	got, err := s.CachedRecipe(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Recipe 42", got.Title)
	assert.Equal(t, 100, got.Nutrition.Calories)
}

func TestCacheRecipeIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return first })
	_, err := s.CacheRecipe(ctx, detail("7"))
	require.NoError(t, err)

	updated := detail("7")
	updated.Title = "Recipe 7 v2"
	s.SetClock(func() time.Time { return first.Add(time.Hour) })
	_, err = s.CacheRecipe(ctx, updated)
	require.NoError(t, err)

	all, err := s.CachedRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Recipe 7 v2", all[0].Title)
}

func TestCachedRecipeNotFound(t *testing.T) {
	s := newTestStore(t)

	got, err := s.CachedRecipe(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheExpiry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.SetClock(func() time.Time { return now.Add(-8 * 24 * time.Hour) })
	_, err := s.CacheRecipe(ctx, detail("old"))
	require.NoError(t, err)

	s.SetClock(func() time.Time { return now.Add(-6 * 24 * time.Hour) })
	_, err = s.CacheRecipe(ctx, detail("fresh"))
	require.NoError(t, err)

	s.SetClock(func() time.Time { return now })

	got, err := s.CachedRecipe(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, got, "8-day-old record must be excluded")

	got, err = s.CachedRecipe(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, got, "6-day-old record must be included")

	all, err := s.CachedRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "fresh", all[0].ID)
}

func TestClearExpiredRecipes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		s.SetClock(func() time.Time { return now.Add(-10 * 24 * time.Hour) })
		_, err := s.CacheRecipe(ctx, detail(fmt.Sprintf("old-%d", i)))
		require.NoError(t, err)
	}
	s.SetClock(func() time.Time { return now })
	_, err := s.CacheRecipe(ctx, detail("fresh"))
	require.NoError(t, err)

	n, err := s.ClearExpiredRecipes(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	all, err := s.CachedRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCacheEvictionLeaves81(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= MaxCachedRecipes; i++ {
		i := i
		s.SetClock(func() time.Time { return base.Add(time.Duration(i) * time.Minute) })
		_, err := s.CacheRecipe(ctx, detail(fmt.Sprintf("r%03d", i)))
		require.NoError(t, err)
	}

	s.SetClock(func() time.Time { return base.Add(200 * time.Minute) })
	_, err := s.CacheRecipe(ctx, detail("r101"))
	require.NoError(t, err)

	all, err := s.CachedRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 81)

	ids := make(map[string]bool, len(all))
	for _, r := range all {
		ids[r.ID] = true
	}
	assert.True(t, ids["r101"], "new record must survive")
	assert.True(t, ids["r021"], "oldest retained record must survive")
	assert.False(t, ids["r020"], "20 oldest records must be evicted")
	assert.False(t, ids["r001"])
}

func TestSaveIngredientsReplaces(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveIngredients(ctx, []string{"a", "b"}))
	require.NoError(t, s.SaveIngredients(ctx, []string{"c"}))

	got, err := s.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestIngredientsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := []string{"tomato", "basil", "anchovy", "garlic"}
	require.NoError(t, s.SaveIngredients(ctx, want))

	got, err := s.Ingredients(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreferenceUpsertAndLookup(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SavePreference(ctx, "theme", "dark"))
	require.NoError(t, s.SavePreference(ctx, "theme", "light"))

	var theme string
	ok, err := s.Preference(ctx, "theme", &theme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", theme)

	ok, err = s.Preference(ctx, "missing", &theme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferenceStructuredValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved := []string{"2", "5"}
	require.NoError(t, s.SavePreference(ctx, "savedRecipes", saved))

	var got []string
	ok, err := s.Preference(ctx, "savedRecipes", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestPendingSyncQueueOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for i, entity := range []Entity{EntityRecipe, EntityIngredient, EntityPreference} {
		i := i
		s.SetClock(func() time.Time { return base.Add(time.Duration(i) * time.Second) })
		_, err := s.QueuePendingSync(ctx, OpCreate, entity, map[string]int{"seq": i})
		require.NoError(t, err)
	}

	ops, err := s.PendingSync(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, EntityRecipe, ops[0].Entity)
	assert.Equal(t, EntityIngredient, ops[1].Entity)
	assert.Equal(t, EntityPreference, ops[2].Entity)
	for _, op := range ops {
		assert.Zero(t, op.RetryCount)
	}
}

func TestIncrementSyncRetry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.QueuePendingSync(ctx, OpUpdate, EntityIngredient, []string{"a"})
	require.NoError(t, err)

	require.NoError(t, s.IncrementSyncRetry(ctx, id))
	require.NoError(t, s.IncrementSyncRetry(ctx, id))
	// Absent id is a no-op, not an error.
	require.NoError(t, s.IncrementSyncRetry(ctx, id+999))

	ops, err := s.PendingSync(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, 2, ops[0].RetryCount)
}

func TestIncrementSyncRetryConcurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.QueuePendingSync(ctx, OpUpdate, EntityIngredient, []string{"a"})
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.IncrementSyncRetry(ctx, id))
		}()
	}
	wg.Wait()

	ops, err := s.PendingSync(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, workers, ops[0].RetryCount)
}

func TestClearPendingSync(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.QueuePendingSync(ctx, OpDelete, EntityRecipe, "payload")
	require.NoError(t, err)

	require.NoError(t, s.ClearPendingSync(ctx, id))
	require.NoError(t, s.ClearPendingSync(ctx, id)) // no-op the second time

	ops, err := s.PendingSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CacheRecipe(ctx, detail("1"))
	require.NoError(t, err)
	require.NoError(t, s.SaveIngredients(ctx, []string{"a"}))
	require.NoError(t, s.SavePreference(ctx, "k", "v"))
	_, err = s.QueuePendingSync(ctx, OpCreate, EntityRecipe, "p")
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))

	all, err := s.CachedRecipes(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	ings, err := s.Ingredients(ctx)
	require.NoError(t, err)
	assert.Empty(t, ings)

	var v string
	ok, err := s.Preference(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)

	ops, err := s.PendingSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}
