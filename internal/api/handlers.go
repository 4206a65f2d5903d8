package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/recipeadjuster/recipefinder/internal/cache"
	"github.com/recipeadjuster/recipefinder/internal/catalog"
	"github.com/recipeadjuster/recipefinder/internal/clients"
	"github.com/recipeadjuster/recipefinder/internal/ingredients"
	"github.com/recipeadjuster/recipefinder/internal/match"
	"github.com/recipeadjuster/recipefinder/internal/session"
)

type Deps struct {
	Catalog       []catalog.Recipe
	Synonyms      catalog.Synonyms
	Cache         cache.Store
	Ingredients   *ingredients.Store
	Sessions      *session.Store
	Substitutions *clients.SubstitutionClient
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)

	r.Post("/search", handleSearch(d))
	r.Get("/recipes", handleListRecipes(d))
	r.Get("/recipes/saved", handleListSavedRecipes(d))
	r.Get("/recipes/{id}", handleGetRecipe(d))
	r.Put("/recipes/{id}/saved", handleSaveRecipe(d))
	r.Delete("/recipes/{id}/saved", handleUnsaveRecipe(d))

	r.Get("/ingredients", handleGetIngredients(d))
	r.Post("/ingredients", handleAddIngredient(d))
	r.Delete("/ingredients", handleClearIngredients(d))
	r.Delete("/ingredients/{name}", handleRemoveIngredient(d))

	r.Get("/suggestions", handleSuggestions(d))
	r.Post("/substitutions", handleSubstitutions(d))

	r.Get("/cache/recipes", handleCachedRecipes(d))
	r.Get("/cache/pending", handlePendingSync(d))
	r.Delete("/cache", handleClearCache(d))

	r.Get("/session", handleGetSession(d))
	r.Post("/session", handleLogin(d))
	r.Delete("/session", handleLogout(d))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

type searchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// handleSearch scores the catalog against the posted ingredient list.
// An absent or empty list falls back to the user's current submitted
// ingredients, matching the flow where the search page reads the
// persisted selection.
func handleSearch(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				jsonError(w, "invalid request body", http.StatusBadRequest)
				return
			}
		}

		userIngredients := req.Ingredients
		if len(userIngredients) == 0 {
			userIngredients = d.Ingredients.Snapshot().Submitted
		}

		jsonOK(w, match.Rank(userIngredients, d.Catalog, d.Synonyms))
	}
}

func handleListRecipes(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, d.Catalog)
	}
}

// handleGetRecipe serves a recipe detail, preferring the offline cache
// and falling back to the built-in catalog with a write-through.
func handleGetRecipe(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		recipe, err := d.Cache.CachedRecipe(r.Context(), id)
		if err == nil && recipe != nil {
			jsonOK(w, recipe)
			return
		}

		detail := catalog.DetailByID(id)
		if detail == nil {
			jsonError(w, "recipe not found", http.StatusNotFound)
			return
		}

		if _, err := d.Cache.CacheRecipe(r.Context(), *detail); err != nil {
			slog.Error("api: write-through cache", "id", id, "error", err)
		}
		jsonOK(w, detail)
	}
}

// savedRecipesKey is the preference entry holding the user's bookmarks.
const savedRecipesKey = "savedRecipes"

type savedRecipe struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine"`
	Time    string `json:"time"`
	Image   string `json:"image"`
}

func loadSavedRecipes(r *http.Request, d Deps) ([]savedRecipe, error) {
	var saved []savedRecipe
	ok, err := d.Cache.Preference(r.Context(), savedRecipesKey, &saved)
	if err != nil {
		return nil, err
	}
	if !ok || saved == nil {
		saved = []savedRecipe{}
	}
	return saved, nil
}

func handleListSavedRecipes(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		saved, err := loadSavedRecipes(r, d)
		if err != nil {
			jsonError(w, "listing saved recipes failed", http.StatusInternalServerError)
			return
		}
		jsonOK(w, saved)
	}
}

// handleSaveRecipe bookmarks a recipe. Idempotent: saving an already
// saved recipe changes nothing.
func handleSaveRecipe(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		detail := catalog.DetailByID(id)
		if detail == nil {
			jsonError(w, "recipe not found", http.StatusNotFound)
			return
		}

		saved, err := loadSavedRecipes(r, d)
		if err != nil {
			jsonError(w, "loading saved recipes failed", http.StatusInternalServerError)
			return
		}
		for _, s := range saved {
			if s.ID == id {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		saved = append(saved, savedRecipe{
			ID:      detail.ID,
			Name:    detail.Title,
			Cuisine: detail.Cuisine,
			Time:    fmt.Sprintf("%d min", detail.PrepMinutes+detail.CookMinutes),
			Image:   detail.Image,
		})
		if err := d.Cache.SavePreference(r.Context(), savedRecipesKey, saved); err != nil {
			jsonError(w, "saving recipe failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleUnsaveRecipe(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		saved, err := loadSavedRecipes(r, d)
		if err != nil {
			jsonError(w, "loading saved recipes failed", http.StatusInternalServerError)
			return
		}
		kept := make([]savedRecipe, 0, len(saved))
		for _, s := range saved {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) != len(saved) {
			if err := d.Cache.SavePreference(r.Context(), savedRecipesKey, kept); err != nil {
				jsonError(w, "saving recipe failed: "+err.Error(), http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGetIngredients(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, d.Ingredients.Snapshot())
	}
}

type addIngredientRequest struct {
	Name string `json:"name"`
}

func handleAddIngredient(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addIngredientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		name := ingredients.Normalize(req.Name)
		if name == "" {
			jsonError(w, "name is required", http.StatusBadRequest)
			return
		}
		// Early rejection for the client; the store enforces the same
		// limit on its dispatch loop.
		if len(d.Ingredients.Snapshot().Submitted) >= ingredients.MaxSubmitted {
			jsonError(w, "maximum 20 ingredients allowed", http.StatusUnprocessableEntity)
			return
		}

		d.Ingredients.Dispatch(ingredients.AddIngredient{Name: name})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"name": name}) //nolint:errcheck
	}
}

func handleRemoveIngredient(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Ingredients.Dispatch(ingredients.RemoveIngredient{Name: chi.URLParam(r, "name")})
		w.WriteHeader(http.StatusAccepted)
	}
}

func handleClearIngredients(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Ingredients.Dispatch(ingredients.ClearIngredients{})
		w.WriteHeader(http.StatusAccepted)
	}
}

// handleSuggestions dispatches a debounced suggestion lookup and
// returns the current state. Clients poll GET /ingredients for the
// result once the lookup lands; rapid repeated queries collapse into a
// single upstream call.
func handleSuggestions(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if len(q) < 2 {
			jsonError(w, "q must be at least 2 characters", http.StatusBadRequest)
			return
		}

		d.Ingredients.Dispatch(ingredients.LoadSuggestions{Query: q})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(d.Ingredients.Snapshot()) //nolint:errcheck
	}
}

func handleSubstitutions(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clients.SubstitutionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if len(req.MissingIngredients) == 0 {
			jsonError(w, "missingIngredients is required", http.StatusBadRequest)
			return
		}

		jsonOK(w, d.Substitutions.Suggest(r.Context(), req))
	}
}

func handleCachedRecipes(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := d.Cache.CachedRecipes(r.Context())
		if err != nil {
			jsonError(w, "listing cached recipes failed", http.StatusInternalServerError)
			return
		}
		if recipes == nil {
			recipes = []catalog.RecipeDetail{}
		}
		jsonOK(w, recipes)
	}
}

func handlePendingSync(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ops, err := d.Cache.PendingSync(r.Context())
		if err != nil {
			jsonError(w, "listing pending sync failed", http.StatusInternalServerError)
			return
		}
		if ops == nil {
			ops = []cache.PendingOp{}
		}
		jsonOK(w, ops)
	}
}

func handleClearCache(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Cache.ClearAll(r.Context()); err != nil {
			jsonError(w, "clearing cache failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type sessionResponse struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

func handleGetSession(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, token, ok := d.Sessions.Current(r.Context())
		if !ok {
			jsonError(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		jsonOK(w, sessionResponse{User: user, Token: token})
	}
}

type loginRequest struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

func handleLogin(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.User.ID == "" || req.Token == "" {
			jsonError(w, "user.id and token are required", http.StatusBadRequest)
			return
		}

		if err := d.Sessions.Save(r.Context(), req.User, req.Token); err != nil {
			jsonError(w, "saving session failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

// handleLogout drops the session and then the entire offline cache; a
// half-cleared cache would leak one user's data into the next session.
func handleLogout(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Sessions.Clear(r.Context()); err != nil {
			jsonError(w, "clearing session failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if err := d.Cache.ClearAll(r.Context()); err != nil {
			jsonError(w, "clearing cache failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
