package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSuggester(t *testing.T) {
	s := NewLocalSuggester([]string{
		"chicken", "beef", "chili", "chickpeas", "artichoke",
		"ch1", "ch2", "ch3", "ch4", "ch5", "ch6", "ch7",
	})

	got, err := s.Suggest(context.Background(), "CHI")
	require.NoError(t, err)
	assert.Equal(t, []string{"chicken", "chili", "chickpeas"}, got)

	got, err = s.Suggest(context.Background(), "ch")
	require.NoError(t, err)
	assert.Len(t, got, MaxSuggestions)
}

func TestSuggestionClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/suggestions", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tom", body["query"])

		json.NewEncoder(w).Encode([]string{"tomato", "tomatillo"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := NewSuggestionClient(srv.URL)
	got, err := c.Suggest(context.Background(), "tom")
	require.NoError(t, err)
	assert.Equal(t, []string{"tomato", "tomatillo"}, got)
}

func TestSuggestionClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewSuggestionClient(srv.URL)
	_, err := c.Suggest(context.Background(), "tom")
	assert.Error(t, err)
}

func subRequest(missing ...string) SubstitutionRequest {
	return SubstitutionRequest{
		RecipeID:             "1",
		MissingIngredients:   missing,
		AvailableIngredients: []string{"olive oil"},
	}
}

func TestSubstitutionClientHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/substitutions/suggest", r.URL.Path)

		var req SubstitutionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"marinara sauce"}, req.MissingIngredients)

		json.NewEncoder(w).Encode(SubstitutionResponse{ //nolint:errcheck
			Substitutions: []Substitution{{
				Original: "marinara sauce",
				Suggestions: []SubstituteOption{
					{Substitute: "Passata", ConversionRatio: "1:1", Explanation: "Nearly identical"},
				},
			}},
		})
	}))
	defer srv.Close()

	c := NewSubstitutionClient(srv.URL)
	resp := c.Suggest(context.Background(), subRequest("marinara sauce"))

	require.Len(t, resp.Substitutions, 1)
	require.Len(t, resp.Substitutions[0].Suggestions, 1)
	assert.Equal(t, "Passata", resp.Substitutions[0].Suggestions[0].Substitute)
}

func TestSubstitutionClientFallbackOnTransportError(t *testing.T) {
	c := NewSubstitutionClient("http://127.0.0.1:1") // nothing listening
	resp := c.Suggest(context.Background(), subRequest("marinara sauce", "saffron"))

	require.Len(t, resp.Substitutions, 2)

	marinara := resp.Substitutions[0]
	assert.Equal(t, "marinara sauce", marinara.Original)
	require.Len(t, marinara.Suggestions, 3)
	assert.Equal(t, "Crushed tomatoes + herbs", marinara.Suggestions[0].Substitute)

	// No table entry for saffron: generic options apply.
	saffron := resp.Substitutions[1]
	require.Len(t, saffron.Suggestions, 3)
	assert.Equal(t, "Similar ingredient", saffron.Suggestions[0].Substitute)
}

func TestSubstitutionClientFallbackOnSchemaViolation(t *testing.T) {
	cases := map[string]any{
		"empty substitutions":  SubstitutionResponse{},
		"missing original":     map[string]any{"substitutions": []any{map[string]any{"suggestions": []any{map[string]any{"substitute": "x"}}}}},
		"empty suggestions":    map[string]any{"substitutions": []any{map[string]any{"original": "fresh dill", "suggestions": []any{}}}},
		"empty substitute":     map[string]any{"substitutions": []any{map[string]any{"original": "fresh dill", "suggestions": []any{map[string]any{"substitute": ""}}}}},
		"not json at all":      "plain text",
		"too many entries":     map[string]any{"substitutions": []any{map[string]any{"original": "a", "suggestions": []any{map[string]any{"substitute": "x"}}}, map[string]any{"original": "b", "suggestions": []any{map[string]any{"substitute": "y"}}}}},
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if s, ok := payload.(string); ok {
					w.Write([]byte(s)) //nolint:errcheck
					return
				}
				json.NewEncoder(w).Encode(payload) //nolint:errcheck
			}))
			defer srv.Close()

			c := NewSubstitutionClient(srv.URL)
			resp := c.Suggest(context.Background(), subRequest("fresh dill"))

			require.Len(t, resp.Substitutions, 1)
			assert.Equal(t, "fresh dill", resp.Substitutions[0].Original)
			assert.Equal(t, "Dried dill", resp.Substitutions[0].Suggestions[0].Substitute)
		})
	}
}

func TestSubstitutionClientCapsOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SubstitutionResponse{ //nolint:errcheck
			Substitutions: []Substitution{{
				Original: "butter",
				Suggestions: []SubstituteOption{
					{Substitute: "a"}, {Substitute: "b"}, {Substitute: "c"}, {Substitute: "d"}, {Substitute: "e"},
				},
			}},
		})
	}))
	defer srv.Close()

	c := NewSubstitutionClient(srv.URL)
	resp := c.Suggest(context.Background(), subRequest("butter"))

	require.Len(t, resp.Substitutions, 1)
	assert.Len(t, resp.Substitutions[0].Suggestions, MaxSubstituteOptions)
}
