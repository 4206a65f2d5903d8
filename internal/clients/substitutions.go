package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// MaxSubstituteOptions caps how many options are offered per missing
// ingredient.
const MaxSubstituteOptions = 3

type SubstitutionPreferences struct {
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

type SubstitutionRequest struct {
	RecipeID             string                  `json:"recipeId"`
	MissingIngredients   []string                `json:"missingIngredients"`
	AvailableIngredients []string                `json:"availableIngredients"`
	Preferences          SubstitutionPreferences `json:"preferences"`
}

type SubstituteOption struct {
	Substitute      string `json:"substitute"`
	ConversionRatio string `json:"conversionRatio"`
	Explanation     string `json:"explanation"`
}

type Substitution struct {
	Original    string             `json:"original"`
	Suggestions []SubstituteOption `json:"suggestions"`
}

type SubstitutionResponse struct {
	Substitutions []Substitution `json:"substitutions"`
}

type SubstitutionClient struct {
	baseURL string
	http    *http.Client
}

func NewSubstitutionClient(baseURL string) *SubstitutionClient {
	return &SubstitutionClient{baseURL: baseURL, http: &http.Client{}}
}

// Suggest returns substitution options for every missing ingredient in
// the request. It never fails: transport errors, non-200 statuses and
// schema violations all route to the local fallback table, so callers
// always get a deterministic answer.
func (c *SubstitutionClient) Suggest(ctx context.Context, req SubstitutionRequest) SubstitutionResponse {
	resp, err := c.call(ctx, req)
	if err != nil {
		slog.Warn("substitutions: falling back to local table", "error", err)
		return fallbackResponse(req.MissingIngredients)
	}
	return resp
}

func (c *SubstitutionClient) call(ctx context.Context, subReq SubstitutionRequest) (SubstitutionResponse, error) {
	var zero SubstitutionResponse
	if c.baseURL == "" {
		return zero, fmt.Errorf("no substitution endpoint configured")
	}

	body, err := json.Marshal(subReq)
	if err != nil {
		return zero, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/substitutions/suggest", bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("substitution service returned %d", resp.StatusCode)
	}

	var out SubstitutionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if err := validateResponse(out, subReq.MissingIngredients); err != nil {
		return zero, fmt.Errorf("invalid response: %w", err)
	}

	for i := range out.Substitutions {
		if len(out.Substitutions[i].Suggestions) > MaxSubstituteOptions {
			out.Substitutions[i].Suggestions = out.Substitutions[i].Suggestions[:MaxSubstituteOptions]
		}
	}
	return out, nil
}

// validateResponse enforces the response schema strictly. A payload
// that decodes but violates the contract is treated exactly like a
// transport failure.
func validateResponse(resp SubstitutionResponse, missing []string) error {
	if len(resp.Substitutions) == 0 {
		return fmt.Errorf("empty substitutions list")
	}
	if len(resp.Substitutions) > len(missing) {
		return fmt.Errorf("%d substitutions for %d missing ingredients", len(resp.Substitutions), len(missing))
	}
	for _, sub := range resp.Substitutions {
		if sub.Original == "" {
			return fmt.Errorf("substitution with empty original")
		}
		if len(sub.Suggestions) == 0 {
			return fmt.Errorf("no suggestions for %q", sub.Original)
		}
		for _, opt := range sub.Suggestions {
			if opt.Substitute == "" {
				return fmt.Errorf("empty substitute for %q", sub.Original)
			}
		}
	}
	return nil
}

func fallbackResponse(missing []string) SubstitutionResponse {
	subs := make([]Substitution, 0, len(missing))
	for _, ing := range missing {
		subs = append(subs, Substitution{
			Original:    ing,
			Suggestions: FallbackSubstitutes(ing),
		})
	}
	return SubstitutionResponse{Substitutions: subs}
}

// FallbackSubstitutes returns the fixed local options for an
// ingredient, keyed by its lowercased name, or the three generic
// options when no specific entry exists.
func FallbackSubstitutes(ingredient string) []SubstituteOption {
	if opts, ok := fallbackTable[strings.ToLower(strings.TrimSpace(ingredient))]; ok {
		return opts
	}
	return genericFallback
}

var fallbackTable = map[string][]SubstituteOption{
	"marinara sauce": {
		{Substitute: "Crushed tomatoes + herbs", ConversionRatio: "1:1", Explanation: "Similar flavor, add basil and oregano"},
		{Substitute: "Tomato paste + water", ConversionRatio: "1:3", Explanation: "More concentrated, dilute as needed"},
		{Substitute: "Ketchup", ConversionRatio: "1:1", Explanation: "Sweeter alternative, reduce sugar in recipe"},
	},
	"italian seasoning": {
		{Substitute: "Basil + oregano", ConversionRatio: "1:1", Explanation: "Classic Italian herb combination"},
		{Substitute: "Herbes de Provence", ConversionRatio: "1:1", Explanation: "Similar Mediterranean flavor profile"},
		{Substitute: "Thyme + rosemary", ConversionRatio: "1:1", Explanation: "Earthy alternative"},
	},
	"fresh dill": {
		{Substitute: "Dried dill", ConversionRatio: "1:3", Explanation: "Use 1/3 the amount of dried"},
		{Substitute: "Fresh tarragon", ConversionRatio: "1:1", Explanation: "Similar anise-like flavor"},
		{Substitute: "Fresh parsley + fennel seeds", ConversionRatio: "1:1", Explanation: "Mimics dill flavor"},
	},
}

var genericFallback = []SubstituteOption{
	{Substitute: "Similar ingredient", ConversionRatio: "1:1", Explanation: "Use a similar ingredient from the same category"},
	{Substitute: "Omit if optional", ConversionRatio: "N/A", Explanation: "Can be omitted if not essential to the recipe"},
	{Substitute: "Ask for suggestions", ConversionRatio: "N/A", Explanation: "Consult a recipe forum or cooking community"},
}
