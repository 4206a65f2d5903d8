// Package match scores the recipe catalog against a user's ingredient
// list. Matching is purely in-memory: user ingredients are expanded
// through the synonym table, each recipe ingredient is tested against
// the expanded set, and recipes are ranked by match percentage.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/recipeadjuster/recipefinder/internal/catalog"
)

type ScoredRecipe struct {
	catalog.Recipe
	MatchPercentage int      `json:"match_percentage"`
	MatchedCount    int      `json:"matched_count"`
	MissingCount    int      `json:"missing_count"`
	Matched         []string `json:"matched_ingredients,omitempty"`
}

// Rank scores every catalog recipe against the user's ingredients and
// returns recipes with at least one match, ranked by match percentage
// descending and fewest missing ingredients as tiebreaker.
//
// Two edge cases return the catalog unscored in original order: an
// empty ingredient list, and an ingredient list that matches nothing
// (the fallback keeps the result page from going blank).
func Rank(userIngredients []string, recipes []catalog.Recipe, synonyms catalog.Synonyms) []ScoredRecipe {
	if len(userIngredients) == 0 {
		return unscored(recipes)
	}

	expanded := make([][]string, 0, len(userIngredients))
	for _, ing := range userIngredients {
		expanded = append(expanded, synonyms.Expand(ing))
	}

	scored := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		s := scoreRecipe(r, expanded)
		if s.MatchedCount > 0 {
			scored = append(scored, s)
		}
	}

	if len(scored) == 0 {
		return unscored(recipes)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchPercentage != scored[j].MatchPercentage {
			return scored[i].MatchPercentage > scored[j].MatchPercentage
		}
		return scored[i].MissingCount < scored[j].MissingCount
	})

	return scored
}

func scoreRecipe(r catalog.Recipe, expanded [][]string) ScoredRecipe {
	matched := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if ingredientMatches(ing, expanded) {
			matched = append(matched, ing)
		}
	}

	total := len(r.Ingredients)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(len(matched)) / float64(total) * 100))
	}

	return ScoredRecipe{
		Recipe:          r,
		MatchPercentage: pct,
		MatchedCount:    len(matched),
		MissingCount:    total - len(matched),
		Matched:         matched,
	}
}

// ingredientMatches reports whether a recipe ingredient matches any
// expanded user term. Three rules apply in order: exact equality,
// substring containment, and word-level comparison of the recipe
// ingredient's tokens.
func ingredientMatches(recipeIngredient string, expanded [][]string) bool {
	lower := strings.ToLower(recipeIngredient)
	words := strings.Fields(lower)

	for _, terms := range expanded {
		for _, term := range terms {
			if lower == term {
				return true
			}
			if strings.Contains(lower, term) {
				return true
			}
			for _, w := range words {
				if w == term || strings.Contains(term, w) {
					return true
				}
			}
		}
	}
	return false
}

func unscored(recipes []catalog.Recipe) []ScoredRecipe {
	out := make([]ScoredRecipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ScoredRecipe{Recipe: r})
	}
	return out
}
