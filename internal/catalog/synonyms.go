package catalog

import (
	"fmt"
	"strings"
)

// Synonyms maps an ingredient or category name to equivalent or related
// terms. The table is used symmetrically: a term expands to its listed
// synonyms, and also to every category whose synonym list contains it.
type Synonyms map[string][]string

// Validate checks that every key and synonym is non-empty, trimmed and
// lowercase. Malformed tables are a load-time error so the matcher
// never has to deal with them.
func (s Synonyms) Validate() error {
	for key, terms := range s {
		if err := checkTerm(key); err != nil {
			return fmt.Errorf("synonym key %q: %w", key, err)
		}
		if len(terms) == 0 {
			return fmt.Errorf("synonym key %q: empty synonym list", key)
		}
		for _, t := range terms {
			if err := checkTerm(t); err != nil {
				return fmt.Errorf("synonym key %q: entry %q: %w", key, t, err)
			}
		}
	}
	return nil
}

func checkTerm(t string) error {
	if t == "" {
		return fmt.Errorf("empty term")
	}
	if t != strings.ToLower(strings.TrimSpace(t)) {
		return fmt.Errorf("term must be lowercase and trimmed")
	}
	return nil
}

// Expand returns all terms equivalent to the given user ingredient:
// the normalized term itself, its direct synonyms, and every category
// whose synonym list contains it.
func (s Synonyms) Expand(term string) []string {
	lower := strings.ToLower(strings.TrimSpace(term))
	expanded := []string{lower}
	seen := map[string]bool{lower: true}

	for _, t := range s[lower] {
		if !seen[t] {
			expanded = append(expanded, t)
			seen[t] = true
		}
	}

	for category, terms := range s {
		if seen[category] {
			continue
		}
		for _, t := range terms {
			if t == lower {
				expanded = append(expanded, category)
				seen[category] = true
				break
			}
		}
	}

	return expanded
}

// IngredientSynonyms returns the fixed synonym table used for matching.
func IngredientSynonyms() Synonyms {
	return ingredientSynonyms
}

var ingredientSynonyms = Synonyms{
	"meat":       {"beef", "pork", "chicken", "lamb", "turkey", "veal", "bacon", "ham", "sausage"},
	"beef":       {"meat", "steak", "ground beef", "sirloin"},
	"pork":       {"meat", "bacon", "ham", "sausage"},
	"chicken":    {"meat", "poultry", "turkey"},
	"poultry":    {"chicken", "turkey", "duck"},
	"fish":       {"salmon", "tuna", "cod", "tilapia", "seafood"},
	"seafood":    {"fish", "shrimp", "crab", "lobster", "shellfish", "salmon", "tuna"},
	"shrimp":     {"seafood", "prawns"},
	"pasta":      {"spaghetti", "penne", "linguine", "noodles", "macaroni"},
	"noodles":    {"pasta", "spaghetti", "ramen"},
	"cheese":     {"parmesan", "mozzarella", "cheddar", "feta", "gouda"},
	"parmesan":   {"cheese"},
	"mozzarella": {"cheese"},
	"feta":       {"cheese"},
	"vegetable":  {"carrot", "broccoli", "potato", "onion", "tomato", "pepper", "cucumber"},
	"vegetables": {"carrot", "broccoli", "potato", "onion", "tomato", "pepper", "cucumber"},
	"tomato":     {"vegetable", "tomatoes"},
	"potato":     {"vegetable", "potatoes"},
	"onion":      {"vegetable", "onions"},
	"garlic":     {"vegetable"},
	"rice":       {"grain", "arborio"},
	"grain":      {"rice", "quinoa", "barley"},
	"herb":       {"basil", "parsley", "cilantro", "dill", "oregano", "thyme"},
	"herbs":      {"basil", "parsley", "cilantro", "dill", "oregano", "thyme"},
	"basil":      {"herb"},
	"parsley":    {"herb"},
	"cilantro":   {"herb", "coriander"},
	"oil":        {"olive oil", "vegetable oil", "sesame oil", "coconut oil"},
	"olive oil":  {"oil"},
}
