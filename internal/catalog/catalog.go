// Package catalog holds the fixed recipe data the discovery features
// operate on: ten recipe summaries for search, full per-recipe details
// for the detail view, the ingredient synonym table, and the known
// ingredient list used for autocomplete suggestions.
//
// All data is defined at build time and immutable at runtime. Callers
// must not mutate the returned slices.
package catalog

type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Thumbnail   string   `json:"thumbnail"`
	Cuisine     string   `json:"cuisine"`
	Difficulty  string   `json:"difficulty"`
	PrepMinutes int      `json:"prep_minutes"`
	Ingredients []string `json:"ingredients"`
}

type DetailIngredient struct {
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Available bool   `json:"available"`
}

type Nutrition struct {
	Calories int    `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

type RecipeDetail struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Image        string             `json:"image"`
	Description  string             `json:"description"`
	PrepMinutes  int                `json:"prep_minutes"`
	CookMinutes  int                `json:"cook_minutes"`
	Servings     int                `json:"servings"`
	Difficulty   string             `json:"difficulty"`
	Cuisine      string             `json:"cuisine"`
	Ingredients  []DetailIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Nutrition    Nutrition          `json:"nutrition"`
}

// Recipes returns the full catalog of recipe summaries in canonical order.
func Recipes() []Recipe {
	return recipes
}

// DetailByID returns the full detail for a recipe, or nil if unknown.
func DetailByID(id string) *RecipeDetail {
	d, ok := details[id]
	if !ok {
		return nil
	}
	return &d
}

// KnownIngredients returns the ingredient vocabulary used for local
// autocomplete suggestions.
func KnownIngredients() []string {
	return knownIngredients
}

var recipes = []Recipe{
	{
		ID:          "1",
		Title:       "Classic Chicken Parmesan",
		Thumbnail:   "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?w=400&h=300&fit=crop",
		Cuisine:     "Italian",
		Difficulty:  "Medium",
		PrepMinutes: 45,
		Ingredients: []string{"chicken", "parmesan", "tomato", "basil", "breadcrumbs", "egg", "flour", "olive oil"},
	},
	{
		ID:          "2",
		Title:       "Garlic Butter Shrimp Pasta",
		Thumbnail:   "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=400&h=300&fit=crop",
		Cuisine:     "Italian",
		Difficulty:  "Easy",
		PrepMinutes: 30,
		Ingredients: []string{"shrimp", "pasta", "garlic", "butter", "parsley", "lemon", "olive oil"},
	},
	{
		ID:          "3",
		Title:       "Beef Stir Fry with Vegetables",
		Thumbnail:   "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop",
		Cuisine:     "Asian",
		Difficulty:  "Easy",
		PrepMinutes: 25,
		Ingredients: []string{"beef", "broccoli", "carrot", "soy sauce", "ginger", "garlic", "sesame oil"},
	},
	{
		ID:          "4",
		Title:       "Margherita Pizza",
		Thumbnail:   "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=400&h=300&fit=crop",
		Cuisine:     "Italian",
		Difficulty:  "Medium",
		PrepMinutes: 60,
		Ingredients: []string{"flour", "tomato", "mozzarella", "basil", "olive oil", "yeast", "salt"},
	},
	{
		ID:          "5",
		Title:       "Greek Salad with Grilled Chicken",
		Thumbnail:   "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=400&h=300&fit=crop",
		Cuisine:     "Greek",
		Difficulty:  "Easy",
		PrepMinutes: 20,
		Ingredients: []string{"chicken", "cucumber", "tomato", "feta", "olive", "onion", "olive oil", "lemon"},
	},
	{
		ID:          "6",
		Title:       "Vegetable Curry",
		Thumbnail:   "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?w=400&h=300&fit=crop",
		Cuisine:     "Indian",
		Difficulty:  "Medium",
		PrepMinutes: 40,
		Ingredients: []string{"potato", "carrot", "peas", "coconut milk", "curry powder", "onion", "garlic", "ginger"},
	},
	{
		ID:          "7",
		Title:       "Grilled Salmon with Lemon",
		Thumbnail:   "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=400&h=300&fit=crop",
		Cuisine:     "American",
		Difficulty:  "Easy",
		PrepMinutes: 25,
		Ingredients: []string{"salmon", "lemon", "dill", "garlic", "olive oil", "salt", "pepper"},
	},
	{
		ID:          "8",
		Title:       "Mushroom Risotto",
		Thumbnail:   "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=400&h=300&fit=crop",
		Cuisine:     "Italian",
		Difficulty:  "Medium",
		PrepMinutes: 45,
		Ingredients: []string{"rice", "mushroom", "parmesan", "butter", "onion", "garlic", "white wine", "broth"},
	},
	{
		ID:          "9",
		Title:       "Tacos al Pastor",
		Thumbnail:   "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=400&h=300&fit=crop",
		Cuisine:     "Mexican",
		Difficulty:  "Medium",
		PrepMinutes: 35,
		Ingredients: []string{"pork", "pineapple", "onion", "cilantro", "lime", "tortilla", "achiote"},
	},
	{
		ID:          "10",
		Title:       "Tom Yum Soup",
		Thumbnail:   "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?w=400&h=300&fit=crop",
		Cuisine:     "Thai",
		Difficulty:  "Medium",
		PrepMinutes: 30,
		Ingredients: []string{"shrimp", "mushroom", "lemongrass", "lime", "chili", "fish sauce", "galangal"},
	},
}

// knownIngredients is the vocabulary served by the local suggester.
var knownIngredients = []string{
	"chicken", "beef", "pork", "fish", "shrimp", "tofu",
	"rice", "pasta", "bread", "flour", "eggs", "milk",
	"cheese", "butter", "olive oil", "garlic", "onion",
	"tomato", "potato", "carrot", "broccoli", "spinach",
	"bell pepper", "mushroom", "zucchini", "cucumber",
	"lettuce", "basil", "oregano", "thyme", "rosemary",
	"salt", "pepper", "sugar", "honey", "soy sauce",
	"vinegar", "lemon", "lime", "ginger", "chili",
}
