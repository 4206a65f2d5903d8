package catalog

var details = map[string]RecipeDetail{
	"1": {
		ID:          "1",
		Title:       "Classic Chicken Parmesan",
		Image:       "https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?w=1200&h=800&fit=crop",
		Description: "A delicious Italian-American dish featuring crispy breaded chicken cutlets topped with rich marinara sauce and melted mozzarella cheese. Perfect for a hearty family dinner.",
		PrepMinutes: 20,
		CookMinutes: 25,
		Servings:    4,
		Difficulty:  "Medium",
		Cuisine:     "Italian",
		Ingredients: []DetailIngredient{
			{Name: "Chicken breast", Amount: "4 pieces", Available: true},
			{Name: "Breadcrumbs", Amount: "1 cup", Available: true},
			{Name: "Parmesan cheese", Amount: "1/2 cup", Available: true},
			{Name: "Mozzarella cheese", Amount: "1 cup", Available: true},
			{Name: "Marinara sauce", Amount: "2 cups", Available: false},
			{Name: "Eggs", Amount: "2", Available: true},
			{Name: "Olive oil", Amount: "1/4 cup", Available: true},
			{Name: "Italian seasoning", Amount: "1 tsp", Available: false},
		},
		Instructions: []string{
			"Preheat oven to 400°F (200°C) and line a baking sheet with parchment paper.",
			"Pound chicken breasts to even thickness (about 1/2 inch) for even cooking.",
			"Set up a breading station: flour in one bowl, beaten eggs in another, and breadcrumb mixture in a third.",
			"Season chicken with salt and pepper, then coat in flour, dip in egg, and press into breadcrumbs.",
			"Heat olive oil in a large oven-safe skillet over medium-high heat until shimmering.",
			"Cook breaded chicken for 3-4 minutes per side until golden brown and crispy.",
			"Top each chicken piece with marinara sauce and a generous amount of mozzarella cheese.",
			"Transfer to oven and bake for 15-20 minutes until cheese is melted and bubbly.",
			"Garnish with fresh basil leaves and serve immediately with pasta or crusty bread.",
		},
		Nutrition: Nutrition{Calories: 520, Protein: "45g", Carbs: "32g", Fat: "22g"},
	},
	"2": {
		ID:          "2",
		Title:       "Garlic Butter Shrimp Pasta",
		Image:       "https://images.unsplash.com/photo-1563379926898-05f4575a45d8?w=1200&h=800&fit=crop",
		Description: "Quick and flavorful pasta dish with succulent shrimp in a rich garlic butter sauce. Ready in 30 minutes!",
		PrepMinutes: 15,
		CookMinutes: 15,
		Servings:    4,
		Difficulty:  "Easy",
		Cuisine:     "Italian",
		Ingredients: []DetailIngredient{
			{Name: "Shrimp", Amount: "1 lb", Available: true},
			{Name: "Pasta", Amount: "12 oz", Available: true},
			{Name: "Garlic", Amount: "6 cloves", Available: true},
			{Name: "Butter", Amount: "4 tbsp", Available: true},
			{Name: "Parsley", Amount: "1/4 cup", Available: false},
			{Name: "Lemon", Amount: "1", Available: true},
			{Name: "Olive oil", Amount: "2 tbsp", Available: true},
		},
		Instructions: []string{
			"Cook pasta according to package directions until al dente.",
			"Heat olive oil and butter in a large skillet over medium heat.",
			"Add minced garlic and cook until fragrant, about 1 minute.",
			"Add shrimp and cook until pink, about 3-4 minutes per side.",
			"Drain pasta, reserving 1 cup pasta water, and add to skillet.",
			"Toss everything together, adding pasta water as needed.",
			"Finish with lemon juice and fresh parsley.",
			"Season with salt and pepper to taste and serve immediately.",
		},
		Nutrition: Nutrition{Calories: 420, Protein: "32g", Carbs: "48g", Fat: "12g"},
	},
	"3": {
		ID:          "3",
		Title:       "Beef Stir Fry with Vegetables",
		Image:       "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=1200&h=800&fit=crop",
		Description: "Tender beef strips with crisp vegetables in a savory Asian-inspired sauce. Perfect weeknight dinner.",
		PrepMinutes: 15,
		CookMinutes: 10,
		Servings:    4,
		Difficulty:  "Easy",
		Cuisine:     "Asian",
		Ingredients: []DetailIngredient{
			{Name: "Beef sirloin", Amount: "1 lb", Available: true},
			{Name: "Broccoli", Amount: "2 cups", Available: true},
			{Name: "Carrot", Amount: "2", Available: true},
			{Name: "Soy sauce", Amount: "3 tbsp", Available: false},
			{Name: "Ginger", Amount: "1 tbsp", Available: false},
			{Name: "Garlic", Amount: "3 cloves", Available: true},
			{Name: "Sesame oil", Amount: "1 tbsp", Available: false},
		},
		Instructions: []string{
			"Slice beef thinly against the grain for tender pieces.",
			"Heat oil in a wok or large skillet over high heat until smoking.",
			"Stir-fry beef in batches until browned, about 2-3 minutes. Set aside.",
			"Add vegetables and stir-fry for 3-4 minutes until crisp-tender.",
			"Add garlic and ginger, cook for 30 seconds until fragrant.",
			"Return beef to the wok and add sauce.",
			"Toss everything together and drizzle with sesame oil.",
			"Serve immediately over steamed rice.",
		},
		Nutrition: Nutrition{Calories: 380, Protein: "38g", Carbs: "18g", Fat: "16g"},
	},
	"4": {
		ID:          "4",
		Title:       "Margherita Pizza",
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=1200&h=800&fit=crop",
		Description: "Classic Italian pizza with fresh mozzarella, ripe tomatoes, and fragrant basil on a crispy crust.",
		PrepMinutes: 30,
		CookMinutes: 15,
		Servings:    4,
		Difficulty:  "Medium",
		Cuisine:     "Italian",
		Ingredients: []DetailIngredient{
			{Name: "Pizza dough", Amount: "1 lb", Available: false},
			{Name: "Tomato sauce", Amount: "1 cup", Available: true},
			{Name: "Fresh mozzarella", Amount: "8 oz", Available: false},
			{Name: "Fresh basil", Amount: "1/2 cup", Available: false},
			{Name: "Olive oil", Amount: "2 tbsp", Available: true},
			{Name: "Salt", Amount: "to taste", Available: true},
		},
		Instructions: []string{
			"Preheat oven to 475°F (245°C) with a pizza stone if available.",
			"Roll out pizza dough on a floured surface to desired thickness.",
			"Transfer dough to a pizza peel or baking sheet.",
			"Spread tomato sauce evenly, leaving a border for the crust.",
			"Tear fresh mozzarella and distribute over the sauce.",
			"Drizzle with olive oil and season with salt.",
			"Bake for 12-15 minutes until crust is golden and cheese is bubbly.",
			"Top with fresh basil leaves immediately after removing from oven.",
		},
		Nutrition: Nutrition{Calories: 480, Protein: "18g", Carbs: "62g", Fat: "18g"},
	},
	"5": {
		ID:          "5",
		Title:       "Greek Salad with Grilled Chicken",
		Image:       "https://images.unsplash.com/photo-1540189549336-e6e99c3679fe?w=1200&h=800&fit=crop",
		Description: "Fresh Mediterranean salad topped with juicy grilled chicken. Light, healthy, and full of flavor.",
		PrepMinutes: 15,
		CookMinutes: 10,
		Servings:    4,
		Difficulty:  "Easy",
		Cuisine:     "Greek",
		Ingredients: []DetailIngredient{
			{Name: "Chicken breast", Amount: "1 lb", Available: true},
			{Name: "Cucumber", Amount: "2", Available: true},
			{Name: "Tomatoes", Amount: "3", Available: true},
			{Name: "Feta cheese", Amount: "6 oz", Available: false},
			{Name: "Kalamata olives", Amount: "1/2 cup", Available: false},
			{Name: "Red onion", Amount: "1", Available: true},
			{Name: "Olive oil", Amount: "1/4 cup", Available: true},
			{Name: "Lemon", Amount: "1", Available: true},
		},
		Instructions: []string{
			"Season chicken breasts with salt, pepper, and dried oregano.",
			"Grill chicken for 5-6 minutes per side until internal temp reaches 165°F.",
			"Let chicken rest for 5 minutes, then slice into strips.",
			"Dice cucumber, quarter tomatoes, and slice red onion thinly.",
			"Combine vegetables in a large bowl with olives.",
			"Whisk together olive oil, lemon juice, and oregano for dressing.",
			"Add crumbled feta and top with sliced grilled chicken.",
			"Drizzle with dressing and serve immediately.",
		},
		Nutrition: Nutrition{Calories: 340, Protein: "32g", Carbs: "14g", Fat: "18g"},
	},
	"6": {
		ID:          "6",
		Title:       "Vegetable Curry",
		Image:       "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?w=1200&h=800&fit=crop",
		Description: "Aromatic Indian curry with mixed vegetables in a rich coconut milk sauce. Comforting and delicious.",
		PrepMinutes: 20,
		CookMinutes: 30,
		Servings:    6,
		Difficulty:  "Medium",
		Cuisine:     "Indian",
		Ingredients: []DetailIngredient{
			{Name: "Potatoes", Amount: "3", Available: true},
			{Name: "Carrots", Amount: "2", Available: true},
			{Name: "Peas", Amount: "1 cup", Available: true},
			{Name: "Coconut milk", Amount: "1 can", Available: false},
			{Name: "Curry powder", Amount: "3 tbsp", Available: false},
			{Name: "Onion", Amount: "1", Available: true},
			{Name: "Garlic", Amount: "4 cloves", Available: true},
			{Name: "Ginger", Amount: "2 tbsp", Available: false},
		},
		Instructions: []string{
			"Dice potatoes and carrots into bite-sized cubes.",
			"Sauté diced onion until soft and translucent.",
			"Add minced garlic and ginger, cook until fragrant.",
			"Stir in curry powder and toast for 1 minute.",
			"Add vegetables and stir to coat with spices.",
			"Pour in coconut milk and bring to a simmer.",
			"Cook for 20-25 minutes until vegetables are tender.",
			"Season with salt and serve over basmati rice.",
		},
		Nutrition: Nutrition{Calories: 280, Protein: "6g", Carbs: "38g", Fat: "12g"},
	},
	"7": {
		ID:          "7",
		Title:       "Grilled Salmon with Lemon",
		Image:       "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=1200&h=800&fit=crop",
		Description: "Perfectly grilled salmon fillet with fresh lemon and aromatic dill. Healthy and elegant.",
		PrepMinutes: 10,
		CookMinutes: 15,
		Servings:    4,
		Difficulty:  "Easy",
		Cuisine:     "American",
		Ingredients: []DetailIngredient{
			{Name: "Salmon fillets", Amount: "4", Available: true},
			{Name: "Lemon", Amount: "2", Available: true},
			{Name: "Fresh dill", Amount: "1/4 cup", Available: false},
			{Name: "Garlic", Amount: "3 cloves", Available: true},
			{Name: "Olive oil", Amount: "3 tbsp", Available: true},
			{Name: "Salt", Amount: "to taste", Available: true},
			{Name: "Black pepper", Amount: "to taste", Available: true},
		},
		Instructions: []string{
			"Preheat grill to medium-high heat (400°F).",
			"Mix olive oil, minced garlic, lemon zest, and chopped dill.",
			"Brush salmon fillets generously with the mixture.",
			"Season both sides with salt and pepper.",
			"Place salmon skin-side down on the grill.",
			"Grill for 6-8 minutes without moving.",
			"Flip carefully and grill another 4-6 minutes until done.",
			"Serve with lemon wedges and extra fresh dill.",
		},
		Nutrition: Nutrition{Calories: 320, Protein: "34g", Carbs: "2g", Fat: "18g"},
	},
	"8": {
		ID:          "8",
		Title:       "Mushroom Risotto",
		Image:       "https://images.unsplash.com/photo-1476124369491-e7addf5db371?w=1200&h=800&fit=crop",
		Description: "Creamy Italian rice dish with earthy mushrooms and aged parmesan. Pure comfort food.",
		PrepMinutes: 10,
		CookMinutes: 35,
		Servings:    4,
		Difficulty:  "Medium",
		Cuisine:     "Italian",
		Ingredients: []DetailIngredient{
			{Name: "Arborio rice", Amount: "1.5 cups", Available: false},
			{Name: "Mushrooms", Amount: "12 oz", Available: true},
			{Name: "Parmesan cheese", Amount: "1 cup", Available: true},
			{Name: "Butter", Amount: "4 tbsp", Available: true},
			{Name: "Onion", Amount: "1", Available: true},
			{Name: "Garlic", Amount: "3 cloves", Available: true},
			{Name: "White wine", Amount: "1/2 cup", Available: false},
			{Name: "Chicken broth", Amount: "4 cups", Available: false},
		},
		Instructions: []string{
			"Heat broth in a saucepan and keep warm over low heat.",
			"Sauté sliced mushrooms in butter until golden. Set aside.",
			"In the same pan, sauté diced onion until soft.",
			"Add rice and toast, stirring constantly, for 2 minutes.",
			"Add wine and stir until absorbed.",
			"Add warm broth one ladle at a time, stirring constantly.",
			"Continue until rice is creamy and al dente (about 20 minutes).",
			"Fold in mushrooms, butter, and parmesan. Season and serve.",
		},
		Nutrition: Nutrition{Calories: 420, Protein: "14g", Carbs: "58g", Fat: "14g"},
	},
	"9": {
		ID:          "9",
		Title:       "Tacos al Pastor",
		Image:       "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?w=1200&h=800&fit=crop",
		Description: "Authentic Mexican street tacos with marinated pork and caramelized pineapple.",
		PrepMinutes: 20,
		CookMinutes: 15,
		Servings:    6,
		Difficulty:  "Medium",
		Cuisine:     "Mexican",
		Ingredients: []DetailIngredient{
			{Name: "Pork shoulder", Amount: "2 lbs", Available: true},
			{Name: "Pineapple", Amount: "1 cup", Available: true},
			{Name: "Onion", Amount: "1", Available: true},
			{Name: "Cilantro", Amount: "1/2 cup", Available: false},
			{Name: "Lime", Amount: "2", Available: true},
			{Name: "Corn tortillas", Amount: "12", Available: false},
			{Name: "Achiote paste", Amount: "2 tbsp", Available: false},
		},
		Instructions: []string{
			"Blend achiote paste with lime juice and spices for marinade.",
			"Coat pork slices in marinade and refrigerate for 2+ hours.",
			"Heat a cast iron skillet over high heat.",
			"Cook marinated pork until caramelized, about 3-4 min per side.",
			"Chop cooked pork into small pieces.",
			"Grill pineapple slices until charred, then dice.",
			"Warm tortillas on the grill or in a dry pan.",
			"Assemble tacos with pork, pineapple, onion, cilantro, and lime.",
		},
		Nutrition: Nutrition{Calories: 380, Protein: "28g", Carbs: "32g", Fat: "16g"},
	},
	"10": {
		ID:          "10",
		Title:       "Tom Yum Soup",
		Image:       "https://images.unsplash.com/photo-1548943487-a2e4e43b4853?w=1200&h=800&fit=crop",
		Description: "Spicy and sour Thai soup with shrimp, mushrooms, and aromatic herbs. Bold and refreshing.",
		PrepMinutes: 15,
		CookMinutes: 20,
		Servings:    4,
		Difficulty:  "Medium",
		Cuisine:     "Thai",
		Ingredients: []DetailIngredient{
			{Name: "Shrimp", Amount: "1 lb", Available: true},
			{Name: "Mushrooms", Amount: "8 oz", Available: true},
			{Name: "Lemongrass", Amount: "3 stalks", Available: false},
			{Name: "Lime", Amount: "3", Available: true},
			{Name: "Thai chilies", Amount: "3-5", Available: false},
			{Name: "Fish sauce", Amount: "3 tbsp", Available: false},
			{Name: "Galangal", Amount: "1 inch", Available: false},
			{Name: "Kaffir lime leaves", Amount: "4", Available: false},
		},
		Instructions: []string{
			"Bring 4 cups of water or broth to a boil.",
			"Bruise lemongrass and add with galangal and lime leaves.",
			"Simmer for 10 minutes to infuse aromatics.",
			"Add sliced mushrooms and cook for 3 minutes.",
			"Add shrimp and cook until pink (2-3 minutes).",
			"Remove from heat immediately.",
			"Stir in lime juice, fish sauce, and crushed chilies.",
			"Garnish with fresh cilantro and serve hot.",
		},
		Nutrition: Nutrition{Calories: 180, Protein: "24g", Carbs: "12g", Fat: "4g"},
	},
}
