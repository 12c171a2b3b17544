package recipe

// sampleRecipes 內建離線食譜，程序啟動時載入，之後唯讀
var sampleRecipes = []OfflineRecipe{
	{
		ID:             900001,
		Title:          "One-Pan Lemon Garlic Chicken & Veggies",
		Image:          "https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 30,
		ProteinGrams:   42,
		Calories:       480,
		Summary:        "Juicy seared chicken breasts tossed with garlicky roasted vegetables and a bright lemon butter sauce.",
		Cuisines:       []string{"American"},
		Diets:          []string{"gluten free"},
		Ingredients: []OfflineIngredient{
			{Name: "chicken breast", Original: "2 boneless skinless chicken breasts", Amount: 2, Unit: "breasts"},
			{Name: "broccoli florets", Original: "2 cups broccoli florets", Amount: 2, Unit: "cups"},
			{Name: "red bell pepper", Original: "1 red bell pepper, sliced", Amount: 1, Unit: "pepper"},
			{Name: "olive oil", Original: "2 tbsp olive oil", Amount: 2, Unit: "tbsp"},
			{Name: "garlic", Original: "3 cloves garlic, minced", Amount: 3, Unit: "cloves"},
			{Name: "lemon", Original: "Juice and zest of 1 lemon", Amount: 1, Unit: "lemon"},
			{Name: "thyme", Original: "1 tsp dried thyme", Amount: 1, Unit: "tsp"},
		},
		Servings:     4,
		Instructions: "Sear the chicken, roast with garlicky veggies, and finish everything with fresh lemon butter for a bright one-pan dinner.",
		Steps: []string{
			"Heat oven to 400°F (200°C) and season chicken with salt, pepper, and half of the minced garlic.",
			"In an oven-safe skillet, sear chicken in a tablespoon of olive oil until golden on both sides, then set aside.",
			"Toss broccoli and peppers with remaining oil, garlic, thyme, and lemon zest; spread them in the skillet.",
			"Nestle chicken back into the vegetables, drizzle with lemon juice, and roast 15-18 minutes until cooked through.",
			"Spoon pan juices over everything, add extra lemon zest, and serve straight from the skillet.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 480, Unit: "kcal", PercentOfDailyNeeds: 24},
			{Name: "Protein", Amount: 42, Unit: "g", PercentOfDailyNeeds: 84},
			{Name: "Fat", Amount: 18, Unit: "g", PercentOfDailyNeeds: 28},
			{Name: "Carbohydrates", Amount: 32, Unit: "g", PercentOfDailyNeeds: 12},
			{Name: "Fiber", Amount: 6, Unit: "g", PercentOfDailyNeeds: 21},
			{Name: "Sugar", Amount: 8, Unit: "g", PercentOfDailyNeeds: 9},
			{Name: "Sodium", Amount: 720, Unit: "mg", PercentOfDailyNeeds: 31},
		},
	},
	{
		ID:             900002,
		Title:          "Chickpea & Spinach Coconut Curry",
		Image:          "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 35,
		ProteinGrams:   21,
		Calories:       410,
		Summary:        "Creamy weeknight curry loaded with plant-based protein, warm spices, and silky coconut milk.",
		Cuisines:       []string{"Indian"},
		Diets:          []string{"vegan", "gluten free"},
		Ingredients: []OfflineIngredient{
			{Name: "chickpeas", Original: "1 can chickpeas, drained", Amount: 1, Unit: "can"},
			{Name: "spinach", Original: "3 cups fresh spinach", Amount: 3, Unit: "cups"},
			{Name: "coconut milk", Original: "1 can light coconut milk", Amount: 1, Unit: "can"},
			{Name: "tomatoes", Original: "1 cup crushed tomatoes", Amount: 1, Unit: "cup"},
			{Name: "yellow onion", Original: "1 yellow onion, diced", Amount: 1, Unit: "onion"},
			{Name: "garlic", Original: "3 cloves garlic, minced", Amount: 3, Unit: "cloves"},
			{Name: "curry powder", Original: "1 tbsp curry powder", Amount: 1, Unit: "tbsp"},
			{Name: "ginger", Original: "1 tbsp minced ginger", Amount: 1, Unit: "tbsp"},
		},
		Servings:     4,
		Instructions: "Build layers of aromatics, simmer chickpeas in coconut milk, then wilt in plenty of spinach for a cozy curry.",
		Steps: []string{
			"Warm oil in a pot over medium heat and sauté onion with a pinch of salt until translucent.",
			"Stir in garlic, ginger, and curry powder for 1 minute until fragrant.",
			"Add chickpeas, crushed tomatoes, and coconut milk; bring to a gentle simmer.",
			"Cook 10 minutes until slightly thickened, then fold in spinach until wilted.",
			"Finish with lime juice or extra coconut milk and serve over rice or with naan.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 410, Unit: "kcal", PercentOfDailyNeeds: 21},
			{Name: "Protein", Amount: 21, Unit: "g", PercentOfDailyNeeds: 42},
			{Name: "Fat", Amount: 17, Unit: "g", PercentOfDailyNeeds: 26},
			{Name: "Carbohydrates", Amount: 48, Unit: "g", PercentOfDailyNeeds: 17},
			{Name: "Fiber", Amount: 10, Unit: "g", PercentOfDailyNeeds: 36},
			{Name: "Sugar", Amount: 9, Unit: "g", PercentOfDailyNeeds: 10},
			{Name: "Sodium", Amount: 640, Unit: "mg", PercentOfDailyNeeds: 28},
		},
	},
	{
		ID:             900003,
		Title:          "Teriyaki Salmon Rice Bowls",
		Image:          "https://images.unsplash.com/photo-1476127396013-7ad5222c15b4?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 25,
		ProteinGrams:   34,
		Calories:       520,
		Summary:        "Flaky roasted salmon glazed with homemade teriyaki sauce served over fluffy rice and crisp veggies.",
		Cuisines:       []string{"Asian"},
		Diets:          []string{"dairy free"},
		Ingredients: []OfflineIngredient{
			{Name: "salmon fillets", Original: "2 salmon fillets", Amount: 2, Unit: "fillets"},
			{Name: "rice", Original: "2 cups cooked jasmine rice", Amount: 2, Unit: "cups"},
			{Name: "soy sauce", Original: "3 tbsp low-sodium soy sauce", Amount: 3, Unit: "tbsp"},
			{Name: "honey", Original: "1 tbsp honey", Amount: 1, Unit: "tbsp"},
			{Name: "ginger", Original: "1 tsp grated ginger", Amount: 1, Unit: "tsp"},
			{Name: "broccoli florets", Original: "1 1/2 cups broccoli florets", Amount: 1.5, Unit: "cups"},
			{Name: "sesame oil", Original: "1 tsp toasted sesame oil", Amount: 1, Unit: "tsp"},
			{Name: "green onion", Original: "2 green onions, sliced", Amount: 2, Unit: "stalks"},
		},
		Servings:     2,
		Instructions: "Roast salmon with a sticky homemade teriyaki glaze, sauté quick veggies, and pile everything over warm rice bowls.",
		Steps: []string{
			"Heat oven to 425°F (220°C) and line a sheet pan with parchment.",
			"Whisk soy sauce, honey, ginger, and a splash of water; brush over salmon fillets.",
			"Roast salmon 10-12 minutes, basting once, until flaky and glossy.",
			"While salmon cooks, sauté broccoli in sesame oil until crisp-tender.",
			"Serve salmon and broccoli over warm rice, spooning extra glaze and green onions on top.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 520, Unit: "kcal", PercentOfDailyNeeds: 26},
			{Name: "Protein", Amount: 34, Unit: "g", PercentOfDailyNeeds: 68},
			{Name: "Fat", Amount: 22, Unit: "g", PercentOfDailyNeeds: 34},
			{Name: "Carbohydrates", Amount: 45, Unit: "g", PercentOfDailyNeeds: 16},
			{Name: "Fiber", Amount: 4, Unit: "g", PercentOfDailyNeeds: 14},
			{Name: "Sugar", Amount: 12, Unit: "g", PercentOfDailyNeeds: 13},
			{Name: "Sodium", Amount: 780, Unit: "mg", PercentOfDailyNeeds: 34},
		},
	},
	{
		ID:             900004,
		Title:          "Veggie-Packed Egg Fried Rice",
		Image:          "https://images.unsplash.com/photo-1504674900247-0877df9cc836?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 20,
		ProteinGrams:   18,
		Calories:       380,
		Summary:        "Better-than-takeout fried rice loaded with fluffy eggs, crisp veggies, and umami soy sesame sauce.",
		Cuisines:       []string{"Asian"},
		Diets:          []string{},
		Ingredients: []OfflineIngredient{
			{Name: "cooked rice", Original: "3 cups cold cooked rice", Amount: 3, Unit: "cups"},
			{Name: "eggs", Original: "3 large eggs, beaten", Amount: 3, Unit: "eggs"},
			{Name: "peas", Original: "1 cup frozen peas", Amount: 1, Unit: "cup"},
			{Name: "carrots", Original: "1 cup diced carrots", Amount: 1, Unit: "cup"},
			{Name: "green onion", Original: "2 green onions, sliced", Amount: 2, Unit: "stalks"},
			{Name: "soy sauce", Original: "2 tbsp low-sodium soy sauce", Amount: 2, Unit: "tbsp"},
			{Name: "sesame oil", Original: "1 tsp sesame oil", Amount: 1, Unit: "tsp"},
			{Name: "garlic", Original: "2 cloves garlic, minced", Amount: 2, Unit: "cloves"},
		},
		Servings:     4,
		Instructions: "Use day-old rice, plenty of veggies, and quick high-heat cooking for classic takeout-style fried rice.",
		Steps: []string{
			"Scramble beaten eggs in a wok with a little oil; transfer to a plate.",
			"Add carrots, peas, and garlic and stir-fry until crisp-tender.",
			"Toss in cold rice, breaking up clumps and toasting slightly.",
			"Return eggs, drizzle soy sauce and sesame oil, and cook until everything is coated.",
			"Finish with sliced green onion and serve immediately.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 380, Unit: "kcal", PercentOfDailyNeeds: 19},
			{Name: "Protein", Amount: 18, Unit: "g", PercentOfDailyNeeds: 36},
			{Name: "Fat", Amount: 12, Unit: "g", PercentOfDailyNeeds: 18},
			{Name: "Carbohydrates", Amount: 48, Unit: "g", PercentOfDailyNeeds: 17},
			{Name: "Fiber", Amount: 5, Unit: "g", PercentOfDailyNeeds: 18},
			{Name: "Sugar", Amount: 6, Unit: "g", PercentOfDailyNeeds: 7},
			{Name: "Sodium", Amount: 680, Unit: "mg", PercentOfDailyNeeds: 30},
		},
	},
	{
		ID:             900005,
		Title:          "Creamy Tomato Basil Pasta",
		Image:          "https://images.unsplash.com/photo-1504754524776-8f4f37790ca0?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 25,
		ProteinGrams:   20,
		Calories:       540,
		Summary:        "Comforting pasta tossed in a silky tomato cream sauce with spinach and plenty of Parmesan.",
		Cuisines:       []string{"Italian"},
		Diets:          []string{"vegetarian"},
		Ingredients: []OfflineIngredient{
			{Name: "pasta", Original: "12 oz penne pasta", Amount: 12, Unit: "oz"},
			{Name: "tomatoes", Original: "1 can crushed tomatoes", Amount: 1, Unit: "can"},
			{Name: "spinach", Original: "2 cups baby spinach", Amount: 2, Unit: "cups"},
			{Name: "garlic", Original: "3 cloves garlic, minced", Amount: 3, Unit: "cloves"},
			{Name: "heavy cream", Original: "1/2 cup light cream", Amount: 0.5, Unit: "cup"},
			{Name: "parmesan", Original: "1/2 cup grated Parmesan", Amount: 0.5, Unit: "cup"},
			{Name: "olive oil", Original: "2 tbsp olive oil", Amount: 2, Unit: "tbsp"},
			{Name: "basil", Original: "1/4 cup chopped basil", Amount: 0.25, Unit: "cup"},
		},
		Servings:     4,
		Instructions: "Simmer a garlicky tomato cream sauce, fold in spinach, and toss with hot pasta plus a shower of Parmesan and basil.",
		Steps: []string{
			"Cook pasta in salted water until al dente; reserve a cup of pasta water.",
			"Sauté garlic in olive oil, then add crushed tomatoes and simmer 5 minutes.",
			"Pour in cream, season, and let gently bubble until velvety.",
			"Toss in spinach to wilt, then add pasta plus a splash of cooking water.",
			"Finish with Parmesan and basil until the sauce clings to every bite.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 540, Unit: "kcal", PercentOfDailyNeeds: 27},
			{Name: "Protein", Amount: 20, Unit: "g", PercentOfDailyNeeds: 40},
			{Name: "Fat", Amount: 22, Unit: "g", PercentOfDailyNeeds: 34},
			{Name: "Carbohydrates", Amount: 62, Unit: "g", PercentOfDailyNeeds: 23},
			{Name: "Fiber", Amount: 5, Unit: "g", PercentOfDailyNeeds: 18},
			{Name: "Sugar", Amount: 10, Unit: "g", PercentOfDailyNeeds: 11},
			{Name: "Sodium", Amount: 740, Unit: "mg", PercentOfDailyNeeds: 32},
		},
	},
	{
		ID:             900006,
		Title:          "Smoky Black Bean Sweet Potato Tacos",
		Image:          "https://images.unsplash.com/photo-1608039829574-89c4782b8b7e?auto=format&fit=crop&w=800&q=60",
		ReadyInMinutes: 35,
		ProteinGrams:   17,
		Calories:       360,
		Summary:        "Sheet-pan roasted sweet potatoes, smoky black beans, and crunchy slaw tucked into warm tortillas.",
		Cuisines:       []string{"Mexican"},
		Diets:          []string{"vegan"},
		Ingredients: []OfflineIngredient{
			{Name: "sweet potato", Original: "2 cups diced sweet potato", Amount: 2, Unit: "cups"},
			{Name: "black beans", Original: "1 can black beans, drained", Amount: 1, Unit: "can"},
			{Name: "tortillas", Original: "8 small corn tortillas", Amount: 8, Unit: "tortillas"},
			{Name: "red cabbage", Original: "1 cup shredded red cabbage", Amount: 1, Unit: "cup"},
			{Name: "lime", Original: "Juice of 1 lime", Amount: 1, Unit: "lime"},
			{Name: "chipotle powder", Original: "1 tsp chipotle chili powder", Amount: 1, Unit: "tsp"},
			{Name: "avocado", Original: "1 avocado, sliced", Amount: 1, Unit: "avocado"},
			{Name: "cilantro", Original: "1/4 cup chopped cilantro", Amount: 0.25, Unit: "cup"},
		},
		Servings:     4,
		Instructions: "Roast sweet potatoes with smoky spices, warm the beans, then pile everything into toasted tortillas with crunchy slaw.",
		Steps: []string{
			"Heat oven to 425°F (220°C); toss sweet potatoes with oil, chipotle powder, salt, and roast 20 minutes.",
			"Warm black beans in a skillet with a splash of water, cumin, and lime juice.",
			"Dress shredded cabbage with lime juice, cilantro, and a pinch of salt for a quick slaw.",
			"Warm tortillas over an open flame or in a dry skillet until pliable.",
			"Layer roasted potatoes, beans, slaw, and avocado into tortillas and serve with extra lime.",
		},
		Nutrition: []Nutrient{
			{Name: "Calories", Amount: 360, Unit: "kcal", PercentOfDailyNeeds: 18},
			{Name: "Protein", Amount: 17, Unit: "g", PercentOfDailyNeeds: 34},
			{Name: "Fat", Amount: 9, Unit: "g", PercentOfDailyNeeds: 14},
			{Name: "Carbohydrates", Amount: 52, Unit: "g", PercentOfDailyNeeds: 19},
			{Name: "Fiber", Amount: 11, Unit: "g", PercentOfDailyNeeds: 39},
			{Name: "Sugar", Amount: 9, Unit: "g", PercentOfDailyNeeds: 10},
			{Name: "Sodium", Amount: 540, Unit: "mg", PercentOfDailyNeeds: 23},
		},
	},
}
