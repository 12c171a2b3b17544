package recipe

const defaultSampleServings = 4

// Catalog 離線食譜目錄
type Catalog struct {
	recipes []OfflineRecipe
	byID    map[int]int
}

// NewCatalog 以指定食譜建立目錄
func NewCatalog(recipes []OfflineRecipe) *Catalog {
	c := &Catalog{
		recipes: make([]OfflineRecipe, len(recipes)),
		byID:    make(map[int]int, len(recipes)),
	}
	copy(c.recipes, recipes)
	for i, r := range c.recipes {
		if _, exists := c.byID[r.ID]; !exists {
			c.byID[r.ID] = i
		}
	}
	return c
}

// DefaultCatalog 內建範例食譜目錄
func DefaultCatalog() *Catalog {
	return NewCatalog(sampleRecipes)
}

// Len 食譜數量
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// FindByID 依 ID 查找食譜
func (c *Catalog) FindByID(id int) (OfflineRecipe, bool) {
	i, ok := c.byID[id]
	if !ok {
		return OfflineRecipe{}, false
	}
	return c.recipes[i], true
}

// Match 投影所有符合 tokens 的食譜，維持目錄順序
func (c *Catalog) Match(tokens []string) []RecipeSummary {
	var matched []RecipeSummary
	for _, r := range c.recipes {
		if summary, ok := c.Project(r, tokens); ok {
			matched = append(matched, summary)
		}
	}
	return matched
}

// Project 將食材分為已有/缺少；沒有任何符合時回傳 false
func (c *Catalog) Project(r OfflineRecipe, tokens []string) (RecipeSummary, bool) {
	used := make([]Ingredient, 0, len(r.Ingredients))
	missed := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if MatchesToken(ing.Name, tokens) {
			used = append(used, projectIngredient(ing))
		} else {
			missed = append(missed, projectIngredient(ing))
		}
	}
	if len(used) == 0 {
		return RecipeSummary{}, false
	}

	return RecipeSummary{
		ID:                    r.ID,
		Title:                 r.Title,
		Image:                 r.Image,
		ReadyInMinutes:        r.ReadyInMinutes,
		ProteinGrams:          r.ProteinGrams,
		Calories:              r.Calories,
		Summary:               r.Summary,
		Cuisines:              cloneStrings(r.Cuisines),
		Diets:                 cloneStrings(r.Diets),
		UsedIngredientCount:   len(used),
		MissedIngredientCount: len(missed),
		UsedIngredients:       used,
		MissedIngredients:     missed,
		MatchPercentage:       matchPercentage(len(used), len(missed)),
	}, true
}

// ToDetail 轉換為詳情格式
func (c *Catalog) ToDetail(r OfflineRecipe) RecipeDetail {
	ingredients := make([]DetailIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		var id *int
		if ing.ID != 0 {
			v := ing.ID
			id = &v
		}
		ingredients[i] = DetailIngredient{ID: id, Ingredient: projectIngredient(ing)}
	}

	steps := make([]InstructionStep, len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = InstructionStep{Number: i + 1, Step: step}
	}

	nutrients := make([]Nutrient, len(r.Nutrition))
	copy(nutrients, r.Nutrition)
	if len(nutrients) == 0 {
		nutrients = []Nutrient{
			{Name: "Calories", Amount: r.Calories, Unit: "kcal"},
			{Name: "Protein", Amount: r.ProteinGrams, Unit: "g"},
		}
	}

	servings := r.Servings
	if servings <= 0 {
		servings = defaultSampleServings
	}

	return RecipeDetail{
		ID:                   r.ID,
		Title:                r.Title,
		Image:                r.Image,
		ReadyInMinutes:       r.ReadyInMinutes,
		ProteinGrams:         r.ProteinGrams,
		Calories:             r.Calories,
		Servings:             servings,
		SourceURL:            stringPtr(r.SourceURL),
		Summary:              r.Summary,
		Ingredients:          ingredients,
		Instructions:         r.Instructions,
		AnalyzedInstructions: steps,
		Nutrition: Nutrition{
			Calories:  r.Calories,
			Protein:   r.ProteinGrams,
			Nutrients: nutrients,
		},
		Diets:      cloneStrings(r.Diets),
		DishTypes:  cloneStrings(r.DishTypes),
		Cuisines:   cloneStrings(r.Cuisines),
		Vegetarian: dietFlag(r.Vegetarian, r.Diets, "vegetarian"),
		Vegan:      dietFlag(r.Vegan, r.Diets, "vegan"),
		GlutenFree: dietFlag(r.GlutenFree, r.Diets, "gluten free"),
		DairyFree:  dietFlag(r.DairyFree, r.Diets, "dairy free"),
	}
}

func projectIngredient(ing OfflineIngredient) Ingredient {
	original := ing.Original
	if original == "" {
		original = ing.Name
	}
	amount := ing.Amount
	return Ingredient{
		Name:     ing.Name,
		Original: original,
		Amount:   &amount,
		Unit:     ing.Unit,
		Image:    stringPtr(ing.Image),
	}
}

// dietFlag 明確設定優先，否則看 diets 是否包含該標籤
func dietFlag(explicit *bool, diets []string, label string) bool {
	if explicit != nil {
		return *explicit
	}
	return containsString(diets, label)
}
