package spoonacular

// Ingredient 上游食材結構
type Ingredient struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Original string   `json:"original"`
	Amount   *float64 `json:"amount"`
	Unit     string   `json:"unit"`
	Image    string   `json:"image"`
}

// FoundRecipe findByIngredients 回傳的單筆結果
type FoundRecipe struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	Image                 string       `json:"image"`
	UsedIngredientCount   int          `json:"usedIngredientCount"`
	MissedIngredientCount int          `json:"missedIngredientCount"`
	UsedIngredients       []Ingredient `json:"usedIngredients"`
	MissedIngredients     []Ingredient `json:"missedIngredients"`
}

// Nutrient 營養素
type Nutrient struct {
	Name                string  `json:"name"`
	Amount              float64 `json:"amount"`
	Unit                string  `json:"unit"`
	PercentOfDailyNeeds float64 `json:"percentOfDailyNeeds"`
}

// Nutrition 營養資訊
type Nutrition struct {
	Nutrients []Nutrient `json:"nutrients"`
}

// Step 料理步驟
type Step struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// InstructionGroup 分段料理步驟
type InstructionGroup struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// RecipeInformation 食譜完整資訊
type RecipeInformation struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Image                string             `json:"image"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	Servings             int                `json:"servings"`
	SourceURL            *string            `json:"sourceUrl"`
	Summary              string             `json:"summary"`
	Instructions         string             `json:"instructions"`
	ExtendedIngredients  []Ingredient       `json:"extendedIngredients"`
	AnalyzedInstructions []InstructionGroup `json:"analyzedInstructions"`
	Nutrition            *Nutrition         `json:"nutrition"`
	Diets                []string           `json:"diets"`
	DishTypes            []string           `json:"dishTypes"`
	Cuisines             []string           `json:"cuisines"`
	Vegetarian           bool               `json:"vegetarian"`
	Vegan                bool               `json:"vegan"`
	GlutenFree           bool               `json:"glutenFree"`
	DairyFree            bool               `json:"dairyFree"`
}
