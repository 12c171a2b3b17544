package recipe

// Ingredient 搜尋結果中的食材
type Ingredient struct {
	Name     string   `json:"name"`
	Original string   `json:"original"`
	Amount   *float64 `json:"amount"`
	Unit     string   `json:"unit"`
	Image    *string  `json:"image"`
}

// DetailIngredient 詳情頁食材，多帶上游食材 ID
type DetailIngredient struct {
	ID *int `json:"id"`
	Ingredient
}

// RecipeSummary 搜尋結果中的單筆食譜
type RecipeSummary struct {
	ID                    int          `json:"id"`
	Title                 string       `json:"title"`
	Image                 string       `json:"image,omitempty"`
	ReadyInMinutes        int          `json:"readyInMinutes"`
	ProteinGrams          float64      `json:"proteinGrams"`
	Calories              float64      `json:"calories"`
	Summary               string       `json:"summary"`
	Cuisines              []string     `json:"cuisines,omitempty"`
	Diets                 []string     `json:"diets,omitempty"`
	UsedIngredientCount   int          `json:"usedIngredientCount"`
	MissedIngredientCount int          `json:"missedIngredientCount"`
	UsedIngredients       []Ingredient `json:"usedIngredients"`
	MissedIngredients     []Ingredient `json:"missedIngredients"`
	MatchPercentage       int          `json:"matchPercentage"`
}

// InstructionStep 料理步驟
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
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
	Calories  float64    `json:"calories"`
	Protein   float64    `json:"protein"`
	Nutrients []Nutrient `json:"nutrients"`
}

// RecipeDetail 食譜詳情
type RecipeDetail struct {
	ID                   int                `json:"id"`
	Title                string             `json:"title"`
	Image                string             `json:"image"`
	ReadyInMinutes       int                `json:"readyInMinutes"`
	ProteinGrams         float64            `json:"proteinGrams"`
	Calories             float64            `json:"calories"`
	Servings             int                `json:"servings"`
	SourceURL            *string            `json:"sourceUrl"`
	Summary              string             `json:"summary"`
	Ingredients          []DetailIngredient `json:"ingredients"`
	Instructions         string             `json:"instructions"`
	AnalyzedInstructions []InstructionStep  `json:"analyzedInstructions"`
	Nutrition            Nutrition          `json:"nutrition"`
	Diets                []string           `json:"diets"`
	DishTypes            []string           `json:"dishTypes"`
	Cuisines             []string           `json:"cuisines"`
	Vegetarian           bool               `json:"vegetarian"`
	Vegan                bool               `json:"vegan"`
	GlutenFree           bool               `json:"glutenFree"`
	DairyFree            bool               `json:"dairyFree"`
}

// SearchFilters 正規化後的搜尋條件
type SearchFilters struct {
	Ingredients string  `json:"ingredients"`
	MinProtein  float64 `json:"minProtein"`
	MaxTime     float64 `json:"maxTime"`
}

// SearchResult 搜尋回應；Source 只在範例資料時為 "sample"
type SearchResult struct {
	Recipes []RecipeSummary `json:"recipes"`
	Total   int             `json:"total"`
	Filters *SearchFilters  `json:"filters,omitempty"`
	Source  string          `json:"source,omitempty"`
}

// OfflineIngredient 離線食譜的食材
type OfflineIngredient struct {
	ID       int
	Name     string
	Original string
	Amount   float64
	Unit     string
	Image    string
}

// OfflineRecipe 內建離線食譜
type OfflineRecipe struct {
	ID             int
	Title          string
	Image          string
	ReadyInMinutes int
	ProteinGrams   float64
	Calories       float64
	Summary        string
	Cuisines       []string
	Diets          []string
	DishTypes      []string
	Ingredients    []OfflineIngredient
	Servings       int
	SourceURL      string
	Instructions   string
	Steps          []string
	Nutrition      []Nutrient

	// 未設定時由 Diets 推導
	Vegetarian *bool
	Vegan      *bool
	GlutenFree *bool
	DairyFree  *bool
}
