package recipe

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"recipeasy/internal/core/cache"
	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	liveCandidateCount = 20
	sourceSample       = "sample"
)

// SearchService 以食材搜尋食譜
type SearchService struct {
	Service
}

// NewSearchService 創建搜尋服務
func NewSearchService(catalog *Catalog, api RecipeAPI, store cache.Store, mode SourceMode) *SearchService {
	return &SearchService{Service: newService(catalog, api, store, mode)}
}

// Search 驗證 → 快取 → 選擇來源 → 篩選排序 → 寫入快取
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	if !req.Ingredients.Provided || strings.TrimSpace(req.Ingredients.Raw) == "" {
		return nil, common.NewValidationError("Please provide at least one ingredient")
	}

	filters := SearchFilters{
		Ingredients: req.Ingredients.Raw,
		MinProtein:  req.minProtein(),
		MaxTime:     req.maxTime(),
	}
	key := cache.SearchKey(filters.Ingredients, formatNumber(filters.MinProtein), formatNumber(filters.MaxTime))

	var cached SearchResult
	if s.getFromCache(ctx, key, &cached) {
		metrics.RecordSearch("cache")
		return &cached, nil
	}

	if s.mode == ForcedSample {
		common.LogDebug("使用範例資料搜尋", zap.String("原因", "USE_SAMPLE_RECIPES"))
		return s.respondWithSample(ctx, key, filters), nil
	}
	if !s.hasAPIKey() && s.mode.AllowsFallback() {
		common.LogWarn("未設定食譜 API key，使用範例資料")
		return s.respondWithSample(ctx, key, filters), nil
	}

	result, err := s.searchLive(ctx, filters)
	if err != nil {
		if s.mode.AllowsFallback() {
			common.LogWarn("食譜搜尋失敗，改用範例資料", zap.Error(err))
			metrics.RecordFallback("search")
			return s.respondWithSample(ctx, key, filters), nil
		}
		common.LogError("食譜搜尋失敗", zap.Error(err))
		return nil, searchError(err)
	}

	metrics.RecordSearch("live")
	s.setToCache(ctx, key, result)
	return result, nil
}

// SampleSearch 在離線目錄上搜尋
func (s *SearchService) SampleSearch(filters SearchFilters) *SearchResult {
	tokens := NormalizeTokens(filters.Ingredients)
	recipes := Rank(applyFilters(s.catalog.Match(tokens), filters))
	return &SearchResult{
		Recipes: recipes,
		Total:   len(recipes),
		Filters: &filters,
		Source:  sourceSample,
	}
}

func (s *SearchService) respondWithSample(ctx context.Context, key string, filters SearchFilters) *SearchResult {
	result := s.SampleSearch(filters)
	metrics.RecordSearch(sourceSample)
	s.setToCache(ctx, key, result)
	return result
}

// searchLive 先以食材找候選，再批次取得營養資訊
func (s *SearchService) searchLive(ctx context.Context, filters SearchFilters) (*SearchResult, error) {
	api, err := s.callAPI()
	if err != nil {
		return nil, err
	}

	found, err := api.FindByIngredients(ctx, filters.Ingredients, liveCandidateCount)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return &SearchResult{Recipes: []RecipeSummary{}, Total: 0}, nil
	}

	ids := make([]int, len(found))
	for i, f := range found {
		ids[i] = f.ID
	}
	infos, err := api.InformationBulk(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]spoonacular.RecipeInformation, len(infos))
	for _, info := range infos {
		if _, exists := byID[info.ID]; !exists {
			byID[info.ID] = info
		}
	}

	summaries := make([]RecipeSummary, 0, len(found))
	for _, f := range found {
		summaries = append(summaries, summaryFromLive(f, byID[f.ID]))
	}

	recipes := Rank(applyFilters(summaries, filters))
	return &SearchResult{
		Recipes: recipes,
		Total:   len(recipes),
		Filters: &filters,
	}, nil
}

// applyFilters 蛋白質下限；maxTime 小於 999 時才限制時間
func applyFilters(recipes []RecipeSummary, filters SearchFilters) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		if r.ProteinGrams < filters.MinProtein {
			continue
		}
		if filters.MaxTime < UnboundedMaxTime && float64(r.ReadyInMinutes) > filters.MaxTime {
			continue
		}
		out = append(out, r)
	}
	return out
}

func summaryFromLive(f spoonacular.FoundRecipe, info spoonacular.RecipeInformation) RecipeSummary {
	var nutrients []Nutrient
	if info.Nutrition != nil {
		nutrients = nutrientsFromLive(info.Nutrition.Nutrients)
	}
	return RecipeSummary{
		ID:                    f.ID,
		Title:                 f.Title,
		Image:                 f.Image,
		ReadyInMinutes:        info.ReadyInMinutes,
		ProteinGrams:          findNutrientAmount(nutrients, "protein"),
		Calories:              findNutrientAmount(nutrients, "calories"),
		Summary:               previewSummary(info.Summary),
		UsedIngredientCount:   f.UsedIngredientCount,
		MissedIngredientCount: f.MissedIngredientCount,
		UsedIngredients:       ingredientsFromLive(f.UsedIngredients),
		MissedIngredients:     ingredientsFromLive(f.MissedIngredients),
		MatchPercentage:       matchPercentage(f.UsedIngredientCount, f.MissedIngredientCount),
	}
}

func ingredientsFromLive(items []spoonacular.Ingredient) []Ingredient {
	out := make([]Ingredient, len(items))
	for i, item := range items {
		out[i] = ingredientFromLive(item, "")
	}
	return out
}

// ingredientFromLive imagePrefix 用於只回傳檔名的上游欄位
func ingredientFromLive(item spoonacular.Ingredient, imagePrefix string) Ingredient {
	original := item.Original
	if original == "" {
		original = item.Name
	}
	var image *string
	if item.Image != "" {
		v := imagePrefix + item.Image
		image = &v
	}
	return Ingredient{
		Name:     item.Name,
		Original: original,
		Amount:   item.Amount,
		Unit:     item.Unit,
		Image:    image,
	}
}

func nutrientsFromLive(items []spoonacular.Nutrient) []Nutrient {
	out := make([]Nutrient, len(items))
	for i, n := range items {
		out[i] = Nutrient{
			Name:                n.Name,
			Amount:              n.Amount,
			Unit:                n.Unit,
			PercentOfDailyNeeds: n.PercentOfDailyNeeds,
		}
	}
	return out
}

// searchError 將上游錯誤對應到回應錯誤
func searchError(err error) *common.CustomError {
	switch {
	case errors.Is(err, spoonacular.ErrMissingAPIKey):
		return common.ErrConfiguration.Wrap(err)
	case spoonacular.StatusCode(err) == http.StatusPaymentRequired:
		return common.ErrQuotaExceeded.Wrap(err)
	default:
		return common.ErrSearchFailed.Wrap(err)
	}
}
