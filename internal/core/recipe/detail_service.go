package recipe

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recipeasy/internal/core/cache"
	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	defaultLiveServings = 1
	// DefaultIngredientImageBase 上游食材圖片 CDN
	DefaultIngredientImageBase = "https://spoonacular.com/cdn/ingredients_100x100/"
)

// detailNutrients 詳情頁保留的營養素
var detailNutrients = []string{"Calories", "Protein", "Fat", "Carbohydrates", "Fiber", "Sugar", "Sodium"}

// DetailService 取得單一食譜詳情
type DetailService struct {
	Service
	imageBase string
}

// NewDetailService 創建詳情服務
func NewDetailService(catalog *Catalog, api RecipeAPI, store cache.Store, mode SourceMode) *DetailService {
	return &DetailService{
		Service:   newService(catalog, api, store, mode),
		imageBase: DefaultIngredientImageBase,
	}
}

// WithImageBase 替換食材圖片前綴
func (s *DetailService) WithImageBase(base string) *DetailService {
	if base != "" {
		s.imageBase = base
	}
	return s
}

// Get 依 ID 取得食譜詳情
func (s *DetailService) Get(ctx context.Context, rawID string) (*RecipeDetail, error) {
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return nil, common.NewValidationError("Invalid recipe ID")
	}

	key := cache.RecipeKey(strconv.Itoa(id))
	var cached RecipeDetail
	if s.getFromCache(ctx, key, &cached) {
		metrics.RecordDetail("cache")
		return &cached, nil
	}

	if s.mode == ForcedSample {
		detail, ok := s.sampleDetail(id)
		if !ok {
			return nil, common.ErrNotFound
		}
		common.LogDebug("使用範例資料取得詳情", zap.Int("id", id))
		return s.respond(ctx, key, detail, sourceSample), nil
	}

	detail, err := s.fetchLive(ctx, id)
	if err == nil {
		return s.respond(ctx, key, detail, "live"), nil
	}

	if spoonacular.StatusCode(err) == http.StatusNotFound {
		return nil, common.ErrNotFound.Wrap(err)
	}

	if s.mode.AllowsFallback() {
		if sample, ok := s.sampleDetail(id); ok {
			common.LogWarn("取得食譜詳情失敗，改用範例資料", zap.Int("id", id), zap.Error(err))
			metrics.RecordFallback("detail")
			return s.respond(ctx, key, sample, sourceSample), nil
		}
	}

	common.LogError("取得食譜詳情失敗", zap.Int("id", id), zap.Error(err))
	if errors.Is(err, spoonacular.ErrMissingAPIKey) {
		return nil, common.ErrConfiguration.Wrap(err)
	}
	return nil, common.ErrDetailFetchFailed.Wrap(err)
}

func (s *DetailService) respond(ctx context.Context, key string, detail *RecipeDetail, source string) *RecipeDetail {
	metrics.RecordDetail(source)
	s.setToCache(ctx, key, detail)
	return detail
}

func (s *DetailService) sampleDetail(id int) (*RecipeDetail, bool) {
	r, ok := s.catalog.FindByID(id)
	if !ok {
		return nil, false
	}
	detail := s.catalog.ToDetail(r)
	return &detail, true
}

func (s *DetailService) fetchLive(ctx context.Context, id int) (*RecipeDetail, error) {
	api, err := s.callAPI()
	if err != nil {
		return nil, err
	}
	info, err := api.Information(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detailFromLive(info), nil
}

// detailFromLive 正規化上游詳情：HTML 全部移除、營養素依白名單過濾並取整
func (s *DetailService) detailFromLive(info *spoonacular.RecipeInformation) *RecipeDetail {
	ingredients := make([]DetailIngredient, len(info.ExtendedIngredients))
	for i, item := range info.ExtendedIngredients {
		id := item.ID
		ingredients[i] = DetailIngredient{ID: &id, Ingredient: ingredientFromLive(item, s.imageBase)}
	}

	steps := []InstructionStep{}
	if len(info.AnalyzedInstructions) > 0 {
		for _, step := range info.AnalyzedInstructions[0].Steps {
			steps = append(steps, InstructionStep{Number: step.Number, Step: step.Step})
		}
	}

	var all []Nutrient
	if info.Nutrition != nil {
		all = nutrientsFromLive(info.Nutrition.Nutrients)
	}
	nutrients := []Nutrient{}
	for _, n := range all {
		if !containsString(detailNutrients, n.Name) {
			continue
		}
		nutrients = append(nutrients, Nutrient{
			Name:                n.Name,
			Amount:              roundHalfUp(n.Amount),
			Unit:                n.Unit,
			PercentOfDailyNeeds: roundHalfUp(n.PercentOfDailyNeeds),
		})
	}
	calories := findNutrientAmount(all, "calories")
	protein := findNutrientAmount(all, "protein")

	servings := info.Servings
	if servings <= 0 {
		servings = defaultLiveServings
	}

	return &RecipeDetail{
		ID:                   info.ID,
		Title:                info.Title,
		Image:                info.Image,
		ReadyInMinutes:       info.ReadyInMinutes,
		ProteinGrams:         protein,
		Calories:             calories,
		Servings:             servings,
		SourceURL:            info.SourceURL,
		Summary:              stripHTML(info.Summary),
		Ingredients:          ingredients,
		Instructions:         stripHTML(info.Instructions),
		AnalyzedInstructions: steps,
		Nutrition: Nutrition{
			Calories:  calories,
			Protein:   protein,
			Nutrients: nutrients,
		},
		Diets:      cloneStrings(info.Diets),
		DishTypes:  cloneStrings(info.DishTypes),
		Cuisines:   cloneStrings(info.Cuisines),
		Vegetarian: info.Vegetarian,
		Vegan:      info.Vegan,
		GlutenFree: info.GlutenFree,
		DairyFree:  info.DairyFree,
	}
}
