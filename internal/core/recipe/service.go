package recipe

import (
	"context"

	"recipeasy/internal/core/cache"
	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
)

// RecipeAPI 上游食譜 API
type RecipeAPI interface {
	HasAPIKey() bool
	FindByIngredients(ctx context.Context, ingredients string, number int) ([]spoonacular.FoundRecipe, error)
	InformationBulk(ctx context.Context, ids []int) ([]spoonacular.RecipeInformation, error)
	Information(ctx context.Context, id int) (*spoonacular.RecipeInformation, error)
}

// Service 食譜服務基礎結構
type Service struct {
	catalog *Catalog
	api     RecipeAPI
	cache   cache.Store
	mode    SourceMode
}

func newService(catalog *Catalog, api RecipeAPI, store cache.Store, mode SourceMode) Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if store == nil {
		store = cache.NewMemory()
	}
	return Service{
		catalog: catalog,
		api:     api,
		cache:   store,
		mode:    mode,
	}
}

// hasAPIKey 上游是否可用
func (s *Service) hasAPIKey() bool {
	return s.api != nil && s.api.HasAPIKey()
}

// callAPI 取得上游；未設定時回傳 ErrMissingAPIKey
func (s *Service) callAPI() (RecipeAPI, error) {
	if s.api == nil {
		return nil, spoonacular.ErrMissingAPIKey
	}
	return s.api, nil
}

// getFromCache 從緩存獲取並解析
func (s *Service) getFromCache(ctx context.Context, key string, v interface{}) bool {
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := common.ParseJSONBytes(data, v); err != nil {
		common.LogWarn("快取內容解析失敗", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// setToCache 序列化後存入緩存
func (s *Service) setToCache(ctx context.Context, key string, v interface{}) {
	data, err := common.ToJSON(v)
	if err != nil {
		common.LogWarn("快取內容序列化失敗", zap.String("key", key), zap.Error(err))
		return
	}
	s.cache.Set(ctx, key, data)
}
