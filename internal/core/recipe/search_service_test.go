package recipe

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"recipeasy/internal/core/cache"
	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearch(api RecipeAPI, mode SourceMode) *SearchService {
	return NewSearchService(DefaultCatalog(), api, cache.NewMemory(), mode)
}

func liveFixture() *fakeAPI {
	return &fakeAPI{
		apiKey: true,
		found: []spoonacular.FoundRecipe{
			{
				ID: 1, Title: "Half Match", Image: "https://img/1.jpg",
				UsedIngredientCount: 2, MissedIngredientCount: 2,
				UsedIngredients: []spoonacular.Ingredient{{Name: "rice", Original: "1 cup rice", Amount: floatPtr(1), Unit: "cup"}},
			},
			{ID: 2, Title: "Best Match", UsedIngredientCount: 3, MissedIngredientCount: 1},
			{ID: 3, Title: "No Info", UsedIngredientCount: 2, MissedIngredientCount: 2},
		},
		infos: []spoonacular.RecipeInformation{
			{
				ID: 1, ReadyInMinutes: 25, Summary: "<b>Tasty</b> rice",
				Nutrition: &spoonacular.Nutrition{Nutrients: []spoonacular.Nutrient{
					{Name: "Calories", Amount: 450.4, Unit: "kcal"},
					{Name: "Protein", Amount: 30.5, Unit: "g"},
				}},
			},
			{
				ID: 2, ReadyInMinutes: 45,
				Nutrition: &spoonacular.Nutrition{Nutrients: []spoonacular.Nutrient{{Name: "protein", Amount: 12, Unit: "g"}}},
			},
		},
	}
}

func TestSearchValidation(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	for _, req := range []SearchRequest{
		{},
		{Ingredients: IngredientList{Raw: "   ", Provided: true}},
		{Ingredients: Strings()},
	} {
		_, err := s.Search(context.Background(), req)
		requireCustomError(t, err, common.ErrCodeValidation, http.StatusBadRequest)
		assert.True(t, common.IsValidationError(err))
	}
}

func TestSearchSampleChickenBroccoli(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	result, err := s.Search(context.Background(), SearchRequest{Ingredients: IngredientList{Raw: "chicken, broccoli", Provided: true}})
	require.NoError(t, err)

	assert.Equal(t, "sample", result.Source)
	require.NotEmpty(t, result.Recipes)
	assert.Equal(t, len(result.Recipes), result.Total)

	top := result.Recipes[0]
	assert.Equal(t, 900001, top.ID)
	assert.Equal(t, 2, top.UsedIngredientCount)
	assert.Equal(t, 5, top.MissedIngredientCount)
	assert.Equal(t, 29, top.MatchPercentage)

	require.NotNil(t, result.Filters)
	assert.Equal(t, SearchFilters{Ingredients: "chicken, broccoli", MinProtein: 0, MaxTime: 999}, *result.Filters)
}

func TestSearchSampleNoMatches(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	result, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("tofu")})
	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.NotNil(t, result.Recipes)
	assert.Equal(t, 0, result.Total)
}

func TestSearchSampleMaxTime(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	result, err := s.Search(context.Background(), SearchRequest{
		Ingredients: Strings("garlic"),
		MaxTime:     Number(20),
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recipes)
	for _, r := range result.Recipes {
		assert.LessOrEqual(t, r.ReadyInMinutes, 20)
		assert.NotEqual(t, 900002, r.ID)
	}
}

func TestSearchSampleMinProtein(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	result, err := s.Search(context.Background(), SearchRequest{
		Ingredients: Strings("garlic", "rice"),
		MinProtein:  Number(30),
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recipes)
	for _, r := range result.Recipes {
		assert.GreaterOrEqual(t, r.ProteinGrams, float64(30))
	}
}

func TestSearchNormalizesFilters(t *testing.T) {
	s := newSearch(nil, ForcedSample)

	result, err := s.Search(context.Background(), SearchRequest{
		Ingredients: Strings("rice"),
		MinProtein:  Number(-5),
		MaxTime:     Number(0),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), result.Filters.MinProtein)
	assert.Equal(t, float64(999), result.Filters.MaxTime)
}

func TestSearchNoAPIKeyFallsBackWithoutCalling(t *testing.T) {
	api := &fakeAPI{apiKey: false}
	s := newSearch(api, PreferLiveWithFallback)

	result, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice")})
	require.NoError(t, err)
	assert.Equal(t, "sample", result.Source)
	assert.Equal(t, 0, api.findCalls)
}

func TestSearchLive(t *testing.T) {
	api := liveFixture()
	s := newSearch(api, PreferLiveWithFallback)

	result, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice", "chicken")})
	require.NoError(t, err)

	assert.Empty(t, result.Source)
	require.NotNil(t, result.Filters)
	assert.Equal(t, "rice,chicken", result.Filters.Ingredients)
	assert.Equal(t, []int{1, 2, 3}, api.bulkIDs)

	require.Len(t, result.Recipes, 3)
	assert.Equal(t, []int{2, 1, 3}, ids(result.Recipes))

	half := result.Recipes[1]
	assert.Equal(t, float64(31), half.ProteinGrams)
	assert.Equal(t, float64(450), half.Calories)
	assert.Equal(t, 25, half.ReadyInMinutes)
	assert.Equal(t, "Tasty rice...", half.Summary)
	assert.Equal(t, 50, half.MatchPercentage)
	require.Len(t, half.UsedIngredients, 1)
	assert.Equal(t, "1 cup rice", half.UsedIngredients[0].Original)
	assert.NotNil(t, half.MissedIngredients)

	noInfo := result.Recipes[2]
	assert.Equal(t, float64(0), noInfo.ProteinGrams)
	assert.Equal(t, 0, noInfo.ReadyInMinutes)
	assert.Equal(t, "", noInfo.Summary)
}

func TestSearchLiveFilters(t *testing.T) {
	api := liveFixture()
	s := newSearch(api, LiveOnly)

	result, err := s.Search(context.Background(), SearchRequest{
		Ingredients: Strings("rice"),
		MinProtein:  Number(20),
		MaxTime:     Number(30),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(result.Recipes))
	assert.Equal(t, 1, result.Total)
}

func TestSearchLiveEmptyIsCached(t *testing.T) {
	api := &fakeAPI{apiKey: true}
	s := newSearch(api, PreferLiveWithFallback)
	req := SearchRequest{Ingredients: Strings("unobtainium")}

	result, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, result.Recipes)
	assert.Equal(t, 0, result.Total)
	assert.Nil(t, result.Filters)
	assert.Empty(t, result.Source)
	assert.Equal(t, 0, api.bulkCalls)

	_, err = s.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, api.findCalls)
}

func TestSearchCacheHitSkipsUpstream(t *testing.T) {
	api := liveFixture()
	s := newSearch(api, PreferLiveWithFallback)
	req := SearchRequest{Ingredients: Strings("rice")}

	first, err := s.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := s.Search(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.findCalls)
	assert.Equal(t, 1, api.bulkCalls)

	// 不同篩選條件使用不同快取鍵
	_, err = s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice"), MinProtein: Number(10)})
	require.NoError(t, err)
	assert.Equal(t, 2, api.findCalls)
}

func TestSearchLiveFailureFallsBack(t *testing.T) {
	api := liveFixture()
	api.bulkErr = errors.New("connection reset")
	s := newSearch(api, PreferLiveWithFallback)

	result, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice")})
	require.NoError(t, err)
	assert.Equal(t, "sample", result.Source)
}

func TestSearchLiveOnlyErrors(t *testing.T) {
	tests := []struct {
		name   string
		api    *fakeAPI
		code   string
		status int
	}{
		{"missing key", &fakeAPI{apiKey: false}, common.ErrCodeConfiguration, http.StatusInternalServerError},
		{"quota", &fakeAPI{apiKey: true, findErr: &spoonacular.StatusError{StatusCode: http.StatusPaymentRequired}}, common.ErrCodeQuotaExceeded, http.StatusServiceUnavailable},
		{"upstream error", &fakeAPI{apiKey: true, findErr: &spoonacular.StatusError{StatusCode: http.StatusInternalServerError}}, common.ErrCodeSearchFailed, http.StatusInternalServerError},
		{"network", &fakeAPI{apiKey: true, findErr: errors.New("dial tcp: timeout")}, common.ErrCodeSearchFailed, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSearch(tt.api, LiveOnly)
			_, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice")})
			requireCustomError(t, err, tt.code, tt.status)
		})
	}
}

func TestSearchNilAPILiveOnly(t *testing.T) {
	s := newSearch(nil, LiveOnly)

	_, err := s.Search(context.Background(), SearchRequest{Ingredients: Strings("rice")})
	requireCustomError(t, err, common.ErrCodeConfiguration, http.StatusInternalServerError)
}
