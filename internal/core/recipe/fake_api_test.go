package recipe

import (
	"context"
	"sync"
	"testing"

	"recipeasy/internal/core/spoonacular"
	"recipeasy/internal/pkg/common"

	"github.com/stretchr/testify/require"
)

// fakeAPI 模擬上游；未設定 key 時行為與真實 client 相同
type fakeAPI struct {
	mu sync.Mutex

	apiKey  bool
	found   []spoonacular.FoundRecipe
	findErr error
	infos   []spoonacular.RecipeInformation
	bulkErr error
	info    *spoonacular.RecipeInformation
	infoErr error

	findCalls int
	bulkCalls int
	infoCalls int
	bulkIDs   []int
}

func (f *fakeAPI) HasAPIKey() bool {
	return f.apiKey
}

func (f *fakeAPI) FindByIngredients(_ context.Context, _ string, _ int) ([]spoonacular.FoundRecipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.apiKey {
		return nil, spoonacular.ErrMissingAPIKey
	}
	f.findCalls++
	return f.found, f.findErr
}

func (f *fakeAPI) InformationBulk(_ context.Context, ids []int) ([]spoonacular.RecipeInformation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.apiKey {
		return nil, spoonacular.ErrMissingAPIKey
	}
	f.bulkCalls++
	f.bulkIDs = ids
	return f.infos, f.bulkErr
}

func (f *fakeAPI) Information(_ context.Context, _ int) (*spoonacular.RecipeInformation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.apiKey {
		return nil, spoonacular.ErrMissingAPIKey
	}
	f.infoCalls++
	return f.info, f.infoErr
}

func requireCustomError(t *testing.T, err error, code string, status int) {
	t.Helper()
	require.Error(t, err)
	ce, ok := common.AsCustomError(err)
	require.True(t, ok, "expected CustomError, got %v", err)
	require.Equal(t, code, ce.Code)
	require.Equal(t, status, ce.Status)
}

func floatPtr(v float64) *float64 {
	return &v
}
