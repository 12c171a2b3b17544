package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"recipeasy/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.SpoonacularConfig{
		APIKey:  apiKey,
		BaseURL: server.URL,
	})
}

func TestFindByIngredients(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "chicken,rice", q.Get("ingredients"))
		assert.Equal(t, "20", q.Get("number"))
		assert.Equal(t, "1", q.Get("ranking"))
		assert.Equal(t, "false", q.Get("ignorePantry"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Bowl","usedIngredientCount":2,"missedIngredientCount":1,
			"usedIngredients":[{"id":5,"name":"rice","original":"1 cup rice","amount":1,"unit":"cup"}]}]`))
	})

	recipes, err := client.FindByIngredients(context.Background(), "chicken,rice", 20)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, 1, recipes[0].ID)
	assert.Equal(t, 2, recipes[0].UsedIngredientCount)
	require.Len(t, recipes[0].UsedIngredients, 1)
	require.NotNil(t, recipes[0].UsedIngredients[0].Amount)
	assert.Equal(t, 1.0, *recipes[0].UsedIngredients[0].Amount)
}

func TestInformationBulk(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/informationBulk", r.URL.Path)
		assert.Equal(t, "1,2", r.URL.Query().Get("ids"))
		assert.Equal(t, "true", r.URL.Query().Get("includeNutrition"))
		_, _ = w.Write([]byte(`[{"id":1,"readyInMinutes":20,"nutrition":{"nutrients":[{"name":"Protein","amount":31.6,"unit":"g"}]}},{"id":2}]`))
	})

	infos, err := client.InformationBulk(context.Background(), []int{1, 2})
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, 20, infos[0].ReadyInMinutes)
	require.NotNil(t, infos[0].Nutrition)
	assert.Equal(t, "Protein", infos[0].Nutrition.Nutrients[0].Name)
	assert.Nil(t, infos[1].Nutrition)
}

func TestInformation(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/42/information", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"title":"Soup","servings":2,"sourceUrl":"https://example.com/soup"}`))
	})

	info, err := client.Information(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Soup", info.Title)
	require.NotNil(t, info.SourceURL)
	assert.Equal(t, "https://example.com/soup", *info.SourceURL)
}

func TestStatusError(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"status":"failure","message":"quota"}`))
	})

	_, err := client.FindByIngredients(context.Background(), "rice", 20)
	require.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, StatusCode(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Body, "quota")
}

func TestMissingAPIKeySkipsRequest(t *testing.T) {
	called := false
	client := newTestClient(t, "  ", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.False(t, client.HasAPIKey())
	_, err := client.Information(context.Background(), 1)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
	assert.Equal(t, 0, StatusCode(err))
}

func TestMalformedBody(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.InformationBulk(context.Background(), []int{1})
	assert.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
}
