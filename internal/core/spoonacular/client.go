package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"recipeasy/internal/infrastructure/config"
	"recipeasy/internal/infrastructure/metrics"
	"recipeasy/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

const (
	endpointFindByIngredients = "/recipes/findByIngredients"
	endpointInformationBulk   = "/recipes/informationBulk"
	endpointInformation       = "/recipes/{id}/information"
)

// ErrMissingAPIKey 未設定 API key，請求不會送出
var ErrMissingAPIKey = errors.New("SPOONACULAR_API_KEY not configured")

// StatusError 上游回傳非 2xx 狀態
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recipe API %s returned status %d", e.Endpoint, e.StatusCode)
}

// StatusCode 取出上游狀態碼；非 StatusError 回傳 0
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// Client Spoonacular API 客戶端
type Client struct {
	client *resty.Client
	apiKey string
}

// NewClient 創建新的 Spoonacular 客戶端
func NewClient(cfg config.SpoonacularConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}
}

// HasAPIKey 是否已設定 API key
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// FindByIngredients 以食材搜尋食譜
func (c *Client) FindByIngredients(ctx context.Context, ingredients string, number int) ([]FoundRecipe, error) {
	var result []FoundRecipe
	err := c.get(ctx, endpointFindByIngredients, func(req *resty.Request) {
		req.SetQueryParams(map[string]string{
			"ingredients":  ingredients,
			"number":       strconv.Itoa(number),
			"ranking":      "1",
			"ignorePantry": "false",
		})
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// InformationBulk 批次取得食譜資訊（含營養）
func (c *Client) InformationBulk(ctx context.Context, ids []int) ([]RecipeInformation, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	var result []RecipeInformation
	err := c.get(ctx, endpointInformationBulk, func(req *resty.Request) {
		req.SetQueryParams(map[string]string{
			"ids":              strings.Join(parts, ","),
			"includeNutrition": "true",
		})
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Information 取得單一食譜資訊（含營養）
func (c *Client) Information(ctx context.Context, id int) (*RecipeInformation, error) {
	var result RecipeInformation
	err := c.get(ctx, endpointInformation, func(req *resty.Request) {
		req.SetPathParam("id", strconv.Itoa(id))
		req.SetQueryParam("includeNutrition", "true")
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// get 發送 GET 請求並解析 JSON；API key 放在 apiKey 查詢參數
func (c *Client) get(ctx context.Context, endpoint string, build func(*resty.Request), out interface{}) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey)
	build(req)

	start := time.Now()
	resp, err := req.Get(endpoint)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordUpstream(endpoint, 0, duration)
		common.LogUpstreamCall(endpoint, 0, duration, err)
		return fmt.Errorf("failed to send request to recipe API: %w", err)
	}

	status := resp.StatusCode()
	metrics.RecordUpstream(endpoint, status, duration)

	if resp.IsError() {
		statusErr := &StatusError{
			Endpoint:   endpoint,
			StatusCode: status,
			Body:       truncate(resp.String(), 500),
		}
		common.LogUpstreamCall(endpoint, status, duration, statusErr)
		return statusErr
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		common.LogUpstreamCall(endpoint, status, duration, err)
		return fmt.Errorf("failed to parse recipe API response: %w", err)
	}

	common.LogUpstreamCall(endpoint, status, duration, nil)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
