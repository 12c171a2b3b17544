package recipe

import (
	"context"
	"errors"
	"io"
	"net/http"

	recipeService "recipeasy/internal/core/recipe"
	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Searcher 食譜搜尋
type Searcher interface {
	Search(ctx context.Context, req recipeService.SearchRequest) (*recipeService.SearchResult, error)
}

// DetailFetcher 食譜詳情
type DetailFetcher interface {
	Get(ctx context.Context, rawID string) (*recipeService.RecipeDetail, error)
}

// Handler 食譜處理器
type Handler struct {
	search Searcher
	detail DetailFetcher
	debug  bool
}

// NewHandler 創建食譜處理器
func NewHandler(search Searcher, detail DetailFetcher, debug bool) *Handler {
	return &Handler{
		search: search,
		detail: detail,
		debug:  debug,
	}
}

// HandleSearch POST /api/recipes/search
func (h *Handler) HandleSearch(c *gin.Context) {
	requestID := common.RequestID(c)

	var req recipeService.SearchRequest
	// 空 body 與 {} 相同，交由服務層回報缺少食材
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.LogWarn("搜尋請求格式無效",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		common.WriteError(c, common.NewValidationError("Invalid request body").Wrap(err), h.debug)
		return
	}

	result, err := h.search.Search(c.Request.Context(), req)
	if err != nil {
		common.LogWarn("食譜搜尋失敗",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		common.WriteError(c, err, h.debug)
		return
	}

	common.LogInfo("食譜搜尋完成",
		zap.String("request_id", requestID),
		zap.Int("total", result.Total),
		zap.String("source", sourceLabel(result.Source)),
	)
	c.JSON(http.StatusOK, result)
}

// HandleDetail GET /api/recipes/:id
func (h *Handler) HandleDetail(c *gin.Context) {
	requestID := common.RequestID(c)
	id := c.Param("id")

	detail, err := h.detail.Get(c.Request.Context(), id)
	if err != nil {
		common.LogWarn("取得食譜詳情失敗",
			zap.String("request_id", requestID),
			zap.String("recipe_id", id),
			zap.Error(err),
		)
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func sourceLabel(source string) string {
	if source == "" {
		return "live"
	}
	return source
}
