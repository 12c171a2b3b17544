package favorite

import (
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"recipeasy/internal/api/middleware"
	favoriteService "recipeasy/internal/core/favorite"
	"recipeasy/internal/core/recipe"
	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Service 收藏服務介面
type Service interface {
	List(ctx context.Context, userID string) ([]favoriteService.Favorite, error)
	Add(ctx context.Context, userID string, in favoriteService.AddInput) (*favoriteService.Favorite, error)
	IsFavorited(ctx context.Context, userID string, recipeID int) (bool, error)
	Remove(ctx context.Context, userID string, recipeID int) error
}

// Handler 收藏處理器，所有路由皆需認證
type Handler struct {
	service Service
	debug   bool
}

// NewHandler 創建收藏處理器
func NewHandler(service Service, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

type addRequest struct {
	RecipeID       recipe.FlexibleNumber `json:"recipe_id"`
	Title          string                `json:"title"`
	Image          string                `json:"image"`
	ReadyInMinutes recipe.FlexibleNumber `json:"ready_in_minutes"`
	ProteinGrams   recipe.FlexibleNumber `json:"protein_grams"`
	Calories       recipe.FlexibleNumber `json:"calories"`
}

// HandleList GET /api/favorites
func (h *Handler) HandleList(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"total":     len(favorites),
	})
}

// HandleAdd POST /api/favorites
func (h *Handler) HandleAdd(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteError(c, common.NewValidationError("Invalid request body").Wrap(err), h.debug)
		return
	}

	fav, err := h.service.Add(c.Request.Context(), userID, favoriteService.AddInput{
		RecipeID:       int(req.RecipeID.Value),
		Title:          req.Title,
		Image:          req.Image,
		ReadyInMinutes: int(math.Round(req.ReadyInMinutes.Value)),
		ProteinGrams:   req.ProteinGrams.Value,
		Calories:       req.Calories.Value,
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyFavorite) && fav != nil {
			ce, _ := common.AsCustomError(err)
			c.JSON(ce.Status, gin.H{
				"error":    ce.Title,
				"code":     ce.Code,
				"message":  ce.Message,
				"favorite": fav,
			})
			return
		}
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Recipe added to favorites",
		"favorite": fav,
	})
}

// HandleCheck GET /api/favorites/check/:recipeId
func (h *Handler) HandleCheck(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	favorited, err := h.service.IsFavorited(c.Request.Context(), userID, recipeID)
	if err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipeId":    recipeID,
		"isFavorited": favorited,
	})
}

// HandleRemove DELETE /api/favorites/:recipeId
func (h *Handler) HandleRemove(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	recipeID, ok := h.recipeID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, recipeID); err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Recipe removed from favorites",
		"recipeId": recipeID,
	})
}

func (h *Handler) userID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		common.WriteError(c, common.ErrUnauthorized, h.debug)
	}
	return userID, ok
}

func (h *Handler) recipeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("recipeId")))
	if err != nil {
		common.WriteError(c, common.NewValidationError("Invalid recipe ID"), h.debug)
		return 0, false
	}
	return id, true
}
