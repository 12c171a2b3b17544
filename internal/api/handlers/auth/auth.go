package auth

import (
	"context"
	"errors"
	"io"
	"net/http"

	"recipeasy/internal/api/middleware"
	authService "recipeasy/internal/core/auth"
	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Service 認證服務介面
type Service interface {
	Signup(ctx context.Context, in authService.SignupInput) (*authService.Result, error)
	Login(ctx context.Context, in authService.LoginInput) (*authService.Result, error)
	UpdatePreferences(ctx context.Context, user *authService.User, in authService.PreferencesInput) (*authService.User, error)
}

// Handler 認證處理器
type Handler struct {
	service Service
	debug   bool
}

// NewHandler 創建認證處理器
func NewHandler(service Service, debug bool) *Handler {
	return &Handler{service: service, debug: debug}
}

// credentialsRequest 偏好欄位只接受 JSON 數字，其他型別視為未提供
type credentialsRequest struct {
	Email              string      `json:"email"`
	Password           string      `json:"password"`
	DefaultProteinGoal interface{} `json:"default_protein_goal"`
	DefaultMaxTime     interface{} `json:"default_max_time"`
}

// HandleSignup POST /api/auth/signup
func (h *Handler) HandleSignup(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.service.Signup(c.Request.Context(), authService.SignupInput{
		Email:              req.Email,
		Password:           req.Password,
		DefaultProteinGoal: numberField(req.DefaultProteinGoal),
		DefaultMaxTime:     numberField(req.DefaultMaxTime),
	})
	if err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   result.Token,
		"user":    result.User.Safe(),
	})
}

// HandleLogin POST /api/auth/login
func (h *Handler) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), authService.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	common.LogInfo("使用者登入", zap.String("user_id", result.User.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User.Safe(),
	})
}

// HandleMe GET /api/auth/me
func (h *Handler) HandleMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		common.WriteError(c, common.ErrUnauthorized, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Safe()})
}

// HandleUpdatePreferences PUT /api/auth/preferences
func (h *Handler) HandleUpdatePreferences(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		common.WriteError(c, common.ErrUnauthorized, h.debug)
		return
	}

	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}

	updated, err := h.service.UpdatePreferences(c.Request.Context(), user, authService.PreferencesInput{
		DefaultProteinGoal: numberField(req.DefaultProteinGoal),
		DefaultMaxTime:     numberField(req.DefaultMaxTime),
	})
	if err != nil {
		common.WriteError(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Preferences updated successfully",
		"user":    updated.Safe(),
	})
}

func (h *Handler) bind(c *gin.Context, req *credentialsRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteError(c, common.NewValidationError("Invalid request body").Wrap(err), h.debug)
		return false
	}
	return true
}

func numberField(v interface{}) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}
