package middleware

import (
	"context"
	"strings"

	"recipeasy/internal/core/auth"
	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contextUserIDKey = "userID"
	contextUserKey   = "user"
)

// Authenticator 驗證 bearer token 並載入使用者
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

// RequireAuth 必須登入；失敗時回傳對應錯誤
func RequireAuth(authenticator Authenticator, debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			common.WriteError(c, common.ErrUnauthorized, debug)
			return
		}

		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			common.LogDebug("認證失敗", zap.Error(err), zap.String("path", c.Request.URL.Path))
			common.WriteError(c, err, debug)
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalAuth 有合法 token 時附加使用者，不會拒絕請求
func OptionalAuth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := authenticator.Authenticate(c.Request.Context(), token); err == nil {
				setUser(c, user)
			}
		}
		c.Next()
	}
}

// CurrentUser 取得已認證使用者
func CurrentUser(c *gin.Context) (*auth.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*auth.User)
	return user, ok && user != nil
}

// UserID 取得已認證使用者 ID
func UserID(c *gin.Context) (string, bool) {
	id := c.GetString(contextUserIDKey)
	return id, id != ""
}

func setUser(c *gin.Context, user *auth.User) {
	c.Set(contextUserIDKey, user.ID)
	c.Set(contextUserKey, user)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
