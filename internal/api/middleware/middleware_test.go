package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"recipeasy/internal/core/auth"
	"recipeasy/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthenticator struct {
	users map[string]*auth.User
	err   error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[token]
	if !ok {
		return nil, common.ErrInvalidToken
	}
	return user, nil
}

func perform(r http.Handler, method, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) common.ErrorResponse {
	t.Helper()
	var resp common.ErrorResponse
	require.NoError(t, common.ParseJSONBytes(w.Body.Bytes(), &resp))
	return resp
}

func authRouter(a Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/private", RequireAuth(a, false), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user": user.Email})
	})
	r.GET("/public", OptionalAuth(a), func(c *gin.Context) {
		id, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id, "authenticated": ok})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	a := &fakeAuthenticator{users: map[string]*auth.User{"good": {ID: "u1", Email: "cook@example.com"}}}
	r := authRouter(a)

	t.Run("缺少標頭", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", decodeError(t, w).Error)
	})

	t.Run("非 Bearer", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", "", map[string]string{"Authorization": "Basic abc"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", decodeError(t, w).Error)
	})

	t.Run("無效 token", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", "", map[string]string{"Authorization": "Bearer bad"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token", decodeError(t, w).Error)
	})

	t.Run("成功", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/private", "", map[string]string{"Authorization": "Bearer good"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"cook@example.com"}`, w.Body.String())
	})
}

func TestRequireAuthPropagatesServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		title  string
	}{
		{common.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{common.ErrAuthConfiguration, http.StatusInternalServerError, "Server configuration error"},
		{common.ErrDatabaseUnavailable, http.StatusServiceUnavailable, "Database unavailable"},
	}

	for _, tt := range tests {
		r := authRouter(&fakeAuthenticator{err: tt.err})
		w := perform(r, http.MethodGet, "/private", "", map[string]string{"Authorization": "Bearer any"})
		assert.Equal(t, tt.status, w.Code)
		assert.Equal(t, tt.title, decodeError(t, w).Error)
	}
}

func TestOptionalAuth(t *testing.T) {
	a := &fakeAuthenticator{users: map[string]*auth.User{"good": {ID: "u1"}}}
	r := authRouter(a)

	w := perform(r, http.MethodGet, "/public", "", nil)
	assert.JSONEq(t, `{"userId":"","authenticated":false}`, w.Body.String())

	w = perform(r, http.MethodGet, "/public", "", map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"","authenticated":false}`, w.Body.String())

	w = perform(r, http.MethodGet, "/public", "", map[string]string{"Authorization": "Bearer good"})
	assert.JSONEq(t, `{"userId":"u1","authenticated":true}`, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(2, time.Minute), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodGet, "/", "", nil).Code)

	w := perform(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, common.ErrCodeTooManyRequests, decodeError(t, w).Code)
}

func TestRateLimiterPerClient(t *testing.T) {
	limiter := NewRateLimiter(1, time.Hour)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestBodySizeLimit(t *testing.T) {
	r := gin.New()
	r.POST("/", BodySizeLimit(8), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, perform(r, http.MethodPost, "/", "small", nil).Code)

	w := perform(r, http.MethodPost, "/", "this body is too large", nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, common.ErrCodeBodyTooLarge, decodeError(t, w).Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(true))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := perform(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, common.ErrCodeInternalError, resp.Code)
	assert.Equal(t, "Server error", resp.Error)
	assert.Contains(t, resp.Details, "boom")
}

func TestLoggerPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Logger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := perform(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
