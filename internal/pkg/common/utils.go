package common

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID 取得請求 ID，缺少時生成並寫回響應標頭
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.Writer.Header().Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// WriteError 寫入錯誤響應；非 CustomError 一律視為內部錯誤
func WriteError(c *gin.Context, err error, debug bool) {
	ce, ok := AsCustomError(err)
	if !ok {
		ce = ErrInternalError.Wrap(err)
	}
	c.AbortWithStatusJSON(ce.Status, ce.Response(debug))
}
