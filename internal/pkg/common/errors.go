package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Error   string `json:"error"`             // 錯誤標題
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Title   string // 錯誤標題
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 回傳原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Response 轉換為 API 錯誤響應，debug 時附帶原始錯誤
func (e *CustomError) Response(debug bool) ErrorResponse {
	resp := ErrorResponse{
		Error:   e.Title,
		Code:    e.Code,
		Message: e.Message,
	}
	if debug && e.Err != nil {
		resp.Details = e.Err.Error()
	}
	return resp
}

// WithMessage 複製錯誤並替換信息
func (e *CustomError) WithMessage(message string) *CustomError {
	clone := *e
	clone.Message = message
	return &clone
}

// Wrap 複製錯誤並附帶原始錯誤
func (e *CustomError) Wrap(err error) *CustomError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is 以錯誤代碼比對
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError 創建新的自定義錯誤
func NewError(code, title, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Title:   title,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AsCustomError 從錯誤鏈取出 CustomError
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) *CustomError {
	return ErrValidation.WithMessage(message)
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeValidation      = "VALIDATION_ERROR"  // 400
	ErrCodeUnauthorized    = "UNAUTHORIZED"      // 401
	ErrCodeInvalidToken    = "INVALID_TOKEN"     // 401
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"     // 401
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeConflict        = "CONFLICT"          // 409
	ErrCodeBodyTooLarge    = "REQUEST_TOO_LARGE" // 413
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError       = "INTERNAL_ERROR"       // 500
	ErrCodeConfiguration       = "CONFIGURATION_ERROR"  // 500
	ErrCodeSearchFailed        = "SEARCH_FAILED"        // 500
	ErrCodeDetailFetchFailed   = "DETAIL_FETCH_FAILED"  // 500
	ErrCodeQuotaExceeded       = "QUOTA_EXCEEDED"       // 503
	ErrCodeDatabaseUnavailable = "DATABASE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout      = "GATEWAY_TIMEOUT"      // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrValidation      = NewError(ErrCodeValidation, "Validation error", "Invalid request", http.StatusBadRequest, nil)
	ErrUnauthorized    = NewError(ErrCodeUnauthorized, "Authentication required", "Please provide a valid authentication token", http.StatusUnauthorized, nil)
	ErrAuthFailed      = NewError(ErrCodeUnauthorized, "Authentication failed", "Invalid email or password", http.StatusUnauthorized, nil)
	ErrInvalidToken    = NewError(ErrCodeInvalidToken, "Invalid token", "The provided token is invalid", http.StatusUnauthorized, nil)
	ErrTokenExpired    = NewError(ErrCodeTokenExpired, "Token expired", "Your session has expired. Please log in again.", http.StatusUnauthorized, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "Not found", "Recipe not found", http.StatusNotFound, nil)
	ErrAlreadyExists   = NewError(ErrCodeConflict, "User exists", "An account with this email already exists", http.StatusConflict, nil)
	ErrAlreadyFavorite = NewError(ErrCodeConflict, "Already favorited", "This recipe is already in your favorites", http.StatusConflict, nil)
	ErrBodyTooLarge    = NewError(ErrCodeBodyTooLarge, "Request body too large", "Request body exceeds the allowed size", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Too many requests", "Rate limit exceeded, please retry later", http.StatusTooManyRequests, nil)

	// 服務器錯誤
	ErrInternalError       = NewError(ErrCodeInternalError, "Server error", "Internal server error", http.StatusInternalServerError, nil)
	ErrConfiguration       = NewError(ErrCodeConfiguration, "Configuration error", "Recipe API is not configured. Please set SPOONACULAR_API_KEY.", http.StatusInternalServerError, nil)
	ErrAuthConfiguration   = NewError(ErrCodeConfiguration, "Server configuration error", "Authentication service unavailable", http.StatusInternalServerError, nil)
	ErrSearchFailed        = NewError(ErrCodeSearchFailed, "Search failed", "An error occurred while searching for recipes", http.StatusInternalServerError, nil)
	ErrDetailFetchFailed   = NewError(ErrCodeDetailFetchFailed, "Failed to fetch recipe", "An error occurred while fetching recipe details", http.StatusInternalServerError, nil)
	ErrQuotaExceeded       = NewError(ErrCodeQuotaExceeded, "API limit reached", "Recipe search is temporarily unavailable. Please try again later.", http.StatusServiceUnavailable, nil)
	ErrDatabaseUnavailable = NewError(ErrCodeDatabaseUnavailable, "Database unavailable", "Unable to process this request because the database connection is not ready.", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout      = NewError(ErrCodeGatewayTimeout, "Request timeout", "The request took too long to complete", http.StatusGatewayTimeout, nil)
)
