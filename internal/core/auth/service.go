package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"recipeasy/internal/infrastructure/config"
	"recipeasy/internal/infrastructure/database"
	"recipeasy/internal/pkg/common"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignupInput 註冊請求
type SignupInput struct {
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	DefaultProteinGoal *float64 `json:"default_protein_goal"`
	DefaultMaxTime     *float64 `json:"default_max_time"`
}

// LoginInput 登入請求
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PreferencesInput 偏好更新請求；未提供的欄位不變
type PreferencesInput struct {
	DefaultProteinGoal *float64 `json:"default_protein_goal"`
	DefaultMaxTime     *float64 `json:"default_max_time"`
}

// Result 註冊或登入結果
type Result struct {
	Token string
	User  *User
}

// Claims JWT 內容
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service 認證服務
type Service struct {
	db     *gorm.DB
	secret string
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

// NewService 創建認證服務；db 可為 nil（資料庫未就緒）
func NewService(db *gorm.DB, cfg config.AuthConfig) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{
		db:     db,
		secret: cfg.JWTSecret,
		ttl:    ttl,
		cost:   cost,
		now:    time.Now,
	}
}

// Signup 註冊新使用者並簽發 token
func (s *Service) Signup(ctx context.Context, in SignupInput) (*Result, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, common.NewValidationError("Email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, common.NewValidationError("Please enter a valid email address")
	}
	if len(in.Password) < minPasswordLength {
		return nil, common.NewValidationError("Password must be at least 6 characters long")
	}

	if _, err := s.findByEmail(ctx, email); err == nil {
		return nil, common.ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrInternalError.Wrap(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, common.ErrInternalError.Wrap(err)
	}

	user := &User{
		Email:              email,
		PasswordHash:       string(hash),
		DefaultProteinGoal: DefaultProteinGoal,
		DefaultMaxTime:     DefaultMaxTime,
	}
	applyPreferences(user, PreferencesInput{
		DefaultProteinGoal: nonZero(in.DefaultProteinGoal),
		DefaultMaxTime:     nonZero(in.DefaultMaxTime),
	})

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrInternalError.Wrap(err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	common.LogInfo("使用者已註冊", zap.String("user_id", user.ID))
	return &Result{Token: token, User: user}, nil
}

// Login 驗證帳密並簽發 token
func (s *Service) Login(ctx context.Context, in LoginInput) (*Result, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, common.NewValidationError("Email and password are required")
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrAuthFailed
		}
		return nil, common.ErrInternalError.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, common.ErrAuthFailed
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, User: user}, nil
}

// GenerateToken 簽發 HS256 token
func (s *Service) GenerateToken(userID string) (string, error) {
	if s.secret == "" {
		return "", common.ErrAuthConfiguration.Wrap(errors.New("JWT_SECRET not configured"))
	}

	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", common.ErrInternalError.Wrap(err)
	}
	return signed, nil
}

// ParseToken 驗證 token 並取出使用者 ID
func (s *Service) ParseToken(tokenString string) (string, error) {
	if s.secret == "" {
		return "", common.ErrAuthConfiguration
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired.Wrap(err)
		}
		return "", common.ErrInvalidToken.Wrap(err)
	}
	if claims.UserID == "" {
		return "", common.ErrInvalidToken
	}
	return claims.UserID, nil
}

// Authenticate 驗證 token 並載入使用者
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*User, error) {
	userID, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	var user User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrAuthFailed.WithMessage("User not found")
		}
		return nil, common.ErrInternalError.Wrap(err)
	}
	return &user, nil
}

// UpdatePreferences 更新預設偏好，數值會限制在允許範圍
func (s *Service) UpdatePreferences(ctx context.Context, user *User, in PreferencesInput) (*User, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	applyPreferences(user, in)
	if err := s.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"default_protein_goal": user.DefaultProteinGoal,
		"default_max_time":     user.DefaultMaxTime,
	}).Error; err != nil {
		return nil, common.ErrInternalError.Wrap(err)
	}
	return user, nil
}

// Ready 資料庫是否可用
func (s *Service) Ready(ctx context.Context) bool {
	return database.Ready(ctx, s.db)
}

func (s *Service) ready(ctx context.Context) error {
	if err := database.Ping(ctx, s.db); err != nil {
		return common.ErrDatabaseUnavailable.Wrap(err)
	}
	return nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func applyPreferences(user *User, in PreferencesInput) {
	if in.DefaultProteinGoal != nil {
		user.DefaultProteinGoal = clamp(*in.DefaultProteinGoal, MinProteinGoal, MaxProteinGoal)
	}
	if in.DefaultMaxTime != nil {
		user.DefaultMaxTime = clamp(*in.DefaultMaxTime, MinMaxTime, MaxMaxTime)
	}
}

// nonZero 註冊時 0 視為未提供
func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}

func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
