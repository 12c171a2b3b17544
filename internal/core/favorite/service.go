package favorite

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipeasy/internal/infrastructure/database"
	"recipeasy/internal/pkg/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddInput 新增收藏請求
type AddInput struct {
	RecipeID       int     `json:"recipe_id"`
	Title          string  `json:"title"`
	Image          string  `json:"image"`
	ReadyInMinutes int     `json:"ready_in_minutes"`
	ProteinGrams   float64 `json:"protein_grams"`
	Calories       float64 `json:"calories"`
}

// ErrFavoriteNotFound 收藏不存在
var ErrFavoriteNotFound = common.ErrNotFound.WithMessage("Favorite not found")

// Service 收藏服務
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// Option 服務選項
type Option func(*Service)

// WithClock 替換時間來源（測試用）
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService 創建收藏服務；db 可為 nil（資料庫未就緒）
func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List 依收藏時間由新到舊列出
func (s *Service) List(ctx context.Context, userID string) ([]Favorite, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	favorites := make([]Favorite, 0)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, common.ErrInternalError.WithMessage("An error occurred while fetching favorites").Wrap(err)
	}
	return favorites, nil
}

// Add 新增收藏；已存在時回傳既有紀錄與 ErrAlreadyFavorite
func (s *Service) Add(ctx context.Context, userID string, in AddInput) (*Favorite, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if in.RecipeID == 0 || title == "" {
		return nil, common.NewValidationError("Recipe ID and title are required")
	}

	existing, err := s.find(ctx, userID, in.RecipeID)
	if err == nil {
		return existing, common.ErrAlreadyFavorite
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrInternalError.Wrap(err)
	}

	fav := &Favorite{
		UserID:         userID,
		RecipeID:       in.RecipeID,
		Title:          title,
		Image:          in.Image,
		ReadyInMinutes: in.ReadyInMinutes,
		ProteinGrams:   in.ProteinGrams,
		Calories:       in.Calories,
		CreatedAt:      s.now(),
	}
	if err := s.db.WithContext(ctx).Create(fav).Error; err != nil {
		// 併發寫入時由唯一索引擋下
		if existing, findErr := s.find(ctx, userID, in.RecipeID); findErr == nil {
			return existing, common.ErrAlreadyFavorite
		}
		return nil, common.ErrInternalError.WithMessage("An error occurred while adding to favorites").Wrap(err)
	}

	common.LogDebug("已新增收藏", zap.String("user_id", userID), zap.Int("recipe_id", in.RecipeID))
	return fav, nil
}

// IsFavorited 是否已收藏
func (s *Service) IsFavorited(ctx context.Context, userID string, recipeID int) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, common.ErrInternalError.WithMessage("An error occurred while checking favorite status").Wrap(err)
	}
	return count > 0, nil
}

// Remove 取消收藏
func (s *Service) Remove(ctx context.Context, userID string, recipeID int) error {
	if err := s.ready(ctx); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&Favorite{})
	if result.Error != nil {
		return common.ErrInternalError.WithMessage("An error occurred while removing favorite").Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *Service) find(ctx context.Context, userID string, recipeID int) (*Favorite, error) {
	var fav Favorite
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (s *Service) ready(ctx context.Context) error {
	if err := database.Ping(ctx, s.db); err != nil {
		return common.ErrDatabaseUnavailable.Wrap(err)
	}
	return nil
}
