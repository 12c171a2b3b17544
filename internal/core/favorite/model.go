package favorite

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite 使用者收藏的食譜快照
type Favorite struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	UserID         string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_user_recipe;index:idx_user_created"`
	RecipeID       int       `json:"recipe_id" gorm:"not null;uniqueIndex:idx_user_recipe"`
	Title          string    `json:"title" gorm:"not null"`
	Image          string    `json:"image" gorm:"not null;default:''"`
	ReadyInMinutes int       `json:"ready_in_minutes" gorm:"not null;default:0"`
	ProteinGrams   float64   `json:"protein_grams" gorm:"not null;default:0"`
	Calories       float64   `json:"calories" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"created_at" gorm:"index:idx_user_created,sort:desc"`
}

// BeforeCreate 產生 UUID 主鍵
func (f *Favorite) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
