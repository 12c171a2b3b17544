package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 偏好範圍
const (
	DefaultProteinGoal = 0
	MinProteinGoal     = 0
	MaxProteinGoal     = 200
	DefaultMaxTime     = 60
	MinMaxTime         = 5
	MaxMaxTime         = 300
)

// User 使用者
type User struct {
	ID                 string  `gorm:"primaryKey;size:36"`
	Email              string  `gorm:"uniqueIndex;not null"`
	PasswordHash       string  `gorm:"not null"`
	DefaultProteinGoal float64 `gorm:"not null;default:0"`
	DefaultMaxTime     float64 `gorm:"not null;default:60"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BeforeCreate 產生 UUID 主鍵
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// SafeUser 不含密碼的使用者資訊
type SafeUser struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	DefaultProteinGoal float64   `json:"default_protein_goal"`
	DefaultMaxTime     float64   `json:"default_max_time"`
	CreatedAt          time.Time `json:"created_at"`
}

// Safe 轉換為可回傳的使用者資訊
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:                 u.ID,
		Email:              u.Email,
		DefaultProteinGoal: u.DefaultProteinGoal,
		DefaultMaxTime:     u.DefaultMaxTime,
		CreatedAt:          u.CreatedAt,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
