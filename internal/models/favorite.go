package models

import (
	"time"
)

// Favorite 收藏模型 - 用户收藏 Pin，(user_id, pin_id) 唯一
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_pin" json:"user_id"`
	PinID     uint      `gorm:"not null;index;uniqueIndex:idx_user_pin" json:"pin_id"`
	Pin       Pin       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
