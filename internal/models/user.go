package models

import (
	"time"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"uniqueIndex;not null" json:"username"` // Case-sensitive, exact match on login
	Password   string    `gorm:"not null" json:"-"`                    // Stored and compared as-is
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	IsBanned   bool      `gorm:"default:false" json:"is_banned"`
	CreatedAt  time.Time `json:"created_at"`
	// No DeletedAt - users are never removed, only banned
}
