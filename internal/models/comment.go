package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PinID     uint      `gorm:"not null;index" json:"pin_id"`
	Pin       Pin       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Reports   int       `gorm:"default:0" json:"reports"`
	CreatedAt time.Time `json:"created_at"`
	// No delete path for comments; reports past the threshold hide them instead

	// 非数据库字段，查询时填充
	Author         string `gorm:"-" json:"author"`
	AuthorVerified bool   `gorm:"-" json:"author_verified"`
}
