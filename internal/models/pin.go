package models

import (
	"time"
)

// Pin 状态机: active -> hidden (举报达到阈值), active/hidden -> purged (管理员下架，终态)
const (
	PinStatusActive = "active"
	PinStatusHidden = "hidden"
	PinStatusPurged = "purged"
)

type Pin struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"not null" json:"title"`
	Content   string     `gorm:"type:text" json:"content"`
	AuthorID  uint       `gorm:"not null;index" json:"author_id"`
	IsPrivate bool       `gorm:"default:false" json:"is_private"`
	Tags      StringList `gorm:"type:text" json:"tags"`
	Views     int        `gorm:"default:0" json:"views"` // 浏览量，每次详情访问 +1
	Reports   int        `gorm:"default:0" json:"reports"`
	Status    string     `gorm:"size:16;default:'active';index" json:"status"`
	CreatedAt time.Time  `json:"created_at"`

	// 非数据库字段，查询时填充
	Author         string `gorm:"-" json:"author"`
	AuthorVerified bool   `gorm:"-" json:"author_verified"`
	ContentHTML    string `gorm:"-" json:"content_html,omitempty"` // 仅详情接口返回
}
