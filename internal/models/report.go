package models

import (
	"time"
)

// Report 举报记录，按 (user_ip, entity_type, entity_id) 唯一。
// 只插入，不更新不删除；唯一约束保证同一来源对同一目标至多计数一次。
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserIP     string    `gorm:"size:45;not null;uniqueIndex:idx_reporter_target" json:"user_ip"`
	EntityType string    `gorm:"size:20;not null;uniqueIndex:idx_reporter_target" json:"entity_type"` // "pin" or "comment"
	EntityID   uint      `gorm:"not null;uniqueIndex:idx_reporter_target" json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}
