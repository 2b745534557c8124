package policy

import (
	"pinboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 举报阈值为固定策略常量，不随调用方配置
const (
	PinReportThreshold     = 10
	CommentReportThreshold = 5
)

const (
	EntityPin     = "pin"
	EntityComment = "comment"
)

// VisiblePins 返回 Pin 可见性谓词（所有读路径共用，避免某个 handler 漏掉过滤）。
// 规则：status 为 active，且（非私密 或 viewer 为作者本人）。
// viewerID 为 0 表示匿名访问，私密内容对其一律不可见。
func VisiblePins(viewerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("pins.status = ? AND (pins.is_private = ? OR pins.author_id = ?)",
			models.PinStatusActive, false, viewerID)
	}
}

// ActivePins 只做状态过滤（被举报隐藏/下架的排除在外），不带私密维度。
// 收藏列表用它：收藏过的 Pin 即便私密也对收藏者展示。
func ActivePins() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("pins.status = ?", models.PinStatusActive)
	}
}

// VisibleComments 评论可见性谓词。评论没有私密维度，只看举报计数。
func VisibleComments() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("comments.reports < ?", CommentReportThreshold)
	}
}

// ValidEntityType 校验举报目标类型
func ValidEntityType(entityType string) bool {
	return entityType == EntityPin || entityType == EntityComment
}

// RecordReport 记录一次举报。同一 (来源, 类型, ID) 的重复举报靠唯一索引
// 在插入时原子去重：冲突时计数不变，按成功返回（重复举报不是错误）。
// 插入与计数递增在同一事务内提交；Pin 计数到达阈值时同事务内翻转为 hidden。
// 返回值表示计数是否真的 +1。
func RecordReport(db *gorm.DB, entityType string, entityID uint, origin string) (bool, error) {
	incremented := false
	err := db.Transaction(func(tx *gorm.DB) error {
		report := models.Report{
			UserIP:     origin,
			EntityType: entityType,
			EntityID:   entityID,
		}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&report)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// 已举报过，不再计数
			return nil
		}

		switch entityType {
		case EntityPin:
			if err := tx.Model(&models.Pin{}).Where("id = ?", entityID).
				UpdateColumn("reports", gorm.Expr("reports + ?", 1)).Error; err != nil {
				return err
			}
			// 到达阈值后从 active 翻转为 hidden；purged 是终态，不回退
			if err := tx.Model(&models.Pin{}).
				Where("id = ? AND status = ? AND reports >= ?", entityID, models.PinStatusActive, PinReportThreshold).
				UpdateColumn("status", models.PinStatusHidden).Error; err != nil {
				return err
			}
		case EntityComment:
			if err := tx.Model(&models.Comment{}).Where("id = ?", entityID).
				UpdateColumn("reports", gorm.Expr("reports + ?", 1)).Error; err != nil {
				return err
			}
		}
		incremented = true
		return nil
	})
	return incremented, err
}

// HasReported 查询某来源是否已举报过目标，供前端禁用举报入口
func HasReported(db *gorm.DB, entityType string, entityID uint, origin string) (bool, error) {
	var count int64
	err := db.Model(&models.Report{}).
		Where("user_ip = ? AND entity_type = ? AND entity_id = ?", origin, entityType, entityID).
		Count(&count).Error
	return count > 0, err
}
