package handlers

import (
	"net/http"

	"pinboard/internal/models"
	"pinboard/internal/policy"
	"pinboard/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActionHandler 举报与收藏的动作端点，POST body 里的 action 区分子操作
type ActionHandler struct {
	db   *gorm.DB
	auth policy.Authorizer
}

func NewActionHandler(db *gorm.DB, auth policy.Authorizer) *ActionHandler {
	return &ActionHandler{db: db, auth: auth}
}

type actionRequest struct {
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   uint   `json:"entity_id"`
	UserID     uint   `json:"user_id"`
	PinID      uint   `json:"pin_id"`
	IsFavorite *bool  `json:"is_favorite"`
}

func (h *ActionHandler) Handle(c *gin.Context) {
	var req actionRequest
	_ = c.ShouldBindJSON(&req)

	switch req.Action {
	case "report":
		h.report(c, req)
	case "favorite":
		h.favorite(c, req)
	case "get_favorites":
		h.listFavorites(c, req)
	case "is_favorite":
		h.isFavorite(c, req)
	default:
		JSONError(c, http.StatusBadRequest, "Invalid action")
	}
}

func (h *ActionHandler) report(c *gin.Context, req actionRequest) {
	if !policy.ValidEntityType(req.EntityType) || req.EntityID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing entity_type or entity_id")
		return
	}

	origin := utils.ReporterOrigin(c.GetHeader("X-Forwarded-For"))

	incremented, err := policy.RecordReport(h.db, req.EntityType, req.EntityID, origin)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	// 计数变动可能让 Pin 翻转为 hidden，列表缓存失效
	if incremented && req.EntityType == policy.EntityPin {
		utils.GetCache().Flush()
	}

	// 重复举报不是错误，同样按成功返回
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ActionHandler) favorite(c *gin.Context, req actionRequest) {
	if req.UserID == 0 || req.PinID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing user_id or pin_id")
		return
	}

	if !h.auth.CanActAs(req.UserID, req.UserID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	// 缺省视作收藏
	adding := req.IsFavorite == nil || *req.IsFavorite

	if adding {
		favorite := models.Favorite{
			UserID: req.UserID,
			PinID:  req.PinID,
		}
		// 唯一索引冲突时静默跳过，重复收藏是幂等的
		if err := h.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&favorite).Error; err != nil {
			JSONError(c, http.StatusInternalServerError, dbErrorMessage)
			return
		}
	} else {
		// 取消不存在的收藏同样按成功返回
		if err := h.db.Where("user_id = ? AND pin_id = ?", req.UserID, req.PinID).
			Delete(&models.Favorite{}).Error; err != nil {
			JSONError(c, http.StatusInternalServerError, dbErrorMessage)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ActionHandler) listFavorites(c *gin.Context, req actionRequest) {
	if req.UserID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing user_id")
		return
	}

	var pins []models.Pin
	err := h.db.Model(&models.Pin{}).
		Joins("JOIN favorites ON favorites.pin_id = pins.id").
		Where("favorites.user_id = ?", req.UserID).
		Scopes(policy.ActivePins()).
		Order("favorites.created_at DESC").
		Find(&pins).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	fillPinAuthors(h.db, pins)

	c.JSON(http.StatusOK, gin.H{"pins": pins})
}

func (h *ActionHandler) isFavorite(c *gin.Context, req actionRequest) {
	if req.UserID == 0 || req.PinID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing user_id or pin_id")
		return
	}

	var count int64
	err := h.db.Model(&models.Favorite{}).
		Where("user_id = ? AND pin_id = ?", req.UserID, req.PinID).
		Count(&count).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": count > 0})
}

// Check 查询类动作（GET），目前只有 check_report
func (h *ActionHandler) Check(c *gin.Context) {
	if c.Query("action") != "check_report" {
		JSONError(c, http.StatusBadRequest, "Invalid action")
		return
	}

	entityType := c.Query("entity_type")
	entityID := utils.StringToUint(c.Query("entity_id"))
	if !policy.ValidEntityType(entityType) || entityID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing entity_type or entity_id")
		return
	}

	origin := utils.ReporterOrigin(c.GetHeader("X-Forwarded-For"))

	reported, err := policy.HasReported(h.db, entityType, entityID, origin)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reported": reported})
}
