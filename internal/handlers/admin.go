package handlers

import (
	"net/http"
	"strings"

	"pinboard/internal/models"
	"pinboard/internal/policy"
	"pinboard/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const adminUserListLimit = 100

type AdminHandler struct {
	db   *gorm.DB
	auth policy.Authorizer
}

func NewAdminHandler(db *gorm.DB, auth policy.Authorizer) *AdminHandler {
	return &AdminHandler{db: db, auth: auth}
}

// ListUsers 用户列表，仅特权用户可见，支持用户名大小写不敏感搜索
func (h *AdminHandler) ListUsers(c *gin.Context) {
	adminID := utils.StringToUint(c.Query("admin_id"))
	if adminID == 0 || !h.auth.IsAdmin(adminID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	search := c.Query("search")

	var users []models.User
	err := h.db.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(search)+"%").
		Order("created_at DESC").
		Limit(adminUserListLimit).
		Find(&users).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

type adminActionRequest struct {
	AdminID uint   `json:"admin_id"`
	Action  string `json:"action"`
	UserID  uint   `json:"user_id"`
}

// 管理动作到布尔翻转的映射
var adminActions = map[string]struct {
	column string
	value  bool
}{
	"ban":      {"is_banned", true},
	"unban":    {"is_banned", false},
	"verify":   {"is_verified", true},
	"unverify": {"is_verified", false},
}

func (h *AdminHandler) Handle(c *gin.Context) {
	var req adminActionRequest
	_ = c.ShouldBindJSON(&req)

	if req.AdminID == 0 || !h.auth.IsAdmin(req.AdminID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	action, ok := adminActions[req.Action]
	if !ok {
		JSONError(c, http.StatusBadRequest, "Invalid action")
		return
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", req.UserID).
		UpdateColumn(action.column, action.value).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
