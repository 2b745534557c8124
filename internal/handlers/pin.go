package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"pinboard/internal/models"
	"pinboard/internal/policy"
	"pinboard/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	pinListLimit    = 100
	pinListCacheTTL = 1 * time.Minute
)

// 排序白名单，未识别的取值回落到 newest
var pinOrderClauses = map[string]string{
	"newest": "created_at DESC",
	"oldest": "created_at ASC",
	"views":  "views DESC",
}

type PinHandler struct {
	db   *gorm.DB
	auth policy.Authorizer
}

func NewPinHandler(db *gorm.DB, auth policy.Authorizer) *PinHandler {
	return &PinHandler{db: db, auth: auth}
}

// Get 带 id 参数返回单条详情，否则返回列表
func (h *PinHandler) Get(c *gin.Context) {
	if c.Query("id") != "" {
		h.detail(c)
		return
	}
	h.list(c)
}

func (h *PinHandler) detail(c *gin.Context) {
	pinID := utils.StringToUint(c.Query("id"))
	viewerID := utils.StringToUint(c.Query("user_id"))

	var pins []models.Pin
	err := h.db.Transaction(func(tx *gorm.DB) error {
		// 浏览计数先于可见性过滤：对当前访客不可见的内容同样计数
		if err := tx.Model(&models.Pin{}).Where("id = ?", pinID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return err
		}
		// Limit+Find 而非 First：查不到可见行不是事务错误，计数照常提交
		return tx.Scopes(policy.VisiblePins(viewerID)).
			Where("id = ?", pinID).Limit(1).Find(&pins).Error
	})
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}
	if len(pins) == 0 {
		JSONError(c, http.StatusNotFound, "Pin not found")
		return
	}

	fillPinAuthors(h.db, pins)
	pin := pins[0]
	pin.ContentHTML = utils.RenderMarkdown(pin.Content)

	c.JSON(http.StatusOK, gin.H{"pin": pin})
}

func (h *PinHandler) list(c *gin.Context) {
	viewerID := utils.StringToUint(c.Query("user_id"))
	sort := c.Query("sort")
	search := c.Query("search")

	order, ok := pinOrderClauses[sort]
	if !ok {
		order = pinOrderClauses["newest"]
	}

	cacheKey := fmt.Sprintf("pins:list:%d:%s:%s", viewerID, order, search)
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if pins, ok := cached.([]models.Pin); ok {
			c.JSON(http.StatusOK, gin.H{"pins": pins})
			return
		}
	}

	var pins []models.Pin
	// LOWER + LIKE 做大小写不敏感子串匹配，空搜索词匹配全部
	err := h.db.Scopes(policy.VisiblePins(viewerID)).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%").
		Order(order).
		Limit(pinListLimit).
		Find(&pins).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	fillPinAuthors(h.db, pins)

	utils.GetCache().Set(cacheKey, pins, pinListCacheTTL)

	c.JSON(http.StatusOK, gin.H{"pins": pins})
}

type createPinRequest struct {
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	AuthorID  uint              `json:"author_id"`
	IsPrivate bool              `json:"is_private"`
	Tags      models.StringList `json:"tags"`
}

func (h *PinHandler) Create(c *gin.Context) {
	var req createPinRequest
	_ = c.ShouldBindJSON(&req)

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if title == "" || content == "" || req.AuthorID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if !h.auth.CanActAs(req.AuthorID, req.AuthorID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	pin := models.Pin{
		Title:     title,
		Content:   content,
		AuthorID:  req.AuthorID,
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
		Status:    models.PinStatusActive,
	}

	if err := h.db.Create(&pin).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	utils.GetCache().Flush()

	c.JSON(http.StatusCreated, gin.H{"pin": pin})
}

type deletePinRequest struct {
	PinID  uint `json:"pin_id"`
	UserID uint `json:"user_id"`
}

// Delete 并非物理删除：特权用户将 Pin 置为 purged 终态，使其从所有读路径消失
func (h *PinHandler) Delete(c *gin.Context) {
	var req deletePinRequest
	_ = c.ShouldBindJSON(&req)

	if req.PinID == 0 || req.UserID == 0 {
		JSONError(c, http.StatusBadRequest, "Missing pin_id or user_id")
		return
	}

	if !h.auth.IsAdmin(req.UserID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	if err := h.db.Model(&models.Pin{}).Where("id = ?", req.PinID).
		UpdateColumn("status", models.PinStatusPurged).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	utils.GetCache().Flush()

	c.JSON(http.StatusOK, gin.H{"success": true})
}
