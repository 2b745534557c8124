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

type CommentHandler struct {
	db   *gorm.DB
	auth policy.Authorizer
}

func NewCommentHandler(db *gorm.DB, auth policy.Authorizer) *CommentHandler {
	return &CommentHandler{db: db, auth: auth}
}

func (h *CommentHandler) List(c *gin.Context) {
	pinIDStr := c.Query("pin_id")
	if pinIDStr == "" {
		JSONError(c, http.StatusBadRequest, "pin_id required")
		return
	}
	pinID := utils.StringToUint(pinIDStr)

	var comments []models.Comment
	err := h.db.Scopes(policy.VisibleComments()).
		Where("pin_id = ?", pinID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	fillCommentAuthors(h.db, comments)

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

type createCommentRequest struct {
	PinID    uint   `json:"pin_id"`
	AuthorID uint   `json:"author_id"`
	Content  string `json:"content"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	_ = c.ShouldBindJSON(&req)

	content := strings.TrimSpace(req.Content)

	if req.PinID == 0 || req.AuthorID == 0 || content == "" {
		JSONError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	// author_id 未做归属校验（与线上行为一致），判定收口在 Authorizer
	if !h.auth.CanActAs(req.AuthorID, req.AuthorID) {
		JSONError(c, http.StatusForbidden, "Not authorized")
		return
	}

	comment := models.Comment{
		PinID:    req.PinID,
		AuthorID: req.AuthorID,
		Content:  content,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	// 响应里带上作者用户名和认证标记
	var author models.User
	if err := h.db.First(&author, req.AuthorID).Error; err == nil {
		comment.Author = author.Username
		comment.AuthorVerified = author.IsVerified
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
