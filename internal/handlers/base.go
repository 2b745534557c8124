package handlers

import (
	"pinboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbErrorMessage = "Database error"

// JSONError 错误响应统一信封 {"error": message}
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// fillPinAuthors 批量填充 Pin 的作者信息（用户名、认证标记）
func fillPinAuthors(db *gorm.DB, pins []models.Pin) {
	if len(pins) == 0 {
		return
	}

	authorIDs := make([]uint, 0, len(pins))
	for _, p := range pins {
		authorIDs = append(authorIDs, p.AuthorID)
	}

	var users []models.User
	db.Where("id IN ?", authorIDs).Find(&users)

	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range pins {
		if u, ok := userMap[pins[i].AuthorID]; ok {
			pins[i].Author = u.Username
			pins[i].AuthorVerified = u.IsVerified
		}
	}
}

// fillCommentAuthors 批量填充评论的作者信息
func fillCommentAuthors(db *gorm.DB, comments []models.Comment) {
	if len(comments) == 0 {
		return
	}

	authorIDs := make([]uint, 0, len(comments))
	for _, cm := range comments {
		authorIDs = append(authorIDs, cm.AuthorID)
	}

	var users []models.User
	db.Where("id IN ?", authorIDs).Find(&users)

	userMap := make(map[uint]models.User, len(users))
	for _, u := range users {
		userMap[u.ID] = u
	}

	for i := range comments {
		if u, ok := userMap[comments[i].AuthorID]; ok {
			comments[i].Author = u.Username
			comments[i].AuthorVerified = u.IsVerified
		}
	}
}
