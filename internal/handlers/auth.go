package handlers

import (
	"errors"
	"net/http"
	"strings"

	"pinboard/internal/models"
	"pinboard/internal/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db   *gorm.DB
	auth *policy.RoleCheck
}

func NewAuthHandler(db *gorm.DB, auth *policy.RoleCheck) *AuthHandler {
	return &AuthHandler{db: db, auth: auth}
}

type authRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Handle 注册/登录复用同一端点，body 里的 action 区分
func (h *AuthHandler) Handle(c *gin.Context) {
	var req authRequest
	_ = c.ShouldBindJSON(&req)

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		JSONError(c, http.StatusBadRequest, "Username and password required")
		return
	}

	switch req.Action {
	case "register":
		h.register(c, username, password)
	case "login":
		h.login(c, username, password)
	default:
		JSONError(c, http.StatusBadRequest, "Invalid action")
	}
}

func (h *AuthHandler) register(c *gin.Context, username, password string) {
	var existing models.User
	err := h.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		JSONError(c, http.StatusBadRequest, "Username already taken")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	user := models.User{
		Username: username,
		Password: password,
		// 特权账号注册即认证，普通账号默认未认证
		IsVerified: username == h.auth.AdminUsername(),
	}

	if err := h.db.Create(&user).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) login(c *gin.Context, username, password string) {
	var user models.User
	err := h.db.Where("username = ? AND password = ?", username, password).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		JSONError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		JSONError(c, http.StatusInternalServerError, dbErrorMessage)
		return
	}

	// 封禁检查放在凭证匹配之后，避免向错误密码泄露封禁状态
	if user.IsBanned {
		JSONError(c, http.StatusForbidden, "Account is banned")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
