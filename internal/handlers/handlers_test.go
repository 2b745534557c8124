package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pinboard/internal/middleware"
	"pinboard/internal/models"
	"pinboard/internal/policy"
	"pinboard/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.User{}, &models.Pin{}, &models.Comment{}, &models.Favorite{}, &models.Report{})

	// 列表缓存是进程级单例，避免用例间串数据
	utils.GetCache().Flush()

	return db
}

// setupTestRouter 按 cmd/server 的路由表组装测试路由
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	roleCheck := policy.NewRoleCheck(db, "")

	authHandler := NewAuthHandler(db, roleCheck)
	pinHandler := NewPinHandler(db, roleCheck)
	commentHandler := NewCommentHandler(db, roleCheck)
	actionHandler := NewActionHandler(db, roleCheck)
	adminHandler := NewAdminHandler(db, roleCheck)

	api := r.Group("/api")
	{
		api.POST("/auth", authHandler.Handle)
		api.GET("/pins", pinHandler.Get)
		api.POST("/pins", pinHandler.Create)
		api.DELETE("/pins", pinHandler.Delete)
		api.GET("/comments", commentHandler.List)
		api.POST("/comments", commentHandler.Create)
		api.GET("/actions", actionHandler.Check)
		api.POST("/actions", actionHandler.Handle)
		api.GET("/admin", adminHandler.ListUsers)
		api.POST("/admin", adminHandler.Handle)
	}

	return r
}

func createTestUser(db *gorm.DB, username, password string) *models.User {
	user := &models.User{
		Username: username,
		Password: password,
	}
	db.Create(user)
	return user
}

func createTestPin(db *gorm.DB, authorID uint, title string, private bool) *models.Pin {
	pin := &models.Pin{
		Title:     title,
		Content:   "content of " + title,
		AuthorID:  authorID,
		IsPrivate: private,
		Status:    models.PinStatusActive,
	}
	db.Create(pin)
	return pin
}

func performRequest(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return result
}
