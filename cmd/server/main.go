package main

import (
	"log"
	"net/http"
	"os"

	"pinboard/internal/db"
	"pinboard/internal/handlers"
	"pinboard/internal/middleware"
	"pinboard/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	database := db.Init()

	// 特权用户名来自配置，不在 handler 里写死
	roleCheck := policy.NewRoleCheck(database, os.Getenv("ADMIN_USERNAME"))

	// Initialize Gin
	r := gin.Default()

	// 跨域与预检请求
	r.Use(middleware.CORS())

	// 错误路径也走统一信封
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Handlers
	authHandler := handlers.NewAuthHandler(database, roleCheck)
	pinHandler := handlers.NewPinHandler(database, roleCheck)
	commentHandler := handlers.NewCommentHandler(database, roleCheck)
	actionHandler := handlers.NewActionHandler(database, roleCheck)
	adminHandler := handlers.NewAdminHandler(database, roleCheck)

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

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Pinboard server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
