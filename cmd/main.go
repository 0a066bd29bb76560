package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"job-board/infrastructure"
	"job-board/interfaces"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	// Connect DB
	db := infrastructure.NewMySQLConnection()

	// Connect Redis
	rdb := infrastructure.NewRedisConnection()

	users := infrastructure.NewUserRepository(db)
	jobs := infrastructure.NewJobRepository(db)
	cache := infrastructure.NewListingCache(rdb)

	// Setup Gin router
	router := gin.Default()
	interfaces.NewHTTPHandler(router, users, jobs, cache)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("🚀 Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
