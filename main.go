package main

import (
	"log"
	"net/http"
	"os"

	"pacificreef/config"
	"pacificreef/jobs"
	"pacificreef/models"
	"pacificreef/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.User{}, &models.Room{}, &models.Reservation{}); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, falling back to process env: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	config.InitWebSocket(router, m)

	roomService := routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	jobs.SetSnapshotter(roomService)
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
