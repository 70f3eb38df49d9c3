package main

import (
	"log"

	"askroom/internal/config"
	"askroom/internal/db"
	"askroom/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	conn := db.Init(cfg)

	// Initialize Gin
	r := gin.Default()
	router.RegisterRoutes(r, conn, cfg)

	log.Printf("Askroom server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
