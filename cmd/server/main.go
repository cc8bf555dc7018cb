package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"leatherworking_backend/internal/config"
	"leatherworking_backend/internal/database"
	"leatherworking_backend/internal/routes"
)

func main() {
	config.Load()

	database.Connect()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.Register(r)

	port := config.Port()
	log.Println("🚀 Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
