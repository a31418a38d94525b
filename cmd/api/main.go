package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/api/middleware"
	"github.com/tracknest/tracker-go/internal/api/routes"
	"github.com/tracknest/tracker-go/internal/config"
	"github.com/tracknest/tracker-go/internal/config/db"
)

// @title tracker-go API
// @version 1.0
// @description Issue tracking service: projects, tickets, identity sync.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate
	db.Init()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, db.DB)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
