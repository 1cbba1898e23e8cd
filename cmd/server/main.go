package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"shift-planner-backend/internal/api/routes"
	"shift-planner-backend/internal/config"
	"shift-planner-backend/internal/database"
	"shift-planner-backend/internal/logger"

	_ "shift-planner-backend/docs"
)

// @title Shift Planner API
// @version 1.0
// @description Backend for hospital ward shift scheduling: roster and availability
// @description management, shift templates, staffing targets and solver-driven monthly
// @description schedule generation.

// @host localhost:7010
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token, e.g. "Bearer {token}"
func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	log := logger.New()
	log.Infof("Starting shift planner backend: environment=%s", cfg.Environment)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Info("Database initialized")

	router := routes.SetupRoutes(db, cfg)

	log.Infof("Listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
