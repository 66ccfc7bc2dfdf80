package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/config"
	"github.com/Manabreaker/MarketplaceAPI/middleware"
	"github.com/Manabreaker/MarketplaceAPI/models"
	"github.com/Manabreaker/MarketplaceAPI/pkg/logger"
	"github.com/Manabreaker/MarketplaceAPI/routes"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LogLevel)
	defer log.Sync()

	log.Info("Starting catalog API")

	db := initDatabase(cfg, log)

	// Ensure the schema exists; a no-op when it already does.
	if err := db.AutoMigrate(&models.Item{}, &models.Category{}); err != nil {
		log.Fatal("AutoMigrate failed", zap.Error(err))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	routes.SetupRoutes(r, db)

	log.Info("Server listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

// initDatabase sets up the GORM connection to PostgreSQL.
func initDatabase(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	return db
}
