package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	categorycontroller "github.com/Manabreaker/MarketplaceAPI/controllers/category"
	itemcontroller "github.com/Manabreaker/MarketplaceAPI/controllers/item"
)

// SetupRoutes is the single entry-point that wires up every endpoint of the
// catalog API.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	items := r.Group("/items")
	{
		items.POST("", itemcontroller.CreateItem(db))
		items.GET("", itemcontroller.FilterItems(db))
		items.PUT("/:item_id", itemcontroller.UpdateItem(db))
		items.DELETE("/:item_id", itemcontroller.DeleteItem(db))
	}

	categories := r.Group("/categories")
	{
		categories.POST("", categorycontroller.CreateCategory(db))
		categories.GET("", categorycontroller.GetCategories(db))
		categories.PUT("/:category_id", categorycontroller.UpdateCategory(db))
		categories.POST("/:category_id/items/:item_id", categorycontroller.AddItemToCategory(db))
	}

	r.GET("/health", healthCheck(db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
