package categorycontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
)

// GetCategories returns every category with its items nested; each nested
// item carries its own full category-name list.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Items.Categories").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		payloads := make([]models.CategoryPayload, len(categories))
		for i, category := range categories {
			payloads[i] = models.NewCategoryPayload(category)
		}
		c.JSON(http.StatusOK, payloads)
	}
}
