package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
)

// AddItemToCategory attaches an item to a category. Re-attaching an already
// associated pair is a no-op that still answers 200 with the current state.
func AddItemToCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid category ID"})
			return
		}
		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid item ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		var item models.Item
		if err := db.Preload("Categories").First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
			}
			return
		}

		attached := false
		for _, existing := range item.Categories {
			if existing.ID == category.ID {
				attached = true
				break
			}
		}

		if !attached {
			tx := db.Begin()
			if tx.Error != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
				return
			}
			if err := tx.Model(&category).Association("Items").Append(&item); err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to category"})
				return
			}
			if err := tx.Commit().Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
				return
			}
			item.Categories = append(item.Categories, category)
		}

		c.JSON(http.StatusOK, models.NewItemPayload(item))
	}
}
