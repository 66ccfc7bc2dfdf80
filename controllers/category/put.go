package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
	"github.com/Manabreaker/MarketplaceAPI/pkg/validation"
)

type updateCategoryInput struct {
	Name    string  `json:"name" binding:"required"`
	ItemIDs *[]uint `json:"item_ids"`
}

// UpdateCategory renames a category and, when item_ids is present, fully
// replaces its membership. The change is all-or-nothing: every supplied item
// id must resolve, and rename plus replacement commit in one transaction.
// Renaming a category to its own current name is not a conflict.
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid category ID"})
			return
		}

		var input updateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid request body",
				"fields": validation.Fields(err),
			})
			return
		}

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			}
			return
		}

		// The new name may only collide with the category itself.
		var existing models.Category
		err = db.Where("name = ?", input.Name).First(&existing).Error
		switch {
		case err == nil && existing.ID != category.ID:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
			return
		}

		var items []models.Item
		if input.ItemIDs != nil {
			ids := *input.ItemIDs
			if len(ids) > 0 {
				if err := db.Where("id IN ?", ids).Find(&items).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
					return
				}
			}
			if len(items) != len(ids) {
				c.JSON(http.StatusNotFound, gin.H{"error": "One or more items not found"})
				return
			}
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}

		category.Name = input.Name
		if err := tx.Save(&category).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		if input.ItemIDs != nil {
			if len(items) == 0 {
				err = tx.Model(&category).Association("Items").Clear()
			} else {
				err = tx.Model(&category).Association("Items").Replace(items)
			}
			if err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace category items"})
				return
			}
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		// Reload the nested items with their category names for the response.
		if err := db.Preload("Items.Categories").First(&category, category.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve category"})
			return
		}

		c.JSON(http.StatusOK, models.NewCategoryPayload(category))
	}
}
