package itemcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
	"github.com/Manabreaker/MarketplaceAPI/pkg/validation"
)

// itemInput is the body of both item create and item update. Pointer fields
// distinguish "absent" from the zero value: a price of 0 is accepted while a
// missing price is a validation error. Negative prices are not rejected.
type itemInput struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

// CreateItem inserts a new item. A fresh item starts with no categories.
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input itemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid request body",
				"fields": validation.Fields(err),
			})
			return
		}

		item := models.Item{
			Name:        input.Name,
			Description: input.Description,
			Price:       *input.Price,
		}

		tx := db.Begin()
		if tx.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
			return
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}
		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit transaction"})
			return
		}

		c.JSON(http.StatusOK, models.NewItemPayload(item))
	}
}
