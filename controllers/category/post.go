package categorycontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
	"github.com/Manabreaker/MarketplaceAPI/pkg/validation"
)

type createCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory inserts a category if its name is still free. The name
// check runs before the insert so a duplicate is a clean 400 rather than a
// surfaced constraint violation.
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input createCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Invalid request body",
				"fields": validation.Fields(err),
			})
			return
		}

		var existing models.Category
		err := db.Where("name = ?", input.Name).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category name"})
			return
		}

		category := models.Category{Name: input.Name}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusOK, models.NewCategoryPayload(category))
	}
}
