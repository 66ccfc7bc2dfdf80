package itemcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
)

// FilterItems returns items that belong to any of the given categories (when
// supplied) and whose price lies in [min_price, max_price]. min_price
// defaults to 0, so negative-priced items only surface when the client sends
// an explicit negative bound. An empty result is a 404, not an empty list.
func FilterItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		minPrice := 0.0
		if s := c.Query("min_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid min_price"})
				return
			}
			minPrice = v
		}

		var maxPrice *float64
		if s := c.Query("max_price"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid max_price"})
				return
			}
			maxPrice = &v
		}

		query := db.Model(&models.Item{}).Preload("Categories")

		if names := c.QueryArray("categories"); len(names) > 0 {
			// An item in several matching categories must appear once.
			query = query.
				Joins("JOIN item_categories ic ON ic.item_id = items.id").
				Joins("JOIN categories ON categories.id = ic.category_id").
				Where("categories.name IN ?", names).
				Distinct("items.*")
		}

		query = query.Where("items.price >= ?", minPrice)
		if maxPrice != nil {
			query = query.Where("items.price <= ?", *maxPrice)
		}

		var items []models.Item
		if err := query.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "No items found"})
			return
		}

		payloads := make([]models.ItemPayload, len(items))
		for i, item := range items {
			payloads[i] = models.NewItemPayload(item)
		}
		c.JSON(http.StatusOK, payloads)
	}
}
