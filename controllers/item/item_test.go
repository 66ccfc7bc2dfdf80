package itemcontroller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Manabreaker/MarketplaceAPI/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}, &models.Category{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/items", CreateItem(db))
	r.GET("/items", FilterItems(db))
	r.PUT("/items/:item_id", UpdateItem(db))
	r.DELETE("/items/:item_id", DeleteItem(db))
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64) models.Item {
	item := models.Item{Name: name, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func attach(t *testing.T, db *gorm.DB, category models.Category, item models.Item) {
	require.NoError(t, db.Model(&category).Association("Items").Append(&item))
}

func TestCreateItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "POST", "/items", `{"name":"Pen","price":1.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Positive(t, resp.ID)
	assert.Equal(t, "Pen", resp.Name)
	assert.Nil(t, resp.Description)
	assert.Equal(t, 1.5, resp.Price)
	assert.Empty(t, resp.Categories)
}

func TestCreateItemWithDescription(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "POST", "/items", `{"name":"Pen","description":"blue ink","price":1.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Description)
	assert.Equal(t, "blue ink", *resp.Description)
}

func TestCreateItemValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing price", `{"name":"Pen"}`, "price"},
		{"missing name", `{"price":1.5}`, "name"},
		{"empty body", `{}`, "name"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := performRequest(r, "POST", "/items", tc.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var resp struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Contains(t, resp.Fields, tc.field)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Count(&count).Error)
	assert.Zero(t, count, "validation failures must not create rows")
}

func TestCreateItemZeroAndNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	// Price has no range constraint: zero and negative values are stored as-is.
	rec := performRequest(r, "POST", "/items", `{"name":"Freebie","price":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(r, "POST", "/items", `{"name":"Refund","price":-3.25}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, -3.25, resp.Price)
}

func TestUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	item := seedItem(t, db, "Pen", 1.5)
	category := seedCategory(t, db, "Office")
	attach(t, db, category, item)

	rec := performRequest(r, "PUT", fmt.Sprintf("/items/%d", item.ID), `{"name":"Marker","price":2.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, item.ID, resp.ID)
	assert.Equal(t, "Marker", resp.Name)
	assert.Equal(t, 2.5, resp.Price)
	assert.Equal(t, []string{"Office"}, resp.Categories, "update must not touch category membership")
}

func TestUpdateItemClearsDescription(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	description := "blue ink"
	item := models.Item{Name: "Pen", Description: &description, Price: 1.5}
	require.NoError(t, db.Create(&item).Error)

	// Full replace: an omitted description becomes null.
	rec := performRequest(r, "PUT", fmt.Sprintf("/items/%d", item.ID), `{"name":"Pen","price":1.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stored models.Item
	require.NoError(t, db.First(&stored, item.ID).Error)
	assert.Nil(t, stored.Description)
}

func TestUpdateItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "PUT", "/items/42", `{"name":"Ghost","price":9.99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Count(&count).Error)
	assert.Zero(t, count, "updating a missing item must not create a row")
}

func TestUpdateItemInvalidID(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "PUT", "/items/abc", `{"name":"Pen","price":1.5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	item := seedItem(t, db, "Pen", 1.5)
	category := seedCategory(t, db, "Office")
	attach(t, db, category, item)

	rec := performRequest(r, "DELETE", fmt.Sprintf("/items/%d", item.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Item deleted", resp["message"])

	var count int64
	require.NoError(t, db.Model(&models.Item{}).Count(&count).Error)
	assert.Zero(t, count)

	var joinRows int64
	require.NoError(t, db.Table("item_categories").Count(&joinRows).Error)
	assert.Zero(t, joinRows, "association rows must go with the item")
}

func TestDeleteItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "DELETE", "/items/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFilterItemsByPriceRange(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	seedItem(t, db, "Cheap", 5)
	seedItem(t, db, "Mid", 15)
	seedItem(t, db, "Exact", 20)
	seedItem(t, db, "Expensive", 25)

	rec := performRequest(r, "GET", "/items?min_price=10&max_price=20", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	names := []string{resp[0].Name, resp[1].Name}
	assert.ElementsMatch(t, []string{"Mid", "Exact"}, names)
}

func TestFilterItemsByCategory(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	pen := seedItem(t, db, "Pen", 1.5)
	novel := seedItem(t, db, "Novel", 12)
	books := seedCategory(t, db, "Books")
	office := seedCategory(t, db, "Office")
	attach(t, db, books, novel)
	attach(t, db, office, pen)

	rec := performRequest(r, "GET", "/items?categories=Books", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Novel", resp[0].Name)
	assert.Equal(t, []string{"Books"}, resp[0].Categories)
}

func TestFilterItemsDeduplicatesAcrossCategories(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	pen := seedItem(t, db, "Pen", 1.5)
	books := seedCategory(t, db, "Books")
	office := seedCategory(t, db, "Office")
	attach(t, db, books, pen)
	attach(t, db, office, pen)

	rec := performRequest(r, "GET", "/items?categories=Books&categories=Office", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1, "an item in several matching categories appears once")
	assert.ElementsMatch(t, []string{"Books", "Office"}, resp[0].Categories)
}

func TestFilterItemsNoMatch(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	seedItem(t, db, "Pen", 1.5)

	// An empty result set is a 404, not an empty 200 list.
	rec := performRequest(r, "GET", "/items?min_price=100", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFilterItemsDefaultMinPriceExcludesNegative(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	seedItem(t, db, "Refund", -3)
	seedItem(t, db, "Pen", 1.5)

	rec := performRequest(r, "GET", "/items", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []models.ItemPayload
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1, "min_price defaults to 0")
	assert.Equal(t, "Pen", resp[0].Name)

	rec = performRequest(r, "GET", "/items?min_price=-10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	resp = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2, "an explicit negative bound surfaces negative prices")
}

func TestFilterItemsInvalidPriceParams(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	rec := performRequest(r, "GET", "/items?min_price=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = performRequest(r, "GET", "/items?max_price=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
