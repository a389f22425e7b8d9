package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/handlers"
	"github.com/Mysterious135/delivery-app/internal/models"
)

func setupCatalogTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := gorm.Open(sqlite.Open("file:catalogtest?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	err = testDB.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Item{}, &models.Order{}, &models.OrderItem{})
	if err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	// The catalog fixtures are the production seed set.
	if err := db.Seed(testDB); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	originalDB := db.DB
	db.SetTestDB(testDB)
	t.Cleanup(func() {
		db.SetTestDB(originalDB)
	})

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestID())

	r.GET("/api/vendors", handlers.ListVendors)
	r.GET("/api/vendors/:vendorId/items", handlers.ListVendorItems)
	r.GET("/api/health-check", handlers.HealthCheck)

	return r, testDB
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func performCatalogGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCatalogHandlers(t *testing.T) {

	router, testDB := setupCatalogTestRouter(t)

	var pizzaPalace models.Vendor
	assert.NoError(t, testDB.Where("name = ?", "Pizza Palace").First(&pizzaPalace).Error)

	t.Run("Fetches all vendors in id order", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/vendors")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var vendors []models.Vendor
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &vendors))
		assert.Len(t, vendors, 2)
		assert.Equal(t, "Pizza Palace", vendors[0].Name)
		assert.Equal(t, "Burger Barn", vendors[1].Name)
		assert.NotEmpty(t, vendors[0].Address)
		assert.NotEmpty(t, vendors[0].ImageURL)
	})

	t.Run("Fetches a vendor's items with price and live stock", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/vendors/"+itoa(pizzaPalace.ID)+"/items")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var items []models.Item
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
		assert.Len(t, items, 2)
		assert.Equal(t, "Margherita Pizza", items[0].Name)
		assert.True(t, items[0].Price.Equal(decimal.RequireFromString("8.99")))
		assert.Equal(t, 50, items[0].StockQuantity)
		assert.Equal(t, pizzaPalace.ID, items[0].VendorID)
	})

	t.Run("Returns an empty list for an unknown vendor", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/vendors/99999/items")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("Returns 400 for a non-numeric vendor id", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/vendors/pizza/items")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Health check reports status and vendor count", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/health-check")

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "ok", response["status"])
		assert.Equal(t, float64(2), response["vendor_count"])
	})

	t.Run("Tags every response with a request id", func(t *testing.T) {
		recorder := performCatalogGet(router, "/api/vendors")

		id := recorder.Header().Get(handlers.RequestIDHeader)
		assert.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}
