package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/models"
)

// GET /api/vendors
func ListVendors(c *gin.Context) {
	vendors := make([]models.Vendor, 0)

	if err := db.DB.Order("id").Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// GET /api/vendors/:vendorId/items
//
// An unknown vendor yields an empty list, not an error.
func ListVendorItems(c *gin.Context) {
	vendorID, err := strconv.ParseUint(c.Param("vendorId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor id"})
		return
	}

	items := make([]models.Item, 0)

	if err := db.DB.Where("vendor_id = ?", vendorID).Order("id").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, items)
}
