package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mysterious135/delivery-app/internal/db"
	"github.com/Mysterious135/delivery-app/internal/models"
)

// GET /api/health-check
//
// The vendor count doubles as a liveness probe for the database connection.
func HealthCheck(c *gin.Context) {
	var count int64

	if err := db.DB.Model(&models.Vendor{}).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "vendor_count": count})
}
