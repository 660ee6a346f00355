package reports

import (
	"net/http"
	"strconv"
	"time"

	"compliance-app/database"
	"compliance-app/internal/domain/reports"
	"compliance-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /reports
func ListReports(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var list []reports.Report
	if err := database.DB.
		Preload("Property").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /properties/:id/reports — quota is checked by middleware before this
// runs; here we burn one unit and create the report row in one transaction.
func GenerateReport(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || propertyID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property id"})
		return
	}

	var report reports.Report
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table("properties").
			Where("id = ? AND user_id = ?", propertyID, userID).
			Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}

		report = reports.Report{
			UserID:     userID,
			PropertyID: uint(propertyID),
			Status:     reports.StatusReady,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&report).Error; err != nil {
			return err
		}

		return tx.Model(&users.User{}).
			Where("id = ?", userID).
			Update("reports_used", gorm.Expr("reports_used + 1")).Error
	})

	if txErr != nil {
		if txErr == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}
