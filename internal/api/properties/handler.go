package properties

import (
	"net/http"
	"strings"

	"compliance-app/database"
	"compliance-app/internal/domain/properties"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/todos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// GET /properties
func ListProperties(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []properties.Property
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load properties"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// POST /properties
func CreateProperty(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req struct {
		Address      string `json:"address"`
		City         string `json:"city"`
		PropertyType string `json:"property_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Address = strings.TrimSpace(req.Address)
	if req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address is required"})
		return
	}
	if !tiers.CitySupported(req.City) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "City not supported yet"})
		return
	}
	if req.PropertyType == "" {
		req.PropertyType = properties.TypeFlat
	}
	if !properties.ValidType(req.PropertyType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property type"})
		return
	}

	p := properties.Property{
		UserID:       userID,
		Address:      req.Address,
		City:         req.City,
		PropertyType: req.PropertyType,
	}
	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

// PUT /properties/:id
func UpdateProperty(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req struct {
		Address      *string `json:"address"`
		City         *string `json:"city"`
		PropertyType *string `json:"property_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Address != nil {
		a := strings.TrimSpace(*req.Address)
		if a == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Address cannot be empty"})
			return
		}
		updates["address"] = a
	}
	if req.City != nil {
		if !tiers.CitySupported(*req.City) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "City not supported yet"})
			return
		}
		updates["city"] = *req.City
	}
	if req.PropertyType != nil {
		if !properties.ValidType(*req.PropertyType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property type"})
			return
		}
		updates["property_type"] = *req.PropertyType
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	tx := database.DB.Model(&properties.Property{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}
	if tx.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /properties/:id — removes the property and its to-dos
func DeleteProperty(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var p properties.Property
		if err := tx.First(&p, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", p.ID).Delete(&todos.Todo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
