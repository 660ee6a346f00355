package tiers

import (
	"net/http"

	"compliance-app/config"
	"compliance-app/internal/domain/tiers"

	"github.com/gin-gonic/gin"
)

// GET /tiers — the pricing catalog in display order
func ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, tiers.All())
}

// GET /billing/config — everything the pricing page needs to bootstrap:
// publishable key (never the secret), catalog, supported cities.
func BillingConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publishable_key":  config.STRIPE_PUBLISHABLE_KEY,
		"tiers":            tiers.All(),
		"supported_cities": tiers.SupportedCities,
	})
}
