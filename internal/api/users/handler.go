package users

import (
	"net/http"
	"time"

	"compliance-app/config"
	"compliance-app/database"
	"compliance-app/internal/domain/access"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"
	stripeinfra "compliance-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	tier, ok := tiers.ByID(user.TierID)
	if !ok {
		// stored tier id no longer in catalog: show free rather than 500
		tier, _ = tiers.ByID("free")
	}

	now := time.Now()
	policy := access.ComputePolicy(now, user)

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Lastname:   user.Lastname,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: BillingDTO{
			Tier:               tier,
			SubscriptionStatus: stripeinfra.NormalizeStripeStatus(user.SubscriptionStatus),
			PeriodStart:        user.CurrentPeriodStart,
			PeriodEnd:          user.CurrentPeriodEnd,
		},
		Access: policy,
	}

	c.JSON(http.StatusOK, resp)
}

func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	var t users.VerificationToken
	if err := database.DB.Where("token = ? AND type = ?", token, "verify").First(&t).Error; err != nil || t.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := database.DB.Model(&users.User{}).Where("id = ?", t.UserID).Update("is_verified", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify user"})
		return
	}

	database.DB.Delete(&t)

	c.Redirect(http.StatusTemporaryRedirect, config.APP_URL+"/signin")
}
