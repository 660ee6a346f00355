package middleware

import (
	"net/http"
	"time"

	"compliance-app/database"
	"compliance-app/internal/domain/access"
	"compliance-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireReportQuota blocks report generation when the signed-in user has no
// remaining monthly allowance. Free tier (quota 0) is always refused with a
// pointer at the pricing page; past-due and expired subscriptions likewise.
func RequireReportQuota() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user users.User
		if err := database.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		state := access.ComputeAccessState(time.Now(), user)
		quota := access.QuotaFor(user)

		if !access.CanGenerateReport(state, quota) {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Report quota exhausted for the current billing period",
				"quota": quota,
				"state": state,
			})
			return
		}

		c.Next()
	}
}
