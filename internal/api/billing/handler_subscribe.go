package billing

import (
	"fmt"
	"net/http"
	"time"

	"compliance-app/config"
	"compliance-app/database"
	"compliance-app/internal/domain/entitlement"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/subscription"
)

// POST /billing/subscribe — subscription tiers only. Creates the Stripe
// subscription against the saved payment method and persists the entitlement
// only after Stripe reports success.
func CreateSubscription(c *gin.Context) {
	var body struct {
		TierID string `json:"tier_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.TierID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid tier_id"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	tier, ok := tiers.ByID(body.TierID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tier"})
		return
	}
	if tier.Type != tiers.TypeSubscription {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tier is not a subscription"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	customerID, err := ensureStripeCustomer(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sub, err := subscription.New(&stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(tier.StripePriceID)},
		},
		Metadata: map[string]string{
			"user_id": fmt.Sprint(user.ID),
			"tier_id": tier.ID,
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	// Replacing an existing subscription: cancel the old one at Stripe so
	// the user is not double-billed.
	if user.StripeSubscriptionID != nil && *user.StripeSubscriptionID != "" && *user.StripeSubscriptionID != sub.ID {
		_, _ = subscription.Cancel(*user.StripeSubscriptionID, nil)
	}

	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	err = entitlement.Apply(database.DB, user.ID, tier.ID, entitlement.PaymentResult{
		Status:               string(sub.Status),
		StripeCustomerID:     customerID,
		StripeSubscriptionID: sub.ID,
		PeriodStart:          &periodStart,
		PeriodEnd:            &periodEnd,
	})
	if err != nil {
		// The subscription exists at Stripe but the profile write failed;
		// surface the failure instead of pretending the upgrade happened.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Subscription created but could not be recorded", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription_id":      sub.ID,
		"customer_id":          customerID,
		"status":               string(sub.Status),
		"current_period_start": periodStart,
		"current_period_end":   periodEnd,
	})
}

// POST /billing/downgrade — back to the free tier. Cancels any live Stripe
// subscription first, then applies the free entitlement directly (no payment
// flow involved).
func DowngradeToFree(c *gin.Context) {
	stripe.Key = config.STRIPE_SECRET_KEY

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if user.StripeSubscriptionID != nil && *user.StripeSubscriptionID != "" {
		if _, err := subscription.Cancel(*user.StripeSubscriptionID, nil); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
			return
		}
	}

	if err := entitlement.Apply(database.DB, user.ID, "free", entitlement.PaymentResult{
		Status: "canceled",
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record downgrade"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "downgraded", "tier_id": "free"})
}
