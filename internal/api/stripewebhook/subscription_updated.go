package stripewebhooks

import (
	"fmt"
	"strconv"
	"time"

	"compliance-app/database"
	"compliance-app/internal/domain/entitlement"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

func handleSubscriptionUpdated(sub *stripe.Subscription) error {
	if sub.ID == "" || sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return fmt.Errorf("subscription missing id/items/price")
	}

	activePriceID := sub.Items.Data[0].Price.ID
	periodStart := time.Unix(sub.CurrentPeriodStart, 0)
	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	// Find user
	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			// acknowledge to avoid Stripe retries if user deleted
			return nil
		}
	} else {
		if err := database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&user).Error; err != nil {
			return nil
		}
	}

	tier, ok := tiers.ByStripePriceID(activePriceID)
	if !ok {
		return nil
	}

	return entitlement.Apply(database.DB, user.ID, tier.ID, entitlement.PaymentResult{
		Status:               string(sub.Status),
		StripeSubscriptionID: sub.ID,
		PeriodStart:          &periodStart,
		PeriodEnd:            &periodEnd,
	})
}

func userIDFromMetadata(md map[string]string) uint {
	if md == nil {
		return 0
	}
	s := md["user_id"]
	if s == "" {
		return 0
	}
	uid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(uid)
}
