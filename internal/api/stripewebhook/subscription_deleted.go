package stripewebhooks

import (
	"compliance-app/database"
	"compliance-app/internal/domain/entitlement"
	"compliance-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
)

// A deleted subscription drops the user back to the free tier. Access up to
// the paid-through date was already granted by the last update event.
func handleSubscriptionDeleted(sub *stripe.Subscription) error {
	if sub.ID == "" {
		return nil
	}

	var user users.User
	userID := userIDFromMetadata(sub.Metadata)
	if userID != 0 {
		_ = database.DB.Where("id = ?", userID).First(&user).Error
	}
	if user.ID == 0 {
		_ = database.DB.Where("stripe_subscription_id = ?", sub.ID).First(&user).Error
	}
	if user.ID == 0 {
		return nil
	}

	status := string(sub.Status)
	if status == "" {
		status = "canceled"
	}

	return entitlement.Apply(database.DB, user.ID, "free", entitlement.PaymentResult{
		Status: status,
	})
}
