package entitlement

import (
	"errors"
	"fmt"
	"time"

	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"gorm.io/gorm"
)

// PaymentResult is what the payment flow hands back: a status plus, for
// subscriptions, the provider identifiers and billing period bounds.
type PaymentResult struct {
	Status               string
	StripeCustomerID     string
	StripeSubscriptionID string
	PeriodStart          *time.Time
	PeriodEnd            *time.Time
}

var ErrUnknownTier = errors.New("tier not in catalog")
var ErrMissingStatus = errors.New("payment result missing status")

// Apply persists the purchased tier onto the user's profile: tier id, status,
// quota and billing metadata, in one UPDATE keyed on the user id. Re-applying
// the same successful result rewrites identical values, so duplicate webhook
// deliveries cannot corrupt the profile. The reports_used counter resets when
// the billing period advances, and is left alone otherwise.
func Apply(db *gorm.DB, userID uint, tierID string, res PaymentResult) error {
	tier, ok := tiers.ByID(tierID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tierID)
	}
	if res.Status == "" {
		return ErrMissingStatus
	}

	updates, err := buildUpdates(tier, res)
	if err != nil {
		return err
	}

	var user users.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	// New billing period (or a switch to a different subscription): the
	// monthly counter starts over.
	if periodAdvanced(user, tier, res) {
		updates["reports_used"] = 0
	}

	tx := db.Model(&users.User{}).Where("id = ?", userID).Updates(updates)
	if tx.Error != nil {
		return fmt.Errorf("failed to persist entitlement: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("user %d not found", userID)
	}
	return nil
}

// buildUpdates maps a payment result onto the user columns for one tier.
// Non-subscription tiers always clear the subscription columns, so reverting
// to free drops the Stripe linkage in the same write.
func buildUpdates(tier tiers.Tier, res PaymentResult) (map[string]interface{}, error) {
	updates := map[string]interface{}{
		"tier_id":             tier.ID,
		"subscription_status": res.Status,
		"reports_quota":       tier.ReportsPerMonth,
	}
	if res.StripeCustomerID != "" {
		updates["stripe_customer_id"] = res.StripeCustomerID
	}
	if tier.Type == tiers.TypeSubscription {
		if res.StripeSubscriptionID == "" {
			return nil, errors.New("subscription result missing subscription id")
		}
		updates["stripe_subscription_id"] = res.StripeSubscriptionID
		updates["current_period_start"] = res.PeriodStart
		updates["current_period_end"] = res.PeriodEnd
	} else {
		updates["stripe_subscription_id"] = nil
		updates["current_period_start"] = nil
		updates["current_period_end"] = nil
	}
	return updates, nil
}

func periodAdvanced(u users.User, tier tiers.Tier, res PaymentResult) bool {
	if tier.Type != tiers.TypeSubscription {
		// One-time and free grants start a fresh allowance. Exact duplicate
		// deliveries are screened out upstream by the webhook event-id check.
		return true
	}
	if u.StripeSubscriptionID == nil || *u.StripeSubscriptionID != res.StripeSubscriptionID {
		return true
	}
	if res.PeriodStart == nil || u.CurrentPeriodStart == nil {
		return false
	}
	return res.PeriodStart.After(*u.CurrentPeriodStart)
}
