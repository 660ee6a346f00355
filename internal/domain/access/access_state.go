package access

import (
	"time"

	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"
	"compliance-app/internal/infra/stripe"
)

// Effective access for the product surface: free|active|past_due|expired
func ComputeAccessState(now time.Time, u users.User) AccessState {
	tier, ok := tiers.ByID(u.TierID)
	if !ok || tier.Type == tiers.TypeFree {
		return AccessFree
	}

	// One-time purchases don't expire; they just run the quota down.
	if tier.Type == tiers.TypeOneTime {
		return AccessActive
	}

	switch stripe.NormalizeStripeStatus(u.SubscriptionStatus) {
	case "active", "trialing":
		return AccessActive
	case "past_due":
		return AccessPastDue
	case "canceled":
		// paid-through: access survives until the period the user paid for ends
		if u.CurrentPeriodEnd != nil && now.Before(*u.CurrentPeriodEnd) {
			return AccessActive
		}
		return AccessExpired
	default:
		return AccessExpired
	}
}
