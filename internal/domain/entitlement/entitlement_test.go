package entitlement

import (
	"testing"
	"time"

	"compliance-app/internal/domain/tiers"

	"github.com/stretchr/testify/assert"
)

// Catalog and payload validation happens before the database is touched, so
// a nil DB is fine for the rejection paths.

func TestApplyRejectsUnknownTier(t *testing.T) {
	err := Apply(nil, 1, "platinum", PaymentResult{Status: "active"})
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestApplyRejectsMissingStatus(t *testing.T) {
	err := Apply(nil, 1, "landlord", PaymentResult{})
	assert.ErrorIs(t, err, ErrMissingStatus)
}

// Reverting to free (subscription deleted, downgrade) goes through the same
// column mapping as every other grant: subscription linkage cleared, quota
// zeroed.
func TestBuildUpdatesFreeTierClearsSubscription(t *testing.T) {
	free, ok := tiers.ByID("free")
	assert.True(t, ok)

	updates, err := buildUpdates(free, PaymentResult{Status: "canceled"})
	assert.NoError(t, err)

	assert.Equal(t, "free", updates["tier_id"])
	assert.Equal(t, "canceled", updates["subscription_status"])
	assert.Equal(t, 0, updates["reports_quota"])
	assert.Nil(t, updates["stripe_subscription_id"])
	assert.Nil(t, updates["current_period_start"])
	assert.Nil(t, updates["current_period_end"])
}

func TestBuildUpdatesSubscriptionCarriesPeriod(t *testing.T) {
	landlord, ok := tiers.ByID("landlord")
	assert.True(t, ok)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	updates, err := buildUpdates(landlord, PaymentResult{
		Status:               "active",
		StripeSubscriptionID: "sub_123",
		PeriodStart:          &start,
		PeriodEnd:            &end,
	})
	assert.NoError(t, err)

	assert.Equal(t, "landlord", updates["tier_id"])
	assert.Equal(t, 3, updates["reports_quota"])
	assert.Equal(t, "sub_123", updates["stripe_subscription_id"])
	assert.Equal(t, &start, updates["current_period_start"])
	assert.Equal(t, &end, updates["current_period_end"])
}

func TestBuildUpdatesSubscriptionNeedsID(t *testing.T) {
	landlord, _ := tiers.ByID("landlord")

	_, err := buildUpdates(landlord, PaymentResult{Status: "active"})
	assert.Error(t, err)
}
