package stripewebhooks

import (
	"errors"
	"fmt"
	"strconv"

	"compliance-app/database"
	"compliance-app/internal/domain/billing"
	"compliance-app/internal/domain/entitlement"
	"compliance-app/internal/domain/tiers"
	"compliance-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

// One-time purchases complete through checkout. The session metadata names
// the user and tier; payment confirmed here is what actually grants the
// entitlement.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) error {
	fullSession, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Expand: []*string{
				stripe.String("customer"),
				stripe.String("payment_intent"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to fetch expanded checkout session: %w", err)
	}

	if fullSession.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil // not paid yet; a later event will say so
	}

	userID, err := userIDFromSessionOrRef(fullSession)
	if err != nil {
		return err
	}

	tierID := ""
	if fullSession.Metadata != nil {
		tierID = fullSession.Metadata["tier_id"]
	}
	tier, ok := tiers.ByID(tierID)
	if !ok {
		return fmt.Errorf("checkout session names unknown tier %q", tierID)
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	customerID := ""
	if fullSession.Customer != nil {
		customerID = fullSession.Customer.ID
	}

	sessionID := fullSession.ID
	payment := billing.Payment{
		UserID:          user.ID,
		TierID:          tier.ID,
		StripeSessionID: &sessionID,
		AmountGBP:       float64(fullSession.AmountTotal) / 100.0,
		Status:          string(fullSession.PaymentStatus),
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	return entitlement.Apply(database.DB, user.ID, tier.ID, entitlement.PaymentResult{
		Status:           "active",
		StripeCustomerID: customerID,
	})
}

func userIDFromSessionOrRef(session *stripe.CheckoutSession) (uint, error) {
	userIDStr := ""
	if session.Metadata != nil {
		userIDStr = session.Metadata["user_id"]
	}
	if userIDStr == "" {
		userIDStr = session.ClientReferenceID
	}
	if userIDStr == "" {
		return 0, errors.New("missing user_id (metadata.user_id or client_reference_id)")
	}

	uid64, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user_id %q: %w", userIDStr, err)
	}
	return uint(uid64), nil
}
