package billing

import (
	"fmt"
	"os"

	"compliance-app/database"
	"compliance-app/internal/domain/users"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/customer"
)

// ensureStripeCustomer creates and stores a Stripe customer for the user if
// one does not exist yet, and returns the customer id.
func ensureStripeCustomer(user *users.User) (string, error) {
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	cus, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Metadata: map[string]string{
			"user_id": fmt.Sprint(user.ID),
			"app_env": os.Getenv("APP_ENV"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	if err := database.DB.Model(&users.User{}).
		Where("id = ?", user.ID).
		Update("stripe_customer_id", cus.ID).Error; err != nil {
		return "", fmt.Errorf("failed to store stripe customer: %w", err)
	}

	user.StripeCustomerID = stripe.String(cus.ID)
	return cus.ID, nil
}
