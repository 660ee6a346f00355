package billing

import (
	"compliance-app/internal/domain/users"
	"time"
)

type Payment struct {
	ID                   uint `gorm:"primaryKey"`
	UserID               uint `gorm:"index;not null"`
	User                 users.User
	TierID               string `gorm:"column:tier_id;type:varchar(32);not null"`
	StripeSessionID      *string `gorm:"uniqueIndex:idx_payments_stripe_session_id"`
	StripeSubscriptionID *string
	AmountGBP            float64
	Status               string
	ReceiptURL           *string
	CreatedAt            time.Time
}
