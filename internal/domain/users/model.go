package users

import (
	"time"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	Lastname     string
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	// Entitlement: which tier the user holds and where the quota stands.
	// TierID references the in-code catalog, not a DB table.
	TierID             string `gorm:"column:tier_id;type:varchar(32);not null;default:'free'"`
	SubscriptionStatus *string
	ReportsQuota       int `gorm:"column:reports_quota;not null;default:0"`
	ReportsUsed        int `gorm:"column:reports_used;not null;default:0"`

	StripeCustomerID     *string    `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`
	StripeSubscriptionID *string    `gorm:"column:stripe_subscription_id;uniqueIndex:idx_users_stripe_subscription_id"`
	CurrentPeriodStart   *time.Time `gorm:"column:current_period_start"`
	CurrentPeriodEnd     *time.Time `gorm:"column:current_period_end"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
