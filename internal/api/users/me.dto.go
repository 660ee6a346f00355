package users

import (
	"time"

	"compliance-app/internal/domain/access"
	"compliance-app/internal/domain/tiers"
)

type UserDTO struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
}

type BillingDTO struct {
	Tier               tiers.Tier `json:"tier"`
	SubscriptionStatus string     `json:"subscription_status"`
	PeriodStart        *time.Time `json:"current_period_start,omitempty"`
	PeriodEnd          *time.Time `json:"current_period_end,omitempty"`
}

type MeResponse struct {
	User    UserDTO       `json:"user"`
	Billing BillingDTO    `json:"billing"`
	Access  access.Policy `json:"access"`
}
