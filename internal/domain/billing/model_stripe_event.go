package billing

import "time"

// StripeEvent records every webhook event we have already processed. The
// unique index on EventID is what makes redelivered events no-ops.
type StripeEvent struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   string `gorm:"not null;uniqueIndex:idx_stripe_events_event_id"`
	EventType string
	CreatedAt time.Time
}
