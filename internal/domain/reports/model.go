package reports

import (
	"compliance-app/internal/domain/properties"
	"compliance-app/internal/domain/users"
	"time"
)

const (
	StatusGenerating = "generating"
	StatusReady      = "ready"
	StatusFailed     = "failed"
)

// Report is one compliance report run against a property. Each row counts
// against the owner's monthly quota.
type Report struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"index;not null"`
	User       users.User
	PropertyID uint `gorm:"index;not null"`
	Property   properties.Property `gorm:"constraint:OnDelete:CASCADE"`
	Status     string              `gorm:"type:varchar(15);not null;default:'generating'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
