package properties

import (
	"compliance-app/internal/domain/users"
	"time"
)

// Property types accepted on creation
const (
	TypeFlat   = "flat"
	TypeHouse  = "house"
	TypeHMO    = "hmo"
	TypeOffice = "office"
)

type Property struct {
	ID           uint `gorm:"primaryKey"`
	UserID       uint `gorm:"index;not null"`
	User         users.User
	Address      string `gorm:"not null"`
	City         string `gorm:"not null"`
	PropertyType string `gorm:"type:varchar(20);not null;default:'flat'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ValidType(t string) bool {
	switch t {
	case TypeFlat, TypeHouse, TypeHMO, TypeOffice:
		return true
	}
	return false
}
