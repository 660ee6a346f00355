package todos

import (
	"compliance-app/internal/domain/properties"
	"compliance-app/internal/domain/users"
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type Todo struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"index;not null"`
	User        users.User
	PropertyID  uint `gorm:"index;not null"`
	Property    properties.Property `gorm:"constraint:OnDelete:CASCADE"`
	Title       string              `gorm:"not null"`
	Description *string
	Priority    string `gorm:"type:varchar(10);not null;default:'medium'"`
	Status      string `gorm:"type:varchar(15);not null;default:'pending'"`
	DueDate     *time.Time
	Assignee    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Overdue reports whether the to-do's due date has passed. The comparison is
// by calendar date: something due today is not overdue yet, something due
// yesterday is. No due date means never overdue.
func (t Todo) Overdue(now time.Time) bool {
	return overdueAt(t.DueDate, now)
}
