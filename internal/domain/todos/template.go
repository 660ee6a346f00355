package todos

import "time"

// QuickChecklist returns the fixed starter checklist for a property: three
// tasks with due dates 30, 60 and 14 days out, all pending. Deliberately a
// literal seed list, not a rules engine.
func QuickChecklist(userID, propertyID uint, now time.Time) []Todo {
	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}
	desc := func(s string) *string { return &s }

	return []Todo{
		{
			UserID:      userID,
			PropertyID:  propertyID,
			Title:       "Fire safety inspection",
			Description: desc("Book and complete the annual fire safety inspection."),
			Priority:    PriorityHigh,
			Status:      StatusPending,
			DueDate:     due(30),
		},
		{
			UserID:      userID,
			PropertyID:  propertyID,
			Title:       "Insurance review",
			Description: desc("Review landlord insurance cover and renewal terms."),
			Priority:    PriorityMedium,
			Status:      StatusPending,
			DueDate:     due(60),
		},
		{
			UserID:      userID,
			PropertyID:  propertyID,
			Title:       "Update emergency contacts",
			Description: desc("Confirm tenant-facing emergency contact details are current."),
			Priority:    PriorityMedium,
			Status:      StatusPending,
			DueDate:     due(14),
		},
	}
}
