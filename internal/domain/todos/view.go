package todos

import "time"

// Item is the list view of a to-do joined with the display fields of its
// property. Filtering and dashboard counts are pure functions over []Item.
type Item struct {
	ID              uint       `json:"id"`
	PropertyID      uint       `json:"property_id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	DueDate         *time.Time `json:"due_date"`
	Assignee        *string    `json:"assignee"`
	CreatedAt       time.Time  `json:"created_at"`
	PropertyAddress string     `json:"property_address"`
	PropertyCity    string     `json:"property_city"`
	PropertyType    string     `json:"property_type"`
}

func (i Item) Overdue(now time.Time) bool {
	return overdueAt(i.DueDate, now)
}

func overdueAt(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := due.Date()
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())
	return dueDay.Before(today)
}
