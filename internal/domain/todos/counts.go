package todos

import "time"

// Counts is the dashboard summary. Total always equals the sum of the four
// status buckets; Overdue counts across statuses and never exceeds Total.
type Counts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Overdue    int `json:"overdue"`
}

// CountByStatus folds a to-do list into dashboard counts.
func CountByStatus(list []Item, now time.Time) Counts {
	var c Counts
	c.Total = len(list)
	for _, it := range list {
		switch it.Status {
		case StatusPending:
			c.Pending++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		case StatusCancelled:
			c.Cancelled++
		}
		if it.Overdue(now) {
			c.Overdue++
		}
	}
	return c
}
