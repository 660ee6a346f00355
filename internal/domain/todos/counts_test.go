package todos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestOverdue(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{name: "no due date is never overdue", due: nil, want: false},
		{name: "due today is not overdue", due: timePtr(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)), want: false},
		{name: "due later today is not overdue", due: timePtr(time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)), want: false},
		{name: "due yesterday is overdue", due: timePtr(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)), want: true},
		{name: "due yesterday late evening is overdue", due: timePtr(time.Date(2026, time.March, 14, 23, 0, 0, 0, time.UTC)), want: true},
		{name: "due tomorrow is not overdue", due: timePtr(time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{DueDate: tt.due}
			assert.Equal(t, tt.want, item.Overdue(now))

			todo := Todo{DueDate: tt.due}
			assert.Equal(t, tt.want, todo.Overdue(now))
		})
	}
}

func TestCountByStatus(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	list := []Item{
		{Status: StatusPending},
		{Status: StatusPending, DueDate: &yesterday},
		{Status: StatusInProgress},
		{Status: StatusCompleted, DueDate: &yesterday},
		{Status: StatusCancelled},
	}

	c := CountByStatus(list, now)

	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 2, c.Pending)
	assert.Equal(t, 1, c.InProgress)
	assert.Equal(t, 1, c.Completed)
	assert.Equal(t, 1, c.Cancelled)
	assert.Equal(t, 2, c.Overdue)

	// structural invariants
	assert.Equal(t, c.Total, c.Pending+c.InProgress+c.Completed+c.Cancelled)
	assert.LessOrEqual(t, c.Overdue, c.Total)
}

func TestCountByStatusEmpty(t *testing.T) {
	c := CountByStatus(nil, time.Now())
	assert.Equal(t, Counts{}, c)
}

// Creating a new pending item bumps pending by one and leaves overdue alone
// when it has no due date.
func TestCreateScenario(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	list := sampleItems()
	before := CountByStatus(list, now)

	created := Item{ID: 99, Title: "Inspect boiler", Priority: PriorityHigh, Status: StatusPending}
	list = append([]Item{created}, list...) // newest first

	after := CountByStatus(list, now)

	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, before.Pending+1, after.Pending)
	assert.Equal(t, before.Overdue, after.Overdue)
	assert.Equal(t, before.Total+1, after.Total)
}

// Completing a pending item moves one unit between buckets and touches
// nothing else.
func TestStatusChangeScenario(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	list := sampleItems()
	before := CountByStatus(list, now)

	for i := range list {
		if list[i].ID == 1 {
			assert.Equal(t, StatusPending, list[i].Status)
			list[i].Status = StatusCompleted
		}
	}

	after := CountByStatus(list, now)

	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Completed+1, after.Completed)
	assert.Equal(t, before.InProgress, after.InProgress)
	assert.Equal(t, before.Cancelled, after.Cancelled)
	assert.Equal(t, before.Total, after.Total)
}
