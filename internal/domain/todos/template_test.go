package todos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickChecklist(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	batch := QuickChecklist(7, 42, now)

	require.Len(t, batch, 3)

	offsets := map[string]int{}
	for _, todo := range batch {
		assert.Equal(t, uint(7), todo.UserID)
		assert.Equal(t, uint(42), todo.PropertyID)
		assert.Equal(t, StatusPending, todo.Status)
		assert.NotEmpty(t, todo.Title)
		require.NotNil(t, todo.DueDate)

		days := int(todo.DueDate.Sub(now).Hours() / 24)
		offsets[todo.Title] = days
	}

	assert.Equal(t, map[string]int{
		"Fire safety inspection":    30,
		"Insurance review":          60,
		"Update emergency contacts": 14,
	}, offsets)
}

func TestQuickChecklistIsDeterministic(t *testing.T) {
	now := time.Now()
	assert.Equal(t, QuickChecklist(1, 2, now), QuickChecklist(1, 2, now))
}
