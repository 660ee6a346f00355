package todos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleItems() []Item {
	return []Item{
		{ID: 1, Title: "Fire safety inspection", Description: strPtr("Annual check"), Priority: PriorityHigh, Status: StatusPending, PropertyAddress: "12 Baker Street"},
		{ID: 2, Title: "Insurance review", Priority: PriorityMedium, Status: StatusInProgress, PropertyAddress: "12 Baker Street"},
		{ID: 3, Title: "Gas certificate renewal", Description: strPtr("CP12 expires soon"), Priority: PriorityUrgent, Status: StatusCompleted, PropertyAddress: "3 Canal Wharf"},
		{ID: 4, Title: "Update emergency contacts", Priority: PriorityLow, Status: StatusPending, PropertyAddress: "3 Canal Wharf"},
	}
}

func ids(list []Item) []uint {
	out := make([]uint, 0, len(list))
	for _, it := range list {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		status   string
		priority string
		want     []uint
	}{
		{name: "defaults return everything", search: "", status: FilterAll, priority: FilterAll, want: []uint{1, 2, 3, 4}},
		{name: "empty strings act as defaults", search: "", status: "", priority: "", want: []uint{1, 2, 3, 4}},
		{name: "search matches title", search: "insurance", status: FilterAll, priority: FilterAll, want: []uint{2}},
		{name: "search is case-insensitive", search: "FIRE", status: FilterAll, priority: FilterAll, want: []uint{1}},
		{name: "search matches description", search: "cp12", status: FilterAll, priority: FilterAll, want: []uint{3}},
		{name: "search matches property address", search: "baker", status: FilterAll, priority: FilterAll, want: []uint{1, 2}},
		{name: "status exact match", search: "", status: StatusPending, priority: FilterAll, want: []uint{1, 4}},
		{name: "priority exact match", search: "", status: FilterAll, priority: PriorityUrgent, want: []uint{3}},
		{name: "predicates combine with AND", search: "canal", status: StatusPending, priority: FilterAll, want: []uint{4}},
		{name: "AND can be empty", search: "baker", status: StatusCompleted, priority: FilterAll, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleItems(), tt.search, tt.status, tt.priority)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	list := sampleItems()

	once := Filter(list, "baker", StatusPending, FilterAll)
	twice := Filter(once, "baker", StatusPending, FilterAll)

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := sampleItems()
	Filter(list, "insurance", FilterAll, FilterAll)

	assert.Equal(t, sampleItems(), list)
}

func TestFilterEmptyList(t *testing.T) {
	assert.Empty(t, Filter(nil, "anything", StatusPending, PriorityHigh))
}
