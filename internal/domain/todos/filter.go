package todos

import "strings"

// FilterAll is the neutral value for the status/priority predicates.
const FilterAll = "all"

// Filter narrows a to-do list by free-text search and exact status/priority
// match, all combined with AND. Search matches case-insensitive substrings of
// title, description, and the joined property address. Empty search and
// "all" status/priority leave the list unchanged, so filtering with defaults
// is the identity and the whole thing is idempotent.
func Filter(list []Item, search, status, priority string) []Item {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Item, 0, len(list))
	for _, it := range list {
		if search != "" && !matchesSearch(it, search) {
			continue
		}
		if status != "" && status != FilterAll && it.Status != status {
			continue
		}
		if priority != "" && priority != FilterAll && it.Priority != priority {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it Item, needle string) bool {
	if strings.Contains(strings.ToLower(it.Title), needle) {
		return true
	}
	if it.Description != nil && strings.Contains(strings.ToLower(*it.Description), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(it.PropertyAddress), needle)
}
