package domain

import "strings"

// SortKey identifies the task field used for in-place sorting.
type SortKey int

const (
	SortByCreatedDate SortKey = iota
	SortByName
	SortByPriority
)

// DefaultSortKey is the fallback when a sort key is not recognised.
const DefaultSortKey = SortByCreatedDate

// String returns the field name for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortByCreatedDate:
		return "created_date"
	case SortByName:
		return "name"
	case SortByPriority:
		return "priority"
	default:
		return "unknown"
	}
}

// ParseSortKey maps user input to a sort key. The boolean result is false
// for unrecognised input; callers fall back to created-date ascending.
func ParseSortKey(input string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "created_date":
		return SortByCreatedDate, true
	case "name":
		return SortByName, true
	case "priority":
		return SortByPriority, true
	default:
		return DefaultSortKey, false
	}
}

// Less returns the ascending comparison function for the sort key.
// Unknown key values compare by creation date.
//
// Priority compares the label as a plain string, so "High" < "Low" <
// "Medium" alphabetically. This matches the long-standing behaviour and
// is not a severity ordering.
func (k SortKey) Less() func(a, b Task) bool {
	if less, ok := comparers[k]; ok {
		return less
	}
	return comparers[SortByCreatedDate]
}

var comparers = map[SortKey]func(a, b Task) bool{
	SortByCreatedDate: func(a, b Task) bool { return a.CreatedDate < b.CreatedDate },
	SortByName:        func(a, b Task) bool { return a.Name < b.Name },
	SortByPriority:    func(a, b Task) bool { return string(a.Priority) < string(b.Priority) },
}
