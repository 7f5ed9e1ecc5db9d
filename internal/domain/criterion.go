package domain

import "strings"

// FilterCriterion selects a subset of the task collection.
type FilterCriterion int

const (
	FilterAll FilterCriterion = iota
	FilterLow
	FilterMedium
	FilterHigh
	FilterPending
	FilterDone
)

// String returns the display label for the criterion.
func (c FilterCriterion) String() string {
	switch c {
	case FilterAll:
		return "all"
	case FilterLow:
		return "low"
	case FilterMedium:
		return "medium"
	case FilterHigh:
		return "high"
	case FilterPending:
		return "pending"
	case FilterDone:
		return "done"
	default:
		return "unknown"
	}
}

// ParseFilterCriterion maps user input to a criterion, case-insensitively.
// The boolean result is false for unrecognised input.
func ParseFilterCriterion(input string) (FilterCriterion, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "all":
		return FilterAll, true
	case "low":
		return FilterLow, true
	case "medium":
		return FilterMedium, true
	case "high":
		return FilterHigh, true
	case "pending":
		return FilterPending, true
	case "done":
		return FilterDone, true
	default:
		return FilterAll, false
	}
}

// Matches reports whether the task belongs to the subset the criterion selects.
func (c FilterCriterion) Matches(t Task) bool {
	switch c {
	case FilterAll:
		return true
	case FilterLow, FilterMedium, FilterHigh:
		return t.Priority.EqualsFold(c.priorityLabel())
	case FilterPending:
		return !t.Completed
	case FilterDone:
		return t.Completed
	default:
		return false
	}
}

func (c FilterCriterion) priorityLabel() string {
	switch c {
	case FilterLow:
		return string(PriorityLow)
	case FilterMedium:
		return string(PriorityMedium)
	case FilterHigh:
		return string(PriorityHigh)
	default:
		return ""
	}
}
