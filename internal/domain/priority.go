package domain

import "strings"

// Priority represents a task priority level. It is deliberately a string
// type: persisted files are loaded without re-validation, so a hand-edited
// record can carry an arbitrary label and still round-trip.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// DefaultPriority is applied when interactive input is not a recognised level.
const DefaultPriority = PriorityMedium

// ParsePriority maps user input to a priority level, case-insensitively.
// Anything unrecognised becomes the default (Medium); priority is only
// enforced at the point of interactive entry.
func ParsePriority(input string) Priority {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return DefaultPriority
	}
}

// IsKnown reports whether the priority is one of the enumerated levels.
func (p Priority) IsKnown() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// EqualsFold reports whether the priority label matches s case-insensitively.
func (p Priority) EqualsFold(s string) bool {
	return strings.EqualFold(string(p), s)
}
