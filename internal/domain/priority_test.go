package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Priority
	}{
		{name: "should accept Low", input: "Low", want: PriorityLow},
		{name: "should accept Medium", input: "Medium", want: PriorityMedium},
		{name: "should accept High", input: "High", want: PriorityHigh},
		{name: "should be case-insensitive", input: "hIgH", want: PriorityHigh},
		{name: "should trim surrounding whitespace", input: "  low ", want: PriorityLow},
		{name: "should default unknown input to Medium", input: "urgent", want: PriorityMedium},
		{name: "should default empty input to Medium", input: "", want: PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriority(tt.input))
		})
	}
}

func TestPriority_IsKnown(t *testing.T) {
	assert.True(t, PriorityLow.IsKnown())
	assert.True(t, PriorityMedium.IsKnown())
	assert.True(t, PriorityHigh.IsKnown())
	assert.False(t, Priority("Whenever").IsKnown())
	assert.False(t, Priority("low").IsKnown())
}

func TestPriority_EqualsFold(t *testing.T) {
	assert.True(t, PriorityHigh.EqualsFold("HIGH"))
	assert.True(t, PriorityHigh.EqualsFold("high"))
	assert.False(t, PriorityHigh.EqualsFold("low"))
}
