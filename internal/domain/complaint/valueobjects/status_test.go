package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintStatusTransitions(t *testing.T) {
	tests := []struct {
		from    ComplaintStatus
		to      ComplaintStatus
		allowed bool
	}{
		{StatusOpen, StatusAssigned, true},
		{StatusOpen, StatusEscalated, true},
		{StatusOpen, StatusResolved, true},
		{StatusAssigned, StatusEscalated, true},
		{StatusAssigned, StatusResolved, true},
		{StatusEscalated, StatusResolved, true},

		// No backward edges, resolved is terminal.
		{StatusAssigned, StatusOpen, false},
		{StatusEscalated, StatusOpen, false},
		{StatusEscalated, StatusAssigned, false},
		{StatusResolved, StatusOpen, false},
		{StatusResolved, StatusAssigned, false},
		{StatusResolved, StatusEscalated, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestComplaintStatusIsSweepable(t *testing.T) {
	assert.True(t, StatusOpen.IsSweepable())
	assert.True(t, StatusAssigned.IsSweepable())
	assert.False(t, StatusEscalated.IsSweepable())
	assert.False(t, StatusResolved.IsSweepable())
}

func TestNewComplaintStatus(t *testing.T) {
	s, err := NewComplaintStatus("escalated")
	require.NoError(t, err)
	assert.Equal(t, StatusEscalated, s)

	_, err = NewComplaintStatus("reopened")
	assert.Error(t, err)
}
