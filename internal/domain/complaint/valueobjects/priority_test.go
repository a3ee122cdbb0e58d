package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityNext(t *testing.T) {
	assert.Equal(t, PriorityMedium, PriorityLow.Next())
	assert.Equal(t, PriorityHigh, PriorityMedium.Next())
	assert.Equal(t, PriorityHigh, PriorityHigh.Next())
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityLow.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityHigh.Rank())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("medium")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	_, err = NewPriority("critical")
	assert.Error(t, err)
}
