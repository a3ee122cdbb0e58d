package complaint

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

func newTestComplaint(t *testing.T) *Complaint {
	t.Helper()
	c, err := NewComplaint("+212600000001", "F0823846D", vo.CategoryDelay, "toujours pas de technicien", vo.PriorityMedium)
	require.NoError(t, err)
	return c
}

func TestNewComplaint(t *testing.T) {
	c := newTestComplaint(t)

	assert.Equal(t, uint(0), c.ID())
	assert.Equal(t, vo.StatusOpen, c.Status())
	assert.False(t, c.EscalatedToOrange())
	assert.Empty(t, c.OrangeTicketID())
	assert.Empty(t, c.Notes())
	assert.False(t, c.CreatedAt().IsZero())
}

func TestNewComplaintValidation(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		description string
		category    vo.Category
		priority    vo.Priority
	}{
		{"empty phone", "", "panne", vo.CategoryDelay, vo.PriorityLow},
		{"empty description", "+212600000001", "", vo.CategoryDelay, vo.PriorityLow},
		{"oversized description", "+212600000001", strings.Repeat("a", 5001), vo.CategoryDelay, vo.PriorityLow},
		{"invalid category", "+212600000001", "panne", vo.Category("weather"), vo.PriorityLow},
		{"invalid priority", "+212600000001", "panne", vo.CategoryDelay, vo.Priority("critical")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewComplaint(tt.phone, "F0823846D", tt.category, tt.description, tt.priority)
			assert.Error(t, err)
		})
	}
}

func TestComplaintLifecycle(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.AssignTo("agent.karim"))
	assert.Equal(t, vo.StatusAssigned, c.Status())
	assert.Equal(t, "agent.karim", c.AssignedTo())

	require.NoError(t, c.Escalate("ORG-42"))
	assert.Equal(t, vo.StatusEscalated, c.Status())
	assert.True(t, c.EscalatedToOrange())
	assert.Equal(t, "ORG-42", c.OrangeTicketID())

	require.NoError(t, c.Resolve("agent.karim"))
	assert.Equal(t, vo.StatusResolved, c.Status())
}

func TestComplaintStatusNeverMovesBackward(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.Escalate("ORG-42"))

	assert.Error(t, c.AssignTo("agent.karim"))
	assert.Equal(t, vo.StatusEscalated, c.Status())

	require.NoError(t, c.Resolve("supervisor"))
	assert.Error(t, c.AssignTo("agent.karim"))
	assert.Error(t, c.Escalate("ORG-43"))
	assert.Equal(t, vo.StatusResolved, c.Status())
}

func TestComplaintEscalateIsOneShot(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.Escalate("ORG-42"))

	err := c.Escalate("ORG-43")
	require.Error(t, err)
	// The original ticket reference survives the rejected second attempt.
	assert.Equal(t, "ORG-42", c.OrangeTicketID())
}

func TestComplaintResolveIsIdempotent(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.Resolve("agent.karim"))
	notes := len(c.Notes())

	require.NoError(t, c.Resolve("agent.karim"))
	assert.Len(t, c.Notes(), notes)
}

func TestComplaintBumpPriority(t *testing.T) {
	c, err := NewComplaint("+212600000001", "", vo.CategoryQuality, "coupure permanente", vo.PriorityLow)
	require.NoError(t, err)

	to, err := c.BumpPriority()
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityMedium, to)

	to, err = c.BumpPriority()
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityHigh, to)

	_, err = c.BumpPriority()
	assert.Error(t, err)
	assert.Equal(t, vo.PriorityHigh, c.Priority())
}

func TestComplaintBumpRefusesNonSweepableStatus(t *testing.T) {
	c := newTestComplaint(t)
	require.NoError(t, c.Escalate("ORG-42"))

	_, err := c.BumpPriority()
	assert.Error(t, err)
}

func TestComplaintAge(t *testing.T) {
	created := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	c, err := ReconstructComplaint(
		1, "+212600000001", "F0823846D",
		vo.CategoryDelay, "toujours pas de technicien", vo.PriorityHigh,
		vo.StatusOpen, "", false, "", nil, created, created,
	)
	require.NoError(t, err)

	assert.Equal(t, 9*time.Hour, c.Age(created.Add(9*time.Hour)))
}

func TestComplaintNotesAreAppendOnly(t *testing.T) {
	c := newTestComplaint(t)
	c.AppendNote("system", "first")
	c.AppendNote("agent.karim", "second")

	notes := c.Notes()
	require.Len(t, notes, 2)
	assert.Equal(t, "first", notes[0].Content)
	assert.Equal(t, "agent.karim", notes[1].Author)

	// Notes() hands out a copy; mutating it does not touch the entity.
	notes[0].Content = "tampered"
	assert.Equal(t, "first", c.Notes()[0].Content)
}

func TestComplaintSetID(t *testing.T) {
	c := newTestComplaint(t)

	require.NoError(t, c.SetID(7))
	assert.Equal(t, uint(7), c.ID())
	assert.Error(t, c.SetID(8))
	assert.Error(t, newTestComplaint(t).SetID(0))
}
