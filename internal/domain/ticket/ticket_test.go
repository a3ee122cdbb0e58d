package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Belkouche/jarvis-sub000/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(7, "ORG-42", "toujours pas de technicien")
	require.NoError(t, err)
	assert.Equal(t, uint(7), tk.ComplaintID())
	assert.Equal(t, vo.StatusOpen, tk.Status())

	_, err = NewTicket(0, "ORG-42", "toujours pas de technicien")
	assert.Error(t, err)
	_, err = NewTicket(7, "ORG-42", "")
	assert.Error(t, err)
}

func TestTicketIsLocal(t *testing.T) {
	tests := []struct {
		orangeTicketID string
		local          bool
	}{
		{"ORG-42", false},
		{LocalTicketPrefix + "b3d9", true},
		{"", true},
	}
	for _, tt := range tests {
		tk, err := NewTicket(1, tt.orangeTicketID, "coupure permanente")
		require.NoError(t, err)
		assert.Equal(t, tt.local, tk.IsLocal(), "id %q", tt.orangeTicketID)
	}
}

func TestTicketChangeStatus(t *testing.T) {
	tk, err := NewTicket(1, "ORG-42", "coupure permanente")
	require.NoError(t, err)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))

	// Closed is terminal.
	assert.Error(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Error(t, tk.ChangeStatus(vo.StatusInProgress))
}

func TestTicketChangeStatusRejectsBackwardMove(t *testing.T) {
	tk, err := NewTicket(1, "ORG-42", "coupure permanente")
	require.NoError(t, err)
	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

	assert.Error(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusResolved, tk.Status())
}

func TestTicketChangeStatusSameStatusIsNoop(t *testing.T) {
	tk, err := NewTicket(1, "ORG-42", "coupure permanente")
	require.NoError(t, err)

	assert.NoError(t, tk.ChangeStatus(vo.StatusOpen))
	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("archived")))
}
