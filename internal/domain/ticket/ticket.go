// Package ticket models the handoff record created when a complaint is
// escalated to the external ticketing provider.
package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Belkouche/jarvis-sub000/internal/domain/ticket/valueobjects"
)

// LocalTicketPrefix marks provider ids generated locally because the
// provider was unreachable or unconfigured at escalation time.
const LocalTicketPrefix = "LOCAL-"

// Ticket is created exactly once per complaint escalation.
type Ticket struct {
	id             uint
	complaintID    uint
	orangeTicketID string // empty or LOCAL-* means no real provider ticket
	status         vo.TicketStatus
	description    string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(complaintID uint, orangeTicketID, description string) (*Ticket, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &Ticket{
		complaintID:    complaintID,
		orangeTicketID: orangeTicketID,
		status:         vo.StatusOpen,
		description:    description,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	complaintID uint,
	orangeTicketID string,
	status vo.TicketStatus,
	description string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:             id,
		complaintID:    complaintID,
		orangeTicketID: orangeTicketID,
		status:         status,
		description:    description,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) ComplaintID() uint      { return t.complaintID }
func (t *Ticket) OrangeTicketID() string { return t.orangeTicketID }
func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// IsLocal reports whether this ticket only exists locally, without a
// counterpart at the external provider.
func (t *Ticket) IsLocal() bool {
	return t.orangeTicketID == "" || strings.HasPrefix(t.orangeTicketID, LocalTicketPrefix)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition ticket from %s to %s", t.status, newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}
