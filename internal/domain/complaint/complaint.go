package complaint

import (
	"fmt"
	"time"

	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

// Complaint is a customer grievance tracked through the escalation lifecycle.
// Status moves strictly forward (open → assigned → escalated → resolved,
// assignment optional) and priority only ever increases automatically.
type Complaint struct {
	id                uint
	phone             string
	contractNumber    string
	category          vo.Category
	description       string
	priority          vo.Priority
	status            vo.ComplaintStatus
	assignedTo        string
	escalatedToOrange bool
	orangeTicketID    string
	notes             []Note
	createdAt         time.Time
	updatedAt         time.Time
}

// Note is one append-only entry in a complaint's audit log.
type Note struct {
	Author    string
	Content   string
	CreatedAt time.Time
}

func NewComplaint(
	phone string,
	contractNumber string,
	category vo.Category,
	description string,
	priority vo.Priority,
) (*Complaint, error) {
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Complaint{
		phone:          phone,
		contractNumber: contractNumber,
		category:       category,
		description:    description,
		priority:       priority,
		status:         vo.StatusOpen,
		notes:          []Note{},
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	phone string,
	contractNumber string,
	category vo.Category,
	description string,
	priority vo.Priority,
	status vo.ComplaintStatus,
	assignedTo string,
	escalatedToOrange bool,
	orangeTicketID string,
	notes []Note,
	createdAt, updatedAt time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if notes == nil {
		notes = []Note{}
	}

	return &Complaint{
		id:                id,
		phone:             phone,
		contractNumber:    contractNumber,
		category:          category,
		description:       description,
		priority:          priority,
		status:            status,
		assignedTo:        assignedTo,
		escalatedToOrange: escalatedToOrange,
		orangeTicketID:    orangeTicketID,
		notes:             notes,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (c *Complaint) ID() uint                   { return c.id }
func (c *Complaint) Phone() string              { return c.phone }
func (c *Complaint) ContractNumber() string     { return c.contractNumber }
func (c *Complaint) Category() vo.Category      { return c.category }
func (c *Complaint) Description() string        { return c.description }
func (c *Complaint) Priority() vo.Priority      { return c.priority }
func (c *Complaint) Status() vo.ComplaintStatus { return c.status }
func (c *Complaint) AssignedTo() string         { return c.assignedTo }
func (c *Complaint) EscalatedToOrange() bool    { return c.escalatedToOrange }
func (c *Complaint) OrangeTicketID() string     { return c.orangeTicketID }
func (c *Complaint) CreatedAt() time.Time       { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time       { return c.updatedAt }

func (c *Complaint) Notes() []Note {
	notesCopy := make([]Note, len(c.notes))
	copy(notesCopy, c.notes)
	return notesCopy
}

// Age is the elapsed time since creation, the sole temporal input to every
// escalation rule.
func (c *Complaint) Age(now time.Time) time.Duration {
	return now.Sub(c.createdAt)
}

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// AssignTo moves an open complaint to assigned.
func (c *Complaint) AssignTo(agent string) error {
	if len(agent) == 0 {
		return fmt.Errorf("assignee is required")
	}
	if !c.status.CanTransitionTo(vo.StatusAssigned) {
		return fmt.Errorf("cannot assign complaint with status %s", c.status)
	}

	c.assignedTo = agent
	c.status = vo.StatusAssigned
	c.updatedAt = time.Now()
	return nil
}

// Escalate hands the complaint off to the external provider. The ticket id
// may be a local placeholder when the provider was unreachable.
func (c *Complaint) Escalate(orangeTicketID string) error {
	if c.escalatedToOrange {
		return fmt.Errorf("complaint already escalated")
	}
	if !c.status.CanTransitionTo(vo.StatusEscalated) {
		return fmt.Errorf("cannot escalate complaint with status %s", c.status)
	}

	c.status = vo.StatusEscalated
	c.escalatedToOrange = true
	c.orangeTicketID = orangeTicketID
	c.updatedAt = time.Now()
	return nil
}

// Resolve closes the complaint. Resolved is terminal.
func (c *Complaint) Resolve(resolvedBy string) error {
	if c.status.IsResolved() {
		return nil
	}
	if !c.status.CanTransitionTo(vo.StatusResolved) {
		return fmt.Errorf("cannot resolve complaint with status %s", c.status)
	}

	c.status = vo.StatusResolved
	c.AppendNote(resolvedBy, "complaint resolved")
	c.updatedAt = time.Now()
	return nil
}

// BumpPriority raises priority one level. It refuses to act on complaints
// the scheduler no longer owns and never lowers a priority.
func (c *Complaint) BumpPriority() (vo.Priority, error) {
	if !c.status.IsSweepable() {
		return c.priority, fmt.Errorf("cannot bump priority of %s complaint", c.status)
	}
	if c.priority == vo.PriorityHigh {
		return c.priority, fmt.Errorf("priority already at high")
	}

	c.priority = c.priority.Next()
	c.updatedAt = time.Now()
	return c.priority, nil
}

// AppendNote adds an entry to the audit log. Notes are append-only.
func (c *Complaint) AppendNote(author, content string) {
	c.notes = append(c.notes, Note{
		Author:    author,
		Content:   content,
		CreatedAt: time.Now(),
	})
	c.updatedAt = time.Now()
}
