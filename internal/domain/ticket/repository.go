package ticket

import "context"

// Repository is the persistence port for escalation tickets.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByComplaintID(ctx context.Context, complaintID uint) (*Ticket, error)
	List(ctx context.Context, page, pageSize int) ([]*Ticket, int64, error)
}
