package complaint

import "context"

// Filter narrows complaint listings.
type Filter struct {
	Status   string
	Priority string
	Phone    string
	Page     int
	PageSize int
}

// Repository is the persistence port for complaints.
type Repository interface {
	Save(ctx context.Context, c *Complaint) error
	Update(ctx context.Context, c *Complaint) error
	FindByID(ctx context.Context, id uint) (*Complaint, error)
	List(ctx context.Context, filter Filter) ([]*Complaint, int64, error)
	// FindSweepable returns all complaints in a status the escalation sweep
	// still acts on (open, assigned).
	FindSweepable(ctx context.Context) ([]*Complaint, error)
	AddNote(ctx context.Context, complaintID uint, note Note) error
}

// ReminderLog records which reminder thresholds have already fired per
// complaint, so a sweep never sends the same reminder twice. Durable in its
// own table rather than parsed back out of the notes text.
type ReminderLog interface {
	WasSent(ctx context.Context, complaintID uint, thresholdHours int) (bool, error)
	MarkSent(ctx context.Context, complaintID uint, thresholdHours int) error
}
