package message

import (
	"context"
	"time"
)

// Branch identifies which arm of the orchestrator decision tree answered
// the message.
type Branch string

const (
	BranchSpam          Branch = "spam"
	BranchWelcome       Branch = "welcome"
	BranchInvalidFormat Branch = "invalid_format"
	BranchNotFound      Branch = "not_found"
	BranchServiceError  Branch = "service_error"
	BranchStatus        Branch = "status"
)

// Outcome is the full per-message record: the bilingual reply delivered to
// the customer plus the structured metadata persisted for observability and
// downstream complaint handling.
type Outcome struct {
	ID             uint
	Phone          string
	Text           string
	Branch         Branch
	Language       string
	Intent         string
	ContractNumber string
	ResponseFR     string
	ResponseAR     string
	UsedFallback   bool
	FromCache      bool
	IsComplaint    bool
	ComplaintID    uint
	ErrorCode      string
	ExtractionMS   int64
	ResolverMS     int64
	CreatedAt      time.Time
}

// OutcomeFilter narrows outcome listings.
type OutcomeFilter struct {
	Phone    string
	Branch   string
	Page     int
	PageSize int
}

// OutcomeRepository persists one Outcome per processed inbound message.
type OutcomeRepository interface {
	Save(ctx context.Context, o *Outcome) error
	List(ctx context.Context, filter OutcomeFilter) ([]*Outcome, int64, error)
}
