package usecases

import (
	"context"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type ListComplaintsQuery struct {
	Status   string
	Priority string
	Phone    string
	Page     int
	PageSize int
}

type ComplaintSummary struct {
	ID                uint      `json:"id"`
	Phone             string    `json:"phone"`
	ContractNumber    string    `json:"contract_number,omitempty"`
	Category          string    `json:"category"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	AssignedTo        string    `json:"assigned_to,omitempty"`
	EscalatedToOrange bool      `json:"escalated_to_orange"`
	OrangeTicketID    string    `json:"orange_ticket_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ListComplaintsResult struct {
	Complaints []ComplaintSummary
	Total      int64
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewListComplaintsUseCase(complaintRepo complaint.Repository, log logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{complaintRepo: complaintRepo, logger: log}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 || query.PageSize > 100 {
		query.PageSize = 20
	}

	complaints, total, err := uc.complaintRepo.List(ctx, complaint.Filter{
		Status:   query.Status,
		Priority: query.Priority,
		Phone:    query.Phone,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, err
	}

	summaries := make([]ComplaintSummary, 0, len(complaints))
	for _, c := range complaints {
		summaries = append(summaries, ToSummary(c))
	}

	return &ListComplaintsResult{Complaints: summaries, Total: total}, nil
}

// ToSummary converts a domain complaint to its API projection.
func ToSummary(c *complaint.Complaint) ComplaintSummary {
	return ComplaintSummary{
		ID:                c.ID(),
		Phone:             c.Phone(),
		ContractNumber:    c.ContractNumber(),
		Category:          c.Category().String(),
		Priority:          c.Priority().String(),
		Status:            c.Status().String(),
		AssignedTo:        c.AssignedTo(),
		EscalatedToOrange: c.EscalatedToOrange(),
		OrangeTicketID:    c.OrangeTicketID(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}
}
