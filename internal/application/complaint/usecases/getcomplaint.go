package usecases

import (
	"context"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type NoteView struct {
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ComplaintDetail struct {
	ComplaintSummary
	Description string     `json:"description"`
	Notes       []NoteView `json:"notes"`
}

type GetComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewGetComplaintUseCase(complaintRepo complaint.Repository, log logger.Interface) *GetComplaintUseCase {
	return &GetComplaintUseCase{complaintRepo: complaintRepo, logger: log}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, complaintID uint) (*ComplaintDetail, error) {
	if complaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	notes := make([]NoteView, 0, len(c.Notes()))
	for _, n := range c.Notes() {
		notes = append(notes, NoteView{Author: n.Author, Content: n.Content, CreatedAt: n.CreatedAt})
	}

	return &ComplaintDetail{
		ComplaintSummary: ToSummary(c),
		Description:      c.Description(),
		Notes:            notes,
	}, nil
}
