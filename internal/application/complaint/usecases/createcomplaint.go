package usecases

import (
	"context"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

type CreateComplaintCommand struct {
	Phone          string
	ContractNumber string
	Category       string
	Description    string
	Priority       string
}

type CreateComplaintResult struct {
	ComplaintID uint
	Status      string
	Priority    string
	CreatedAt   time.Time
}

type CreateComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
	metrics       metrics.Sink
}

func NewCreateComplaintUseCase(
	complaintRepo complaint.Repository,
	log logger.Interface,
	sink metrics.Sink,
) *CreateComplaintUseCase {
	if sink == nil {
		sink = metrics.NewNoop()
	}
	return &CreateComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        log,
		metrics:       sink,
	}
}

func (uc *CreateComplaintUseCase) Execute(ctx context.Context, cmd CreateComplaintCommand) (*CreateComplaintResult, error) {
	uc.logger.Infow("creating complaint", "phone", cmd.Phone, "category", cmd.Category)

	category, err := vo.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newComplaint, err := complaint.NewComplaint(
		cmd.Phone,
		cmd.ContractNumber,
		category,
		cmd.Description,
		priority,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, err
	}

	uc.metrics.Inc(metrics.ComplaintCreated)
	uc.logger.Infow("complaint created", "complaint_id", newComplaint.ID(), "priority", priority)

	return &CreateComplaintResult{
		ComplaintID: newComplaint.ID(),
		Status:      newComplaint.Status().String(),
		Priority:    newComplaint.Priority().String(),
		CreatedAt:   newComplaint.CreatedAt(),
	}, nil
}
