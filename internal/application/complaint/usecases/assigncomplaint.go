package usecases

import (
	"context"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintID uint
	Agent       string
}

type AssignComplaintUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewAssignComplaintUseCase(complaintRepo complaint.Repository, log logger.Interface) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{complaintRepo: complaintRepo, logger: log}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.Agent == "" {
		return errors.NewValidationError("agent is required")
	}

	c, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID)
	if err != nil {
		return err
	}

	if err := c.AssignTo(cmd.Agent); err != nil {
		return errors.NewConflictError(err.Error())
	}
	c.AppendNote(cmd.Agent, "complaint assigned to "+cmd.Agent)

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return err
	}

	uc.logger.Infow("complaint assigned", "complaint_id", cmd.ComplaintID, "agent", cmd.Agent)
	return nil
}
