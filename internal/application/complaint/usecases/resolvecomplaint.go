package usecases

import (
	"context"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/shared/db"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type ResolveComplaintCommand struct {
	ComplaintID uint
	ResolvedBy  string
	Resolution  string
}

type ResolveComplaintUseCase struct {
	complaintRepo complaint.Repository
	txMgr         *db.TransactionManager
	logger        logger.Interface
}

func NewResolveComplaintUseCase(
	complaintRepo complaint.Repository,
	txMgr *db.TransactionManager,
	log logger.Interface,
) *ResolveComplaintUseCase {
	return &ResolveComplaintUseCase{complaintRepo: complaintRepo, txMgr: txMgr, logger: log}
}

func (uc *ResolveComplaintUseCase) Execute(ctx context.Context, cmd ResolveComplaintCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.ResolvedBy == "" {
		return errors.NewValidationError("resolver identity is required")
	}

	// Status flip and resolution note land atomically.
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.complaintRepo.FindByID(txCtx, cmd.ComplaintID)
		if err != nil {
			return err
		}

		if cmd.Resolution != "" {
			c.AppendNote(cmd.ResolvedBy, cmd.Resolution)
		}
		if err := c.Resolve(cmd.ResolvedBy); err != nil {
			return errors.NewConflictError(err.Error())
		}

		return uc.complaintRepo.Update(txCtx, c)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to resolve complaint", "complaint_id", cmd.ComplaintID, "error", err)
		}
		return err
	}

	uc.logger.Infow("complaint resolved", "complaint_id", cmd.ComplaintID, "by", cmd.ResolvedBy)
	return nil
}
