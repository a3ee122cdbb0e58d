package usecases

import (
	"context"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

type AddNoteCommand struct {
	ComplaintID uint
	Author      string
	Content     string
}

type AddNoteUseCase struct {
	complaintRepo complaint.Repository
	logger        logger.Interface
}

func NewAddNoteUseCase(complaintRepo complaint.Repository, log logger.Interface) *AddNoteUseCase {
	return &AddNoteUseCase{complaintRepo: complaintRepo, logger: log}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) error {
	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}
	if cmd.Content == "" {
		return errors.NewValidationError("note content is required")
	}

	// Verify the complaint exists before appending to its log.
	if _, err := uc.complaintRepo.FindByID(ctx, cmd.ComplaintID); err != nil {
		return err
	}

	note := complaint.Note{
		Author:    cmd.Author,
		Content:   cmd.Content,
		CreatedAt: time.Now(),
	}
	if err := uc.complaintRepo.AddNote(ctx, cmd.ComplaintID, note); err != nil {
		uc.logger.Errorw("failed to add note", "complaint_id", cmd.ComplaintID, "error", err)
		return err
	}

	return nil
}
