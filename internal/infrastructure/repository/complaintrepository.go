package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
	db "github.com/Belkouche/jarvis-sub000/internal/shared/db"
	apperrors "github.com/Belkouche/jarvis-sub000/internal/shared/errors"
)

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(gdb *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     gdb,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	for _, note := range c.Notes() {
		if err := tx.Create(r.mapper.NoteToModel(model.ID, note)).Error; err != nil {
			return fmt.Errorf("failed to save complaint note: %w", err)
		}
	}

	return nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ?", model.ID).
		Select("Category", "Description", "Priority", "Status", "AssignedTo",
			"EscalatedToOrange", "OrangeTicketID", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}

	// Notes are append-only: persist only the ones not yet stored.
	var stored int64
	if err := tx.Model(&models.ComplaintNoteModel{}).
		Where("complaint_id = ?", model.ID).
		Count(&stored).Error; err != nil {
		return fmt.Errorf("failed to count complaint notes: %w", err)
	}
	notes := c.Notes()
	for i := int(stored); i < len(notes); i++ {
		if err := tx.Create(r.mapper.NoteToModel(model.ID, notes[i])).Error; err != nil {
			return fmt.Errorf("failed to save complaint note: %w", err)
		}
	}

	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	notes, err := r.loadNotes(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return r.mapper.ToDomain(&model, notes)
}

func (r *ComplaintRepository) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var records []models.ComplaintModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, 0, len(records))
	for i := range records {
		// Listings skip the note history; FindByID loads it on demand.
		c, err := r.mapper.ToDomain(&records[i], nil)
		if err != nil {
			return nil, 0, err
		}
		complaints = append(complaints, c)
	}

	return complaints, total, nil
}

func (r *ComplaintRepository) FindSweepable(ctx context.Context) ([]*complaint.Complaint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var records []models.ComplaintModel
	if err := tx.
		Where("status IN ?", []string{vo.StatusOpen.String(), vo.StatusAssigned.String()}).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load sweepable complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, 0, len(records))
	for i := range records {
		c, err := r.mapper.ToDomain(&records[i], nil)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}

	return complaints, nil
}

func (r *ComplaintRepository) AddNote(ctx context.Context, complaintID uint, note complaint.Note) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.NoteToModel(complaintID, note)).Error; err != nil {
		return fmt.Errorf("failed to add complaint note: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) loadNotes(ctx context.Context, complaintID uint) ([]models.ComplaintNoteModel, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var notes []models.ComplaintNoteModel
	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("failed to load complaint notes: %w", err)
	}
	return notes, nil
}

// ReminderLogRepository implements the reminder dedup log on its own table.
// The unique index on (complaint_id, threshold_hours) makes MarkSent safe to
// call twice for the same threshold.
type ReminderLogRepository struct {
	db *gorm.DB
}

func NewReminderLogRepository(gdb *gorm.DB) *ReminderLogRepository {
	return &ReminderLogRepository{db: gdb}
}

func (r *ReminderLogRepository) WasSent(ctx context.Context, complaintID uint, thresholdHours int) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ComplaintReminderModel{}).
		Where("complaint_id = ? AND threshold_hours = ?", complaintID, thresholdHours).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check reminder log: %w", err)
	}
	return count > 0, nil
}

func (r *ReminderLogRepository) MarkSent(ctx context.Context, complaintID uint, thresholdHours int) error {
	tx := db.GetTxFromContext(ctx, r.db)

	record := models.ComplaintReminderModel{
		ComplaintID:    complaintID,
		ThresholdHours: thresholdHours,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}
