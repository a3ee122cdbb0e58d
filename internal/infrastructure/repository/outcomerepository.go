package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Belkouche/jarvis-sub000/internal/domain/message"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
	db "github.com/Belkouche/jarvis-sub000/internal/shared/db"
)

type OutcomeRepository struct {
	db     *gorm.DB
	mapper *mappers.OutcomeMapper
}

func NewOutcomeRepository(gdb *gorm.DB) *OutcomeRepository {
	return &OutcomeRepository{
		db:     gdb,
		mapper: mappers.NewOutcomeMapper(),
	}
}

func (r *OutcomeRepository) Save(ctx context.Context, o *message.Outcome) error {
	model := r.mapper.ToModel(o)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message outcome: %w", err)
	}

	o.ID = model.ID
	return nil
}

func (r *OutcomeRepository) List(ctx context.Context, filter message.OutcomeFilter) ([]*message.Outcome, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.OutcomeModel{})

	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.Branch != "" {
		query = query.Where("branch = ?", filter.Branch)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count message outcomes: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var records []models.OutcomeModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list message outcomes: %w", err)
	}

	outcomes := make([]*message.Outcome, 0, len(records))
	for i := range records {
		outcomes = append(outcomes, r.mapper.ToDomain(&records[i]))
	}

	return outcomes, total, nil
}
