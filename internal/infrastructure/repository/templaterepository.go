package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Belkouche/jarvis-sub000/internal/domain/template"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
	db "github.com/Belkouche/jarvis-sub000/internal/shared/db"
	apperrors "github.com/Belkouche/jarvis-sub000/internal/shared/errors"
)

type TemplateRepository struct {
	db     *gorm.DB
	mapper *mappers.TemplateMapper
}

func NewTemplateRepository(gdb *gorm.DB) *TemplateRepository {
	return &TemplateRepository{
		db:     gdb,
		mapper: mappers.NewTemplateMapper(),
	}
}

// FindByKey matches the exact key only; specificity descent is the
// renderer's job, one lookup per fallback level.
func (r *TemplateRepository) FindByKey(ctx context.Context, key template.Key) (*template.ResponseTemplate, error) {
	var model models.ResponseTemplateModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("etat = ? AND sous_etat = ? AND sous_etat2 = ?", key.Etat, key.SousEtat, key.SousEtat2).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, template.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find response template: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *TemplateRepository) Save(ctx context.Context, t *template.ResponseTemplate) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save response template: %w", err)
	}

	t.ID = model.ID
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.ResponseTemplate) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ResponseTemplateModel{}).
		Where("id = ?", model.ID).
		Select("Etat", "SousEtat", "SousEtat2", "BodyFR", "BodyAR", "AllowComplaint").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update response template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("response template not found")
	}

	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ResponseTemplateModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete response template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("response template not found")
	}

	return nil
}

func (r *TemplateRepository) List(ctx context.Context, page, pageSize int) ([]*template.ResponseTemplate, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ResponseTemplateModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count response templates: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var records []models.ResponseTemplateModel
	if err := tx.
		Order("etat ASC, sous_etat ASC, sous_etat2 ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list response templates: %w", err)
	}

	templates := make([]*template.ResponseTemplate, 0, len(records))
	for i := range records {
		templates = append(templates, r.mapper.ToDomain(&records[i]))
	}

	return templates, total, nil
}
