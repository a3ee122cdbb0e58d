package mappers

import (
	"github.com/Belkouche/jarvis-sub000/internal/domain/template"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
)

// TemplateMapper converts between ResponseTemplate and its persistence model.
// Templates carry no value objects, so the conversion is purely structural.
type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToModel(t *template.ResponseTemplate) *models.ResponseTemplateModel {
	return &models.ResponseTemplateModel{
		ID:             t.ID,
		Etat:           t.Etat,
		SousEtat:       t.SousEtat,
		SousEtat2:      t.SousEtat2,
		BodyFR:         t.BodyFR,
		BodyAR:         t.BodyAR,
		AllowComplaint: t.AllowComplaint,
	}
}

func (m *TemplateMapper) ToDomain(model *models.ResponseTemplateModel) *template.ResponseTemplate {
	return &template.ResponseTemplate{
		ID:             model.ID,
		Etat:           model.Etat,
		SousEtat:       model.SousEtat,
		SousEtat2:      model.SousEtat2,
		BodyFR:         model.BodyFR,
		BodyAR:         model.BodyAR,
		AllowComplaint: model.AllowComplaint,
	}
}
