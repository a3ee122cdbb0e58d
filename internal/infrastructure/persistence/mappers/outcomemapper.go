package mappers

import (
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/message"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
)

// OutcomeMapper converts between message outcomes and persistence models.
type OutcomeMapper struct{}

func NewOutcomeMapper() *OutcomeMapper {
	return &OutcomeMapper{}
}

func (m *OutcomeMapper) ToModel(o *message.Outcome) *models.OutcomeModel {
	model := &models.OutcomeModel{
		ID:             o.ID,
		Phone:          o.Phone,
		Text:           o.Text,
		Branch:         string(o.Branch),
		Language:       o.Language,
		Intent:         o.Intent,
		ContractNumber: o.ContractNumber,
		ResponseFR:     o.ResponseFR,
		ResponseAR:     o.ResponseAR,
		UsedFallback:   o.UsedFallback,
		FromCache:      o.FromCache,
		IsComplaint:    o.IsComplaint,
		ErrorCode:      o.ErrorCode,
		ExtractionMS:   o.ExtractionMS,
		ResolverMS:     o.ResolverMS,
	}
	if o.ComplaintID != 0 {
		id := o.ComplaintID
		model.ComplaintID = &id
	}
	return model
}

func (m *OutcomeMapper) ToDomain(model *models.OutcomeModel) *message.Outcome {
	o := &message.Outcome{
		ID:             model.ID,
		Phone:          model.Phone,
		Text:           model.Text,
		Branch:         message.Branch(model.Branch),
		Language:       model.Language,
		Intent:         model.Intent,
		ContractNumber: model.ContractNumber,
		ResponseFR:     model.ResponseFR,
		ResponseAR:     model.ResponseAR,
		UsedFallback:   model.UsedFallback,
		FromCache:      model.FromCache,
		IsComplaint:    model.IsComplaint,
		ErrorCode:      model.ErrorCode,
		ExtractionMS:   model.ExtractionMS,
		ResolverMS:     model.ResolverMS,
		CreatedAt:      time.UnixMilli(model.CreatedAt),
	}
	if model.ComplaintID != nil {
		o.ComplaintID = *model.ComplaintID
	}
	return o
}
