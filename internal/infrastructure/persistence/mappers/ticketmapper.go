package mappers

import (
	"fmt"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/ticket"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/ticket/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		ComplaintID:    t.ComplaintID(),
		OrangeTicketID: t.OrangeTicketID(),
		Status:         t.Status().String(),
		Description:    t.Description(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
		UpdatedAt:      t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in record %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.ComplaintID,
		model.OrangeTicketID,
		status,
		model.Description,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
