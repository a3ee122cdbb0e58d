package mappers

import (
	"fmt"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel, notes []models.ComplaintNoteModel) (*complaint.Complaint, error)
	NoteToModel(complaintID uint, note complaint.Note) *models.ComplaintNoteModel
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:                c.ID(),
		Phone:             c.Phone(),
		ContractNumber:    c.ContractNumber(),
		Category:          c.Category().String(),
		Description:       c.Description(),
		Priority:          c.Priority().String(),
		Status:            c.Status().String(),
		AssignedTo:        c.AssignedTo(),
		EscalatedToOrange: c.EscalatedToOrange(),
		OrangeTicketID:    c.OrangeTicketID(),
		CreatedAt:         c.CreatedAt().UnixMilli(),
		UpdatedAt:         c.UpdatedAt().UnixMilli(),
	}
}

// ToDomain reconstructs the entity together with its note history. Notes
// are loaded separately by the repository in a single query.
func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel, notes []models.ComplaintNoteModel) (*complaint.Complaint, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category in record %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in record %d: %w", model.ID, err)
	}
	status, err := vo.NewComplaintStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in record %d: %w", model.ID, err)
	}

	domainNotes := make([]complaint.Note, 0, len(notes))
	for _, n := range notes {
		domainNotes = append(domainNotes, complaint.Note{
			Author:    n.Author,
			Content:   n.Content,
			CreatedAt: time.UnixMilli(n.CreatedAt),
		})
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.Phone,
		model.ContractNumber,
		category,
		model.Description,
		priority,
		status,
		model.AssignedTo,
		model.EscalatedToOrange,
		model.OrangeTicketID,
		domainNotes,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *ComplaintMapperImpl) NoteToModel(complaintID uint, note complaint.Note) *models.ComplaintNoteModel {
	return &models.ComplaintNoteModel{
		ComplaintID: complaintID,
		Author:      note.Author,
		Content:     note.Content,
		CreatedAt:   note.CreatedAt.UnixMilli(),
	}
}
