// Package ticket exposes the read and status-update API for escalation
// tickets. Tickets are created by the escalation sweep only, never over HTTP.
package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Belkouche/jarvis-sub000/internal/domain/ticket"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/ticket/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/utils"
)

type TicketHandler struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewTicketHandler(ticketRepo ticket.Repository, log logger.Interface) *TicketHandler {
	return &TicketHandler{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

type TicketResponse struct {
	ID             uint      `json:"id"`
	ComplaintID    uint      `json:"complaint_id"`
	OrangeTicketID string    `json:"orange_ticket_id,omitempty"`
	Status         string    `json:"status"`
	Description    string    `json:"description"`
	IsLocal        bool      `json:"is_local"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toTicketResponse(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID(),
		ComplaintID:    t.ComplaintID(),
		OrangeTicketID: t.OrangeTicketID(),
		Status:         t.Status().String(),
		Description:    t.Description(),
		IsLocal:        t.IsLocal(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	tickets, total, err := h.ticketRepo.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, toTicketResponse(t))
	}

	utils.OKResponse(c, utils.NewListResponse(items, total, page, pageSize))
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t, err := h.ticketRepo.FindByID(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toTicketResponse(t))
}

// UpdateTicketStatus handles PUT /tickets/:id/status
func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	status, err := vo.NewTicketStatus(req.Status)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	t, err := h.ticketRepo.FindByID(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := t.ChangeStatus(status); err != nil {
		utils.ErrorResponseWithError(c, errors.NewConflictError(err.Error()))
		return
	}
	if err := h.ticketRepo.Update(c.Request.Context(), t); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("ticket status updated", "ticket_id", ticketID, "status", status)
	utils.OKResponse(c, toTicketResponse(t))
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
