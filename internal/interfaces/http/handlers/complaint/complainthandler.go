// Package complaint exposes the support-agent complaint management API.
package complaint

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Belkouche/jarvis-sub000/internal/application/complaint/usecases"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/utils"
)

type CreateComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateComplaintCommand) (*usecases.CreateComplaintResult, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.AssignComplaintCommand) error
}

type ResolveComplaintExecutor interface {
	Execute(ctx context.Context, cmd usecases.ResolveComplaintCommand) error
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd usecases.AddNoteCommand) error
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, complaintID uint) (*usecases.ComplaintDetail, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query usecases.ListComplaintsQuery) (*usecases.ListComplaintsResult, error)
}

type ComplaintHandler struct {
	createUC  CreateComplaintExecutor
	assignUC  AssignComplaintExecutor
	resolveUC ResolveComplaintExecutor
	addNoteUC AddNoteExecutor
	getUC     GetComplaintExecutor
	listUC    ListComplaintsExecutor
	logger    logger.Interface
}

func NewComplaintHandler(
	createUC CreateComplaintExecutor,
	assignUC AssignComplaintExecutor,
	resolveUC ResolveComplaintExecutor,
	addNoteUC AddNoteExecutor,
	getUC GetComplaintExecutor,
	listUC ListComplaintsExecutor,
	log logger.Interface,
) *ComplaintHandler {
	return &ComplaintHandler{
		createUC:  createUC,
		assignUC:  assignUC,
		resolveUC: resolveUC,
		addNoteUC: addNoteUC,
		getUC:     getUC,
		listUC:    listUC,
		logger:    log,
	}
}

// CreateComplaint handles POST /complaints
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create complaint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint created successfully")
}

// GetComplaint handles GET /complaints/:id
func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), complaintID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListComplaints handles GET /complaints
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	query := parseListComplaintsQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, utils.NewListResponse(result.Complaints, result.Total, query.Page, query.PageSize))
}

// AssignComplaint handles POST /complaints/:id/assign
func (h *ComplaintHandler) AssignComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignComplaintCommand{ComplaintID: complaintID, Agent: req.Agent}
	if err := h.assignUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Complaint assigned successfully")
}

// ResolveComplaint handles POST /complaints/:id/resolve
func (h *ComplaintHandler) ResolveComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResolveComplaintCommand{
		ComplaintID: complaintID,
		ResolvedBy:  req.ResolvedBy,
		Resolution:  req.Resolution,
	}
	if err := h.resolveUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Complaint resolved successfully")
}

// AddNote handles POST /complaints/:id/notes
func (h *ComplaintHandler) AddNote(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddNoteCommand{
		ComplaintID: complaintID,
		Author:      req.Author,
		Content:     req.Content,
	}
	if err := h.addNoteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Note added successfully")
}
