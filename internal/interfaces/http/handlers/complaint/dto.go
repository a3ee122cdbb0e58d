package complaint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Belkouche/jarvis-sub000/internal/application/complaint/usecases"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
)

type CreateComplaintRequest struct {
	Phone          string `json:"phone" binding:"required,max=30"`
	ContractNumber string `json:"contract_number,omitempty" binding:"omitempty,contract_number"`
	Category       string `json:"category" binding:"required"`
	Description    string `json:"description" binding:"required,max=5000"`
	Priority       string `json:"priority" binding:"required"`
}

func (r *CreateComplaintRequest) ToCommand() usecases.CreateComplaintCommand {
	return usecases.CreateComplaintCommand{
		Phone:          r.Phone,
		ContractNumber: r.ContractNumber,
		Category:       r.Category,
		Description:    r.Description,
		Priority:       r.Priority,
	}
}

type AssignComplaintRequest struct {
	Agent string `json:"agent" binding:"required,max=100"`
}

type ResolveComplaintRequest struct {
	ResolvedBy string `json:"resolved_by" binding:"required,max=100"`
	Resolution string `json:"resolution,omitempty" binding:"omitempty,max=5000"`
}

type AddNoteRequest struct {
	Author  string `json:"author" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=5000"`
}

func parseComplaintID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid complaint ID")
	}
	return uint(id), nil
}

func parseListComplaintsQuery(c *gin.Context) usecases.ListComplaintsQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	return usecases.ListComplaintsQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Phone:    c.Query("phone"),
		Page:     page,
		PageSize: pageSize,
	}
}
