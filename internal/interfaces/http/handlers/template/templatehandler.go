// Package template exposes CRUD for operator-managed response templates.
// Persisted templates override the compiled-in defaults at their
// specificity level.
package template

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Belkouche/jarvis-sub000/internal/domain/template"
	"github.com/Belkouche/jarvis-sub000/internal/shared/errors"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/utils"
)

type TemplateHandler struct {
	templateRepo template.Repository
	logger       logger.Interface
}

func NewTemplateHandler(templateRepo template.Repository, log logger.Interface) *TemplateHandler {
	return &TemplateHandler{
		templateRepo: templateRepo,
		logger:       log,
	}
}

type TemplateRequest struct {
	Etat           string `json:"etat" binding:"required,max=50"`
	SousEtat       string `json:"sous_etat,omitempty" binding:"omitempty,max=50"`
	SousEtat2      string `json:"sous_etat_2,omitempty" binding:"omitempty,max=50"`
	BodyFR         string `json:"body_fr" binding:"required,max=5000"`
	BodyAR         string `json:"body_ar" binding:"required,max=5000"`
	AllowComplaint bool   `json:"allow_complaint"`
}

type TemplateResponse struct {
	ID             uint   `json:"id"`
	Etat           string `json:"etat"`
	SousEtat       string `json:"sous_etat,omitempty"`
	SousEtat2      string `json:"sous_etat_2,omitempty"`
	BodyFR         string `json:"body_fr"`
	BodyAR         string `json:"body_ar"`
	AllowComplaint bool   `json:"allow_complaint"`
}

func toTemplateResponse(t *template.ResponseTemplate) TemplateResponse {
	return TemplateResponse{
		ID:             t.ID,
		Etat:           t.Etat,
		SousEtat:       t.SousEtat,
		SousEtat2:      t.SousEtat2,
		BodyFR:         t.BodyFR,
		BodyAR:         t.BodyAR,
		AllowComplaint: t.AllowComplaint,
	}
}

// A sub-status without its parent level makes the key unreachable by the
// fallback descent, so reject it early.
func (r *TemplateRequest) validateKey() error {
	if r.SousEtat2 != "" && r.SousEtat == "" {
		return errors.NewValidationError("sous_etat_2 requires sous_etat")
	}
	return nil
}

// CreateTemplate handles POST /templates
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := req.validateKey(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t := &template.ResponseTemplate{
		Etat:           req.Etat,
		SousEtat:       req.SousEtat,
		SousEtat2:      req.SousEtat2,
		BodyFR:         req.BodyFR,
		BodyAR:         req.BodyAR,
		AllowComplaint: req.AllowComplaint,
	}
	if err := h.templateRepo.Save(c.Request.Context(), t); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("response template created", "id", t.ID, "etat", t.Etat)
	utils.CreatedResponse(c, toTemplateResponse(t), "Template created successfully")
}

// UpdateTemplate handles PUT /templates/:id
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, err := parseTemplateID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := req.validateKey(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	t := &template.ResponseTemplate{
		ID:             templateID,
		Etat:           req.Etat,
		SousEtat:       req.SousEtat,
		SousEtat2:      req.SousEtat2,
		BodyFR:         req.BodyFR,
		BodyAR:         req.BodyAR,
		AllowComplaint: req.AllowComplaint,
	}
	if err := h.templateRepo.Update(c.Request.Context(), t); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toTemplateResponse(t))
}

// DeleteTemplate handles DELETE /templates/:id
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	templateID, err := parseTemplateID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.templateRepo.Delete(c.Request.Context(), templateID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Template deleted successfully")
}

// ListTemplates handles GET /templates
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	templates, total, err := h.templateRepo.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		items = append(items, toTemplateResponse(t))
	}

	utils.OKResponse(c, utils.NewListResponse(items, total, page, pageSize))
}

func parseTemplateID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid template ID")
	}
	return uint(id), nil
}
