// Package webhook exposes the inbound message entrypoint of the pipeline.
package webhook

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	appmessage "github.com/Belkouche/jarvis-sub000/internal/application/message"
	"github.com/Belkouche/jarvis-sub000/internal/domain/message"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/utils"
)

// ProcessMessageExecutor runs the full pipeline for one inbound message.
type ProcessMessageExecutor interface {
	Execute(ctx context.Context, cmd appmessage.ProcessMessageCommand) (*message.Outcome, error)
}

type WebhookHandler struct {
	processUC   ProcessMessageExecutor
	outcomeRepo message.OutcomeRepository
	logger      logger.Interface
}

func NewWebhookHandler(processUC ProcessMessageExecutor, outcomeRepo message.OutcomeRepository, log logger.Interface) *WebhookHandler {
	return &WebhookHandler{
		processUC:   processUC,
		outcomeRepo: outcomeRepo,
		logger:      log,
	}
}

// ProcessMessage handles POST /webhook/messages
func (h *WebhookHandler) ProcessMessage(c *gin.Context) {
	var req InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid inbound message payload", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	outcome, err := h.processUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toOutcomeResponse(outcome))
}

// ListOutcomes handles GET /webhook/outcomes
func (h *WebhookHandler) ListOutcomes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := message.OutcomeFilter{
		Phone:    c.Query("phone"),
		Branch:   c.Query("branch"),
		Page:     page,
		PageSize: pageSize,
	}

	outcomes, total, err := h.outcomeRepo.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]OutcomeResponse, 0, len(outcomes))
	for _, o := range outcomes {
		items = append(items, toOutcomeResponse(o))
	}

	utils.OKResponse(c, utils.NewListResponse(items, total, page, pageSize))
}
