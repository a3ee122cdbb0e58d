// Package message implements the per-message orchestrator: one end-to-end
// decision tree from raw inbound text to a persisted bilingual outcome.
package message

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/application/response"
	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	domaincontract "github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	"github.com/Belkouche/jarvis-sub000/internal/domain/message"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

type ProcessMessageCommand struct {
	Phone string
	Text  string
}

// ProcessMessageUseCase sequences extraction, resolution, templating and
// complaint detection into one outcome per inbound message. It never leaves
// a message unanswered: every branch maps to a fixed bilingual reply.
type ProcessMessageUseCase struct {
	extractor     IntentExtractor
	resolver      StatusResolver
	renderer      ResponseRenderer
	detector      ComplaintDetector
	complaintRepo complaint.Repository
	outcomeRepo   message.OutcomeRepository
	logger        logger.Interface
	metrics       metrics.Sink
}

func NewProcessMessageUseCase(
	extractor IntentExtractor,
	resolver StatusResolver,
	renderer ResponseRenderer,
	detector ComplaintDetector,
	complaintRepo complaint.Repository,
	outcomeRepo message.OutcomeRepository,
	log logger.Interface,
	sink metrics.Sink,
) *ProcessMessageUseCase {
	if sink == nil {
		sink = metrics.NewNoop()
	}
	return &ProcessMessageUseCase{
		extractor:     extractor,
		resolver:      resolver,
		renderer:      renderer,
		detector:      detector,
		complaintRepo: complaintRepo,
		outcomeRepo:   outcomeRepo,
		logger:        log,
		metrics:       sink,
	}
}

func (uc *ProcessMessageUseCase) Execute(ctx context.Context, cmd ProcessMessageCommand) (*message.Outcome, error) {
	inbound := message.NewInboundMessage(cmd.Phone, cmd.Text)

	extractStart := time.Now()
	result := uc.extractor.Extract(ctx, inbound.Text)
	extractionMS := time.Since(extractStart).Milliseconds()

	outcome := &message.Outcome{
		Phone:          inbound.Phone,
		Text:           inbound.Text,
		Language:       result.Language.String(),
		Intent:         result.Intent.String(),
		ContractNumber: result.ContractNumber,
		UsedFallback:   result.UsedFallback,
		ExtractionMS:   extractionMS,
		CreatedAt:      inbound.ReceivedAt,
	}

	uc.decide(ctx, result, outcome)
	uc.handleComplaint(ctx, inbound, result, outcome)
	uc.persist(ctx, outcome)

	return outcome, nil
}

// decide walks the decision tree in order, short-circuiting at the first
// applicable branch.
func (uc *ProcessMessageUseCase) decide(ctx context.Context, result *analysis.Result, outcome *message.Outcome) {
	switch {
	case result.IsSpam:
		uc.fill(outcome, message.BranchSpam, response.SpamCopy)
		return
	case result.Intent == analysis.IntentOther && result.ContractNumber == "":
		uc.fill(outcome, message.BranchWelcome, response.WelcomeCopy)
		return
	case result.ContractNumber == "" || !result.IsValidFormat:
		uc.fill(outcome, message.BranchInvalidFormat, response.InvalidFormatCopy)
		return
	}

	resolveStart := time.Now()
	resolution, err := uc.resolver.Resolve(ctx, result.ContractNumber)
	outcome.ResolverMS = time.Since(resolveStart).Milliseconds()

	if err != nil {
		outcome.ErrorCode = domaincontract.ErrorCode(err)
		if errors.Is(err, domaincontract.ErrNotFound) {
			uc.fill(outcome, message.BranchNotFound, response.NotFoundCopy)
		} else {
			uc.logger.Errorw("contract resolution failed",
				"contract", result.ContractNumber, "code", outcome.ErrorCode, "error", err)
			uc.fill(outcome, message.BranchServiceError, response.ServiceUnavailableCopy)
		}
		outcome.ResponseFR = substituteContract(outcome.ResponseFR, result.ContractNumber)
		outcome.ResponseAR = substituteContract(outcome.ResponseAR, result.ContractNumber)
		return
	}

	outcome.FromCache = resolution.FromCache
	rendered := uc.renderer.Render(ctx, resolution.Status, result.ContractNumber)
	outcome.Branch = message.BranchStatus
	outcome.ResponseFR = rendered.Body.FR
	outcome.ResponseAR = rendered.Body.AR
}

// handleComplaint runs the complaint path, decoupled from the reply branch:
// a complaint-intent message files a complaint even when the status lookup
// answered something else.
func (uc *ProcessMessageUseCase) handleComplaint(
	ctx context.Context,
	inbound message.InboundMessage,
	result *analysis.Result,
	outcome *message.Outcome,
) {
	if result.IsSpam || result.Intent != analysis.IntentComplaint {
		return
	}

	detection := uc.detector.Detect(inbound.Text, result.Language)
	if !detection.IsComplaint {
		return
	}

	newComplaint, err := complaint.NewComplaint(
		inbound.Phone,
		result.ContractNumber,
		detection.Category,
		inbound.Text,
		detection.Priority,
	)
	if err != nil {
		uc.logger.Errorw("failed to build complaint", "phone", inbound.Phone, "error", err)
		return
	}

	if err := uc.complaintRepo.Save(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "phone", inbound.Phone, "error", err)
		return
	}

	uc.metrics.Inc(metrics.ComplaintCreated)
	outcome.IsComplaint = true
	outcome.ComplaintID = newComplaint.ID()

	ref := fmt.Sprintf("%d", newComplaint.ID())
	outcome.ResponseFR += "\n\n" + strings.ReplaceAll(response.ComplaintAcknowledgedCopy.FR, "{complaint}", ref)
	outcome.ResponseAR += "\n\n" + strings.ReplaceAll(response.ComplaintAcknowledgedCopy.AR, "{complaint}", ref)

	uc.logger.Infow("complaint filed from inbound message",
		"complaint_id", newComplaint.ID(),
		"category", detection.Category,
		"priority", detection.Priority)
}

func (uc *ProcessMessageUseCase) persist(ctx context.Context, outcome *message.Outcome) {
	if err := uc.outcomeRepo.Save(ctx, outcome); err != nil {
		// The reply still goes out; losing the audit record is logged, not fatal.
		uc.logger.Errorw("failed to persist message outcome", "phone", outcome.Phone, "error", err)
	}
}

func (uc *ProcessMessageUseCase) fill(outcome *message.Outcome, branch message.Branch, body response.Bilingual) {
	outcome.Branch = branch
	outcome.ResponseFR = body.FR
	outcome.ResponseAR = body.AR
}

func substituteContract(body, contractNumber string) string {
	return strings.ReplaceAll(body, "{contract}", contractNumber)
}
