package webhook

import (
	"time"

	appmessage "github.com/Belkouche/jarvis-sub000/internal/application/message"
	"github.com/Belkouche/jarvis-sub000/internal/domain/message"
)

type InboundMessageRequest struct {
	Phone string `json:"phone" binding:"required,max=30"`
	Text  string `json:"text" binding:"required,max=10000"`
}

func (r *InboundMessageRequest) ToCommand() appmessage.ProcessMessageCommand {
	return appmessage.ProcessMessageCommand{
		Phone: r.Phone,
		Text:  r.Text,
	}
}

// OutcomeResponse is the wire shape of one processed message.
type OutcomeResponse struct {
	ID             uint      `json:"id,omitempty"`
	Phone          string    `json:"phone"`
	Branch         string    `json:"branch"`
	Language       string    `json:"language"`
	Intent         string    `json:"intent"`
	ContractNumber string    `json:"contract_number,omitempty"`
	ResponseFR     string    `json:"response_fr"`
	ResponseAR     string    `json:"response_ar"`
	UsedFallback   bool      `json:"used_fallback"`
	FromCache      bool      `json:"from_cache"`
	IsComplaint    bool      `json:"is_complaint"`
	ComplaintID    uint      `json:"complaint_id,omitempty"`
	ErrorCode      string    `json:"error_code,omitempty"`
	ExtractionMS   int64     `json:"extraction_ms"`
	ResolverMS     int64     `json:"resolver_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

func toOutcomeResponse(o *message.Outcome) OutcomeResponse {
	return OutcomeResponse{
		ID:             o.ID,
		Phone:          o.Phone,
		Branch:         string(o.Branch),
		Language:       o.Language,
		Intent:         o.Intent,
		ContractNumber: o.ContractNumber,
		ResponseFR:     o.ResponseFR,
		ResponseAR:     o.ResponseAR,
		UsedFallback:   o.UsedFallback,
		FromCache:      o.FromCache,
		IsComplaint:    o.IsComplaint,
		ComplaintID:    o.ComplaintID,
		ErrorCode:      o.ErrorCode,
		ExtractionMS:   o.ExtractionMS,
		ResolverMS:     o.ResolverMS,
		CreatedAt:      o.CreatedAt,
	}
}
