package message

import (
	"context"

	appcomplaint "github.com/Belkouche/jarvis-sub000/internal/application/complaint"
	"github.com/Belkouche/jarvis-sub000/internal/application/response"
	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	"github.com/Belkouche/jarvis-sub000/internal/domain/contract"
)

// IntentExtractor is the NLU-with-fallback stage. It never fails.
type IntentExtractor interface {
	Extract(ctx context.Context, text string) *analysis.Result
}

// StatusResolver is the cache-aside contract lookup stage.
type StatusResolver interface {
	Resolve(ctx context.Context, contractNumber string) (*contract.Resolution, error)
}

// ResponseRenderer maps a status record to the bilingual reply.
type ResponseRenderer interface {
	Render(ctx context.Context, status *contract.Status, contractNumber string) response.Rendered
}

// ComplaintDetector classifies complaint text.
type ComplaintDetector interface {
	Detect(text string, lang analysis.Language) appcomplaint.Detection
}
