// Package nlu turns raw message text into a structured analysis result,
// calling the remote model first and degrading to a local heuristic
// extractor on any failure.
package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

// Client is the remote NLU endpoint port. It returns the raw model text,
// which is expected to contain one JSON object.
type Client interface {
	Analyze(ctx context.Context, text string) (string, error)
}

// Extractor runs the model-with-fallback extraction stage. It never returns
// an error: every failure mode converges to the heuristic fallback result.
type Extractor struct {
	client  Client
	timeout time.Duration
	logger  logger.Interface
	metrics metrics.Sink
}

func NewExtractor(client Client, timeout time.Duration, log logger.Interface, sink metrics.Sink) *Extractor {
	if sink == nil {
		sink = metrics.NewNoop()
	}
	return &Extractor{
		client:  client,
		timeout: timeout,
		logger:  log,
		metrics: sink,
	}
}

// Extract analyzes one message. The returned result carries
// UsedFallback=true whenever the model path failed for any reason.
func (e *Extractor) Extract(ctx context.Context, text string) *analysis.Result {
	result, err := e.extractWithModel(ctx, text)
	if err != nil {
		e.logger.Warnw("model extraction failed, using heuristic fallback", "error", err)
		e.metrics.Inc(metrics.NLUFallback)
		return ExtractWithHeuristics(text)
	}

	e.metrics.Inc(metrics.NLUSuccess)
	return result
}

func (e *Extractor) extractWithModel(ctx context.Context, text string) (*analysis.Result, error) {
	if e.client == nil {
		return nil, fmt.Errorf("nlu client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.client.Analyze(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("nlu call failed: %w", err)
	}

	payload, err := firstJSONObject(raw)
	if err != nil {
		return nil, err
	}

	fields, err := validateSchema(payload)
	if err != nil {
		return nil, err
	}

	return normalize(fields), nil
}

// modelFields mirrors the schema of the model's JSON object. Every field is
// optional but must carry the right type when present.
type modelFields struct {
	Language       *string  `json:"language"`
	Intent         *string  `json:"intent"`
	ContractNumber *string  `json:"contract_number"`
	IsValidFormat  *bool    `json:"is_valid_format"`
	IsSpam         *bool    `json:"is_spam"`
	Confidence     *float64 `json:"confidence"`
}

// validateSchema parses the model payload and rejects type mismatches.
// A schema violation is a processing error, not a low-confidence signal.
func validateSchema(payload string) (*modelFields, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &probe); err != nil {
		return nil, fmt.Errorf("model output is not a JSON object: %w", err)
	}

	var fields modelFields
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return nil, fmt.Errorf("model output failed schema validation: %w", err)
	}

	if fields.Confidence != nil && (*fields.Confidence < 0 || *fields.Confidence > 1) {
		return nil, fmt.Errorf("model confidence %.3f outside [0,1]", *fields.Confidence)
	}

	return &fields, nil
}

func normalize(fields *modelFields) *analysis.Result {
	result := &analysis.Result{
		Language:   analysis.LangFrench,
		Intent:     analysis.IntentOther,
		Confidence: 0.9,
	}

	if fields.Language != nil {
		result.Language = analysis.ParseLanguage(*fields.Language)
	}
	if fields.Intent != nil {
		result.Intent = analysis.ParseIntent(*fields.Intent)
	}
	if fields.ContractNumber != nil {
		result.ContractNumber = analysis.NormalizeContractNumber(*fields.ContractNumber)
		result.IsValidFormat = result.ContractNumber != ""
	}
	if fields.IsValidFormat != nil && result.ContractNumber != "" {
		// Model opinion on format never overrides the regex check when the
		// normalized number already validated.
		result.IsValidFormat = true
	}
	if fields.IsSpam != nil {
		result.IsSpam = *fields.IsSpam
	}
	if fields.Confidence != nil {
		result.Confidence = *fields.Confidence
	}

	return result
}
