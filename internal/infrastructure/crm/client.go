// Package crm implements the contract-status source against the external
// system of record's HTTP API. The resolver depends only on the abstract
// StatusSource port, so this client can be replaced by any other transport
// without touching the pipeline.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/contract"
	sharedConfig "github.com/Belkouche/jarvis-sub000/internal/shared/config"
)

// Client fetches contract status records over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg *sharedConfig.CRMConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
	}
}

type statusResponse struct {
	ContractID      string `json:"contract_id"`
	Etat            string `json:"etat"`
	SousEtat        string `json:"sous_etat"`
	SousEtat2       string `json:"sous_etat_2"`
	AppointmentDate string `json:"appointment_date"`
	Technician      string `json:"technician"`
	Seller          string `json:"seller"`
}

// FetchStatus resolves one contract number. It maps the upstream failure
// modes onto the resolver's error taxonomy: 404 is the definitive not-found
// signal, 401/403 an auth failure, anything else an upstream error.
func (c *Client) FetchStatus(ctx context.Context, contractNumber string) (*contract.Status, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("crm base URL not configured: %w", contract.ErrUpstream)
	}

	url := fmt.Sprintf("%s/contracts/%s/status", c.baseURL, contractNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build crm request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("contract %s: %w", contractNumber, contract.ErrNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("crm rejected credentials: %w", contract.ErrAuthFailed)
	default:
		return nil, fmt.Errorf("crm returned %d: %w", resp.StatusCode, contract.ErrUpstream)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read crm response: %w", err)
	}

	var parsed statusResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid crm response: %w", err)
	}

	status := &contract.Status{
		ContractID: parsed.ContractID,
		Etat:       parsed.Etat,
		SousEtat:   parsed.SousEtat,
		SousEtat2:  parsed.SousEtat2,
		Technician: parsed.Technician,
		Seller:     parsed.Seller,
		CreatedAt:  time.Now(),
	}
	if parsed.ContractID == "" {
		status.ContractID = contractNumber
	}
	if parsed.AppointmentDate != "" {
		if t, err := time.Parse("2006-01-02", parsed.AppointmentDate); err == nil {
			status.AppointmentDate = &t
		}
	}

	return status, nil
}
