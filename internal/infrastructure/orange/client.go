// Package orange implements the external ticketing provider client.
package orange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Belkouche/jarvis-sub000/internal/application/escalation"
	"github.com/Belkouche/jarvis-sub000/internal/domain/ticket"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
)

// Client creates tickets in the Orange ticketing system over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logger.Interface
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Interface) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type createTicketRequest struct {
	Contract    string `json:"contract_number,omitempty"`
	Phone       string `json:"customer_phone"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

type createTicketResponse struct {
	TicketID string `json:"ticket_id"`
}

// CreateTicket opens a ticket with the provider and returns its identifier.
func (c *Client) CreateTicket(ctx context.Context, t escalation.ProviderTicket) (string, error) {
	payload, err := json.Marshal(createTicketRequest{
		Contract:    t.ContractNumber,
		Phone:       t.Phone,
		Category:    t.Category,
		Priority:    t.Priority,
		Description: t.Description,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal ticket request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tickets", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build ticket request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ticketing provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read ticketing response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Warnw("ticketing provider rejected ticket",
			"status", resp.StatusCode,
			"phone", t.Phone,
		)
		return "", fmt.Errorf("ticketing provider returned status %d", resp.StatusCode)
	}

	var parsed createTicketResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode ticketing response: %w", err)
	}
	if parsed.TicketID == "" {
		return "", fmt.Errorf("ticketing provider returned empty ticket id")
	}
	return parsed.TicketID, nil
}

// LocalTicketID generates a placeholder reference used when the provider
// is unavailable or not configured.
func LocalTicketID() string {
	return ticket.LocalTicketPrefix + uuid.NewString()
}
