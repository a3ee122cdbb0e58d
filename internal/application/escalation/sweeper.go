// Package escalation implements the periodic sweep that escalates aged
// complaints: external ticket handoff, reminder notifications and internal
// priority bumps, each keyed on complaint age and priority.
package escalation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/domain/ticket"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

// Action describes what the sweep did for one complaint.
type Action string

const (
	ActionEscalated Action = "escalated"
	ActionReminded  Action = "reminded"
	ActionBumped    Action = "priority_bumped"
	ActionSkipped   Action = "skipped"
	ActionFailed    Action = "failed"
)

// SweepResult is one entry of the per-sweep report.
type SweepResult struct {
	ComplaintID uint
	Action      Action
	Reason      string
}

// ProviderTicket is the payload sent to the external ticketing provider.
type ProviderTicket struct {
	ContractNumber string
	Phone          string
	Category       string
	Priority       string
	Description    string
}

// TicketProvider creates tickets at the external provider. When the provider
// is unreachable or unconfigured, escalation degrades to a local placeholder
// id instead of failing.
type TicketProvider interface {
	CreateTicket(ctx context.Context, req ProviderTicket) (string, error)
}

// Notifier delivers escalation events to the support team. Delivery failures
// never affect complaint or ticket state.
type Notifier interface {
	NotifyEscalation(ctx context.Context, c *complaint.Complaint, ticketID string)
	NotifyReminder(ctx context.Context, c *complaint.Complaint, thresholdHours int)
	NotifyPriorityBump(ctx context.Context, c *complaint.Complaint, from, to vo.Priority)
}

// LocalTicketID generates a placeholder id for tickets that could not be
// created at the provider.
type LocalTicketID func() string

// Sweeper evaluates the escalation rules over all sweepable complaints.
// Sweeps are serialized: a sweep still running when the next tick arrives
// causes the new one to be skipped.
type Sweeper struct {
	complaintRepo complaint.Repository
	reminderLog   complaint.ReminderLog
	ticketRepo    ticket.Repository
	provider      TicketProvider
	notifier      Notifier
	localID       LocalTicketID
	logger        logger.Interface
	metrics       metrics.Sink

	running sync.Mutex
	now     func() time.Time
}

func NewSweeper(
	complaintRepo complaint.Repository,
	reminderLog complaint.ReminderLog,
	ticketRepo ticket.Repository,
	provider TicketProvider,
	notifier Notifier,
	localID LocalTicketID,
	log logger.Interface,
	sink metrics.Sink,
) *Sweeper {
	if sink == nil {
		sink = metrics.NewNoop()
	}
	return &Sweeper{
		complaintRepo: complaintRepo,
		reminderLog:   reminderLog,
		ticketRepo:    ticketRepo,
		provider:      provider,
		notifier:      notifier,
		localID:       localID,
		logger:        log,
		metrics:       sink,
		now:           time.Now,
	}
}

// Sweep runs one pass over all open/assigned complaints. A failure on one
// complaint is recorded and does not abort the rest of the pass.
func (s *Sweeper) Sweep(ctx context.Context) ([]SweepResult, error) {
	if !s.running.TryLock() {
		s.logger.Warnw("escalation sweep already running, skipping this tick")
		return nil, nil
	}
	defer s.running.Unlock()

	complaints, err := s.complaintRepo.FindSweepable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sweepable complaints: %w", err)
	}

	results := make([]SweepResult, 0, len(complaints))
	for _, c := range complaints {
		result := s.evaluate(ctx, c)
		results = append(results, result)
		if result.Action == ActionFailed {
			s.logger.Errorw("sweep action failed",
				"complaint_id", result.ComplaintID, "reason", result.Reason)
		}
	}

	s.logger.Infow("escalation sweep completed", "complaints", len(complaints))
	return results, nil
}

// evaluate applies the rules in priority order; the first applicable action
// wins and the rest are skipped for this sweep.
func (s *Sweeper) evaluate(ctx context.Context, c *complaint.Complaint) SweepResult {
	age := c.Age(s.now())

	if done, result := s.tryEscalate(ctx, c, age); done {
		return result
	}
	if done, result := s.tryRemind(ctx, c, age); done {
		return result
	}
	if done, result := s.tryBump(ctx, c, age); done {
		return result
	}

	return SweepResult{ComplaintID: c.ID(), Action: ActionSkipped, Reason: "no threshold crossed"}
}

func (s *Sweeper) tryEscalate(ctx context.Context, c *complaint.Complaint, age time.Duration) (bool, SweepResult) {
	if age < autoEscalateAfter[c.Priority()] {
		return false, SweepResult{}
	}

	// Idempotency guard: the status filter should already exclude escalated
	// complaints, but a previous partial failure may have left a ticket
	// behind without the status flip.
	if c.EscalatedToOrange() {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionSkipped, Reason: "already escalated"}
	}
	existing, err := s.ticketRepo.FindByComplaintID(ctx, c.ID())
	if err != nil {
		// Without a readable ticket table the guard cannot be trusted;
		// creating a provider ticket here could duplicate one.
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}
	if existing != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionSkipped, Reason: "ticket already exists"}
	}

	ticketID, err := s.createProviderTicket(ctx, c)
	if err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}

	newTicket, err := ticket.NewTicket(c.ID(), ticketID, c.Description())
	if err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}
	if err := s.ticketRepo.Save(ctx, newTicket); err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}

	if err := c.Escalate(ticketID); err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}
	c.AppendNote("system", fmt.Sprintf("escalated to orange, ticket %s", ticketID))
	if err := s.complaintRepo.Update(ctx, c); err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}

	s.metrics.Inc(metrics.SweepEscalated)
	s.notifier.NotifyEscalation(ctx, c, ticketID)
	return true, SweepResult{
		ComplaintID: c.ID(),
		Action:      ActionEscalated,
		Reason:      fmt.Sprintf("age exceeded %s threshold", autoEscalateAfter[c.Priority()]),
	}
}

func (s *Sweeper) createProviderTicket(ctx context.Context, c *complaint.Complaint) (string, error) {
	providerID, err := s.provider.CreateTicket(ctx, ProviderTicket{
		ContractNumber: c.ContractNumber(),
		Phone:          c.Phone(),
		Category:       c.Category().String(),
		Priority:       c.Priority().String(),
		Description:    c.Description(),
	})
	if err == nil {
		return providerID, nil
	}

	// Provider unreachable or unconfigured: degrade to a local placeholder
	// so the escalation still happens.
	s.logger.Warnw("ticket provider unavailable, using local placeholder",
		"complaint_id", c.ID(), "error", err)
	return s.localID(), nil
}

func (s *Sweeper) tryRemind(ctx context.Context, c *complaint.Complaint, age time.Duration) (bool, SweepResult) {
	for _, hours := range reminderSchedule[c.Priority()] {
		if age < time.Duration(hours)*time.Hour {
			break
		}

		sent, err := s.reminderLog.WasSent(ctx, c.ID(), hours)
		if err != nil {
			return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
		}
		if sent {
			continue
		}

		if err := s.reminderLog.MarkSent(ctx, c.ID(), hours); err != nil {
			return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
		}
		note := complaint.Note{
			Author:    "system",
			Content:   fmt.Sprintf("reminder sent at %dh threshold", hours),
			CreatedAt: s.now(),
		}
		if err := s.complaintRepo.AddNote(ctx, c.ID(), note); err != nil {
			s.logger.Warnw("failed to record reminder note", "complaint_id", c.ID(), "error", err)
		}

		s.metrics.Inc(metrics.SweepReminded)
		s.notifier.NotifyReminder(ctx, c, hours)
		return true, SweepResult{
			ComplaintID: c.ID(),
			Action:      ActionReminded,
			Reason:      fmt.Sprintf("crossed %dh reminder threshold", hours),
		}
	}

	return false, SweepResult{}
}

func (s *Sweeper) tryBump(ctx context.Context, c *complaint.Complaint, age time.Duration) (bool, SweepResult) {
	if c.Priority() == vo.PriorityHigh || age < bumpAfter[c.Priority()] {
		return false, SweepResult{}
	}

	from := c.Priority()
	to, err := c.BumpPriority()
	if err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}
	c.AppendNote("system", fmt.Sprintf("priority escalated from %s to %s", from, to))

	if err := s.complaintRepo.Update(ctx, c); err != nil {
		return true, SweepResult{ComplaintID: c.ID(), Action: ActionFailed, Reason: err.Error()}
	}

	s.metrics.Inc(metrics.SweepBumped)
	s.notifier.NotifyPriorityBump(ctx, c, from, to)
	return true, SweepResult{
		ComplaintID: c.ID(),
		Action:      ActionBumped,
		Reason:      fmt.Sprintf("age exceeded %s bump threshold", bumpAfter[from]),
	}
}
