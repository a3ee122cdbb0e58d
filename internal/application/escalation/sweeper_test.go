package escalation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belkouche/jarvis-sub000/internal/domain/complaint"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
	"github.com/Belkouche/jarvis-sub000/internal/domain/ticket"
	"github.com/Belkouche/jarvis-sub000/internal/shared/logger"
	"github.com/Belkouche/jarvis-sub000/internal/shared/metrics"
)

type fakeComplaintRepo struct {
	FindSweepableFunc func(ctx context.Context) ([]*complaint.Complaint, error)
	UpdateFunc        func(ctx context.Context, c *complaint.Complaint) error
	updated           []*complaint.Complaint
	notes             []complaint.Note
}

func (f *fakeComplaintRepo) Save(ctx context.Context, c *complaint.Complaint) error { return nil }

func (f *fakeComplaintRepo) Update(ctx context.Context, c *complaint.Complaint) error {
	if f.UpdateFunc != nil {
		if err := f.UpdateFunc(ctx, c); err != nil {
			return err
		}
	}
	f.updated = append(f.updated, c)
	return nil
}

func (f *fakeComplaintRepo) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeComplaintRepo) List(ctx context.Context, filter complaint.Filter) ([]*complaint.Complaint, int64, error) {
	return nil, 0, nil
}

func (f *fakeComplaintRepo) FindSweepable(ctx context.Context) ([]*complaint.Complaint, error) {
	return f.FindSweepableFunc(ctx)
}

func (f *fakeComplaintRepo) AddNote(ctx context.Context, complaintID uint, note complaint.Note) error {
	f.notes = append(f.notes, note)
	return nil
}

type memReminderLog struct {
	sent map[string]bool
}

func newMemReminderLog() *memReminderLog {
	return &memReminderLog{sent: make(map[string]bool)}
}

func (m *memReminderLog) key(complaintID uint, hours int) string {
	return fmt.Sprintf("%d:%d", complaintID, hours)
}

func (m *memReminderLog) WasSent(ctx context.Context, complaintID uint, thresholdHours int) (bool, error) {
	return m.sent[m.key(complaintID, thresholdHours)], nil
}

func (m *memReminderLog) MarkSent(ctx context.Context, complaintID uint, thresholdHours int) error {
	m.sent[m.key(complaintID, thresholdHours)] = true
	return nil
}

type fakeTicketRepo struct {
	SaveFunc              func(ctx context.Context, t *ticket.Ticket) error
	FindByComplaintIDFunc func(ctx context.Context, complaintID uint) (*ticket.Ticket, error)
	saved                 []*ticket.Ticket
}

func (f *fakeTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if f.SaveFunc != nil {
		if err := f.SaveFunc(ctx, t); err != nil {
			return err
		}
	}
	f.saved = append(f.saved, t)
	return nil
}

func (f *fakeTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }

func (f *fakeTicketRepo) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTicketRepo) FindByComplaintID(ctx context.Context, complaintID uint) (*ticket.Ticket, error) {
	if f.FindByComplaintIDFunc != nil {
		return f.FindByComplaintIDFunc(ctx, complaintID)
	}
	for _, t := range f.saved {
		if t.ComplaintID() == complaintID {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTicketRepo) List(ctx context.Context, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	return f.saved, int64(len(f.saved)), nil
}

type fakeProvider struct {
	CreateTicketFunc func(ctx context.Context, req ProviderTicket) (string, error)
	calls            int
}

func (f *fakeProvider) CreateTicket(ctx context.Context, req ProviderTicket) (string, error) {
	f.calls++
	if f.CreateTicketFunc == nil {
		return fmt.Sprintf("ORG-%d", f.calls), nil
	}
	return f.CreateTicketFunc(ctx, req)
}

type notifierEvent struct {
	kind        string
	complaintID uint
	detail      string
}

type recordingNotifier struct {
	events []notifierEvent
}

func (r *recordingNotifier) NotifyEscalation(ctx context.Context, c *complaint.Complaint, ticketID string) {
	r.events = append(r.events, notifierEvent{kind: "escalation", complaintID: c.ID(), detail: ticketID})
}

func (r *recordingNotifier) NotifyReminder(ctx context.Context, c *complaint.Complaint, thresholdHours int) {
	r.events = append(r.events, notifierEvent{kind: "reminder", complaintID: c.ID(), detail: fmt.Sprintf("%dh", thresholdHours)})
}

func (r *recordingNotifier) NotifyPriorityBump(ctx context.Context, c *complaint.Complaint, from, to vo.Priority) {
	r.events = append(r.events, notifierEvent{kind: "bump", complaintID: c.ID(), detail: fmt.Sprintf("%s->%s", from, to)})
}

type sweepFixture struct {
	sweeper       *Sweeper
	complaintRepo *fakeComplaintRepo
	reminderLog   *memReminderLog
	ticketRepo    *fakeTicketRepo
	provider      *fakeProvider
	notifier      *recordingNotifier
	sink          *metrics.MemorySink
	now           time.Time
}

func newSweepFixture(t *testing.T, complaints ...*complaint.Complaint) *sweepFixture {
	t.Helper()
	f := &sweepFixture{
		complaintRepo: &fakeComplaintRepo{},
		reminderLog:   newMemReminderLog(),
		ticketRepo:    &fakeTicketRepo{},
		provider:      &fakeProvider{},
		notifier:      &recordingNotifier{},
		sink:          metrics.NewMemorySink(),
		now:           time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	f.complaintRepo.FindSweepableFunc = func(ctx context.Context) ([]*complaint.Complaint, error) {
		return complaints, nil
	}
	f.sweeper = NewSweeper(
		f.complaintRepo,
		f.reminderLog,
		f.ticketRepo,
		f.provider,
		f.notifier,
		func() string { return ticket.LocalTicketPrefix + "test" },
		logger.NewLogger(),
		f.sink,
	)
	f.sweeper.now = func() time.Time { return f.now }
	return f
}

// agedComplaint builds a complaint whose creation time sits the given
// duration before the fixture clock.
func agedComplaint(t *testing.T, id uint, priority vo.Priority, age time.Duration) *complaint.Complaint {
	t.Helper()
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC).Add(-age)
	c, err := complaint.ReconstructComplaint(
		id, "+212600000001", "F0823846D",
		vo.CategoryDelay, "toujours pas de technicien", priority,
		vo.StatusOpen, "", false, "", nil, created, created,
	)
	require.NoError(t, err)
	return c
}

func TestSweep_EscalatesAgedHighPriority(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityHigh, 9*time.Hour)
	f := newSweepFixture(t, c)

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionEscalated, results[0].Action)

	require.Len(t, f.ticketRepo.saved, 1)
	created := f.ticketRepo.saved[0]
	assert.Equal(t, uint(1), created.ComplaintID())
	assert.Equal(t, "ORG-1", created.OrangeTicketID())
	assert.False(t, created.IsLocal())

	assert.Equal(t, vo.StatusEscalated, c.Status())
	assert.True(t, c.EscalatedToOrange())
	assert.Equal(t, "ORG-1", c.OrangeTicketID())
	require.Len(t, f.complaintRepo.updated, 1)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "escalation", f.notifier.events[0].kind)
	assert.Equal(t, int64(1), f.sink.Value(metrics.SweepEscalated))
}

func TestSweep_EscalationIsIdempotent(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityHigh, 9*time.Hour)
	f := newSweepFixture(t, c)

	_, err := f.sweeper.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, f.ticketRepo.saved, 1)

	// The complaint comes back in a later pass, e.g. after a partial failure
	// left it in the sweepable set. No second ticket, no second notification.
	results, err := f.sweeper.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionSkipped, results[0].Action)
	assert.Len(t, f.ticketRepo.saved, 1)
	assert.Equal(t, 1, f.provider.calls)
	assert.Len(t, f.notifier.events, 1)
}

func TestSweep_ExistingTicketBlocksReescalation(t *testing.T) {
	c := agedComplaint(t, 7, vo.PriorityHigh, 9*time.Hour)
	f := newSweepFixture(t, c)

	// A previous pass created the ticket but crashed before flipping the
	// complaint status.
	orphan, err := ticket.NewTicket(7, "ORG-99", "toujours pas de technicien")
	require.NoError(t, err)
	require.NoError(t, f.ticketRepo.Save(context.Background(), orphan))

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionSkipped, results[0].Action)
	assert.Equal(t, "ticket already exists", results[0].Reason)
	assert.Equal(t, 0, f.provider.calls)
}

func TestSweep_TicketLookupFailureBlocksEscalation(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityHigh, 9*time.Hour)
	f := newSweepFixture(t, c)
	f.ticketRepo.FindByComplaintIDFunc = func(ctx context.Context, complaintID uint) (*ticket.Ticket, error) {
		return nil, errors.New("database unavailable")
	}

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionFailed, results[0].Action)
	// The idempotency guard is unreadable, so no provider ticket may be
	// created: it could duplicate one a previous pass already opened.
	assert.Equal(t, 0, f.provider.calls)
	assert.Empty(t, f.ticketRepo.saved)
	assert.Equal(t, vo.StatusOpen, c.Status())
}

func TestSweep_ProviderFailureFallsBackToLocalTicket(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityHigh, 9*time.Hour)
	f := newSweepFixture(t, c)
	f.provider.CreateTicketFunc = func(ctx context.Context, req ProviderTicket) (string, error) {
		return "", errors.New("provider unreachable")
	}

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionEscalated, results[0].Action)

	require.Len(t, f.ticketRepo.saved, 1)
	created := f.ticketRepo.saved[0]
	assert.Equal(t, "LOCAL-test", created.OrangeTicketID())
	assert.True(t, created.IsLocal())
	assert.Equal(t, vo.StatusEscalated, c.Status())
}

func TestSweep_RemindersFireOncePerThreshold(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityHigh, 5*time.Hour)
	f := newSweepFixture(t, c)

	// First pass crosses the 2h threshold.
	results, err := f.sweeper.Sweep(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionReminded, results[0].Action)
	assert.Equal(t, "crossed 2h reminder threshold", results[0].Reason)

	// Second pass at the same age: 2h already sent, 4h fires instead.
	results, err = f.sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionReminded, results[0].Action)
	assert.Equal(t, "crossed 4h reminder threshold", results[0].Reason)

	// Third pass: nothing left below the complaint's age. High priority
	// never bumps, so the sweep has nothing to do.
	results, err = f.sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ActionSkipped, results[0].Action)

	assert.Equal(t, int64(2), f.sink.Value(metrics.SweepReminded))
	require.Len(t, f.notifier.events, 2)
	assert.Equal(t, "2h", f.notifier.events[0].detail)
	assert.Equal(t, "4h", f.notifier.events[1].detail)
	// Each reminder leaves an audit note.
	assert.Len(t, f.complaintRepo.notes, 2)
}

func TestSweep_BumpsMediumToHigh(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityMedium, 25*time.Hour)
	f := newSweepFixture(t, c)

	// Reminders at 12h and 24h already went out in earlier passes.
	require.NoError(t, f.reminderLog.MarkSent(context.Background(), 1, 12))
	require.NoError(t, f.reminderLog.MarkSent(context.Background(), 1, 24))

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionBumped, results[0].Action)
	assert.Equal(t, vo.PriorityHigh, c.Priority())
	require.Len(t, f.complaintRepo.updated, 1)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, "bump", f.notifier.events[0].kind)
	assert.Equal(t, "medium->high", f.notifier.events[0].detail)
	assert.Equal(t, int64(1), f.sink.Value(metrics.SweepBumped))
}

func TestSweep_YoungComplaintIsUntouched(t *testing.T) {
	c := agedComplaint(t, 1, vo.PriorityLow, time.Hour)
	f := newSweepFixture(t, c)

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, ActionSkipped, results[0].Action)
	assert.Equal(t, "no threshold crossed", results[0].Reason)
	assert.Empty(t, f.ticketRepo.saved)
	assert.Empty(t, f.notifier.events)
}

func TestSweep_FailureOnOneComplaintDoesNotAbortThePass(t *testing.T) {
	broken := agedComplaint(t, 1, vo.PriorityHigh, 9*time.Hour)
	healthy := agedComplaint(t, 2, vo.PriorityLow, time.Hour)
	f := newSweepFixture(t, broken, healthy)
	f.ticketRepo.SaveFunc = func(ctx context.Context, tk *ticket.Ticket) error {
		if tk.ComplaintID() == 1 {
			return errors.New("database unavailable")
		}
		return nil
	}

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, ActionFailed, results[0].Action)
	assert.Equal(t, ActionSkipped, results[1].Action)
}

func TestSweep_SkipsWhenAlreadyRunning(t *testing.T) {
	f := newSweepFixture(t)
	f.sweeper.running.Lock()
	defer f.sweeper.running.Unlock()

	results, err := f.sweeper.Sweep(context.Background())

	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestSweep_LoadFailurePropagates(t *testing.T) {
	f := newSweepFixture(t)
	f.complaintRepo.FindSweepableFunc = func(ctx context.Context) ([]*complaint.Complaint, error) {
		return nil, errors.New("database unavailable")
	}

	_, err := f.sweeper.Sweep(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sweepable")
}
