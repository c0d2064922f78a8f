// Package funding implements the crowdfunding ledger operations: event
// creation, donations, withdrawals, milestone management, status overrides,
// and payout. It owns the ledger state and serializes every mutating
// operation; outbound value transfers run only after the corresponding
// state change has committed (checks-effects-interactions).
package funding

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/internal/ledger"
)

// Transferer moves value to an external account. It is the single external
// collaborator that can fail an otherwise-committed operation; a failure
// rolls the enclosing operation back completely.
type Transferer interface {
	Transfer(ctx context.Context, to string, amount uint64) error
}

// Notifier receives the ordered notification batch an operation produced.
// Batches are published only after the operation's state changes committed;
// a rolled-back operation publishes nothing.
type Notifier interface {
	Publish(ctx context.Context, batch []domain.Notification) error
}

// Service provides all crowdfunding ledger operations.
type Service struct {
	mu sync.Mutex

	// guard is held for the full duration of any operation that performs
	// an outbound transfer, including the external call itself. Re-entry
	// into a guarded operation while one is executing is rejected with
	// domain.ErrOperationInProgress instead of blocking on mu.
	guard atomic.Bool

	registry   *ledger.Registry
	book       *ledger.Book
	milestones *ledger.Tracker

	transfer Transferer
	notify   Notifier
	clock    clockwork.Clock
	log      *slog.Logger
}

// New creates a funding Service with empty ledger state.
func New(log *slog.Logger, transfer Transferer, notify Notifier, clock clockwork.Clock) *Service {
	return &Service{
		registry:   ledger.NewRegistry(),
		book:       ledger.NewBook(),
		milestones: ledger.NewTracker(),
		transfer:   transfer,
		notify:     notify,
		clock:      clock,
		log:        log.With("service", "funding"),
	}
}

// enterGuarded acquires the transfer guard; exitGuarded releases it.
// Callers must release on every path, including failures.
func (s *Service) enterGuarded() error {
	if !s.guard.CompareAndSwap(false, true) {
		return domain.ErrOperationInProgress
	}
	return nil
}

func (s *Service) exitGuarded() { s.guard.Store(false) }

// newNotification builds a notification stamped with the service clock.
func (s *Service) newNotification(kind domain.NotificationKind, eventID uint64, actor string, amount uint64) domain.Notification {
	return domain.Notification{
		ID:        uuid.New(),
		Kind:      kind,
		EventID:   eventID,
		Actor:     actor,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
	}
}

// refreshStatus applies the automatic lifecycle path to the event and
// persists the result. It returns a status-changed notification when the
// stored status actually moved, nil otherwise.
func (s *Service) refreshStatus(ev *domain.Event) *domain.Notification {
	next := domain.NextStatus(ev.Status, ev.Deadline, ev.TotalRaised, ev.FundingGoal, s.clock.Now())
	if next == ev.Status {
		return nil
	}
	ev.Status = next
	n := s.newNotification(domain.NotificationEventStatusChanged, ev.ID, ev.Creator, 0)
	n.Status = &next
	return &n
}

// recomputeDerived recomputes milestone completion and lifecycle status
// after a balance change and returns the notifications for every flag or
// status that actually changed, milestones first.
func (s *Service) recomputeDerived(ev *domain.Event) []domain.Notification {
	var batch []domain.Notification
	for _, flip := range s.milestones.Recompute(ev.ID, ev.TotalRaised) {
		n := s.newNotification(domain.NotificationMilestoneUpdated, ev.ID, ev.Creator, 0)
		idx, completed := flip.Index, flip.Completed
		n.MilestoneIndex = &idx
		n.MilestoneCompleted = &completed
		batch = append(batch, n)
	}
	if n := s.refreshStatus(ev); n != nil {
		batch = append(batch, *n)
	}
	return batch
}

// publish hands the batch to the notifier. Delivery failure is logged, not
// surfaced: the operation's state change has already committed and the
// notifier contract is at-least-once from the sink's perspective.
func (s *Service) publish(ctx context.Context, batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	if err := s.notify.Publish(ctx, batch); err != nil {
		s.log.ErrorContext(ctx, "publish notifications", slog.String("error", err.Error()))
	}
}
