package funding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// Withdraw refunds the caller's full outstanding contribution to an event
// that has not reached its goal and is not closed.
//
// Ordering is checks-effects-interactions: the book entry is zeroed, the
// raised total decremented, and milestone/status state recomputed BEFORE
// the refund transfer is attempted. A reentrant callback from the transfer
// therefore observes fully-updated state, and the guard rejects re-entry
// into any transfer-performing operation. If the transfer fails, every
// mutation is rolled back and the batch is never published.
func (s *Service) Withdraw(ctx context.Context, eventID uint64) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.enterGuarded(); err != nil {
		return err
	}
	defer s.exitGuarded()

	amount, prevStatus, batch, err := s.withdrawCommit(eventID, caller)
	if err != nil {
		return err
	}

	if err := s.transfer.Transfer(ctx, caller, amount); err != nil {
		s.withdrawRollback(eventID, caller, amount, prevStatus)
		s.log.WarnContext(ctx, "refund transfer failed, withdrawal rolled back",
			slog.Uint64("event_id", eventID),
			slog.String("contributor", caller),
			slog.Uint64("amount", amount),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("refund %d units for event %d: %w", amount, eventID, domain.ErrTransferFailed)
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "contribution refunded",
		slog.Uint64("event_id", eventID),
		slog.String("contributor", caller),
		slog.Uint64("amount", amount),
	)

	return nil
}

// withdrawCommit validates the withdrawal and commits all state changes.
// It returns the refund amount, the status before recomputation (needed for
// rollback), and the notification batch to publish on success.
func (s *Service) withdrawCommit(eventID uint64, caller string) (uint64, domain.EventStatus, []domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.IsClosed(eventID) {
		return 0, "", nil, fmt.Errorf("event %d: %w", eventID, domain.ErrAlreadyClosed)
	}

	ev, err := s.registry.Get(eventID)
	if err != nil {
		return 0, "", nil, err
	}

	if ev.GoalReached() {
		return 0, "", nil, fmt.Errorf("event %d: %w", eventID, domain.ErrGoalReached)
	}

	amount := s.book.Amount(eventID, caller)
	if amount == 0 {
		return 0, "", nil, fmt.Errorf("event %d contributor %s: %w", eventID, caller, domain.ErrNoContribution)
	}

	prevStatus := ev.Status
	s.book.Zero(eventID, caller)
	ev.TotalRaised -= amount

	batch := []domain.Notification{
		s.newNotification(domain.NotificationContributionRefunded, eventID, caller, amount),
	}
	batch = append(batch, s.recomputeDerived(ev)...)
	return amount, prevStatus, batch, nil
}

// withdrawRollback undoes a committed withdrawal whose transfer failed:
// book entry restored, total re-incremented, milestone flags recomputed for
// the restored total, status reset to its pre-operation value.
func (s *Service) withdrawRollback(eventID uint64, caller string, amount uint64, prevStatus domain.EventStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.registry.Get(eventID)
	if err != nil {
		// The event cannot have left the active set: payout is excluded by
		// the guard and nothing else removes events.
		return
	}

	s.book.Set(eventID, caller, s.book.Amount(eventID, caller)+amount)
	ev.TotalRaised += amount
	s.milestones.Recompute(eventID, ev.TotalRaised)
	ev.Status = prevStatus
}
