package funding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// Payout releases the full raised amount to the event creator. It requires
// the caller to be the creator, the derived status to be COMPLETED, and the
// goal to be reached. Payout is one-shot: the identifier is permanently
// closed and the event leaves the active collection before the transfer is
// attempted, so neither a repeat payout nor a late donation can slip in
// through a reentrant callback. A failed transfer reinstates the event.
func (s *Service) Payout(ctx context.Context, eventID uint64) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.enterGuarded(); err != nil {
		return err
	}
	defer s.exitGuarded()

	ev, amount, batch, err := s.payoutCommit(eventID, caller)
	if err != nil {
		return err
	}

	if err := s.transfer.Transfer(ctx, ev.Creator, amount); err != nil {
		s.payoutRollback(ev)
		s.log.WarnContext(ctx, "payout transfer failed, event reinstated",
			slog.Uint64("event_id", eventID),
			slog.String("creator", ev.Creator),
			slog.Uint64("amount", amount),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("payout %d units for event %d: %w", amount, eventID, domain.ErrTransferFailed)
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "funds released to creator",
		slog.Uint64("event_id", eventID),
		slog.String("creator", ev.Creator),
		slog.Uint64("amount", amount),
	)

	return nil
}

// payoutCommit validates payout eligibility and commits the closing
// effects: closed flag set and registry entry removed.
func (s *Service) payoutCommit(eventID uint64, caller string) (*domain.Event, uint64, []domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry.IsClosed(eventID) {
		return nil, 0, nil, fmt.Errorf("event %d: %w", eventID, domain.ErrAlreadyClosed)
	}

	ev, err := s.registry.Get(eventID)
	if err != nil {
		return nil, 0, nil, err
	}

	if ev.Creator != caller {
		return nil, 0, nil, fmt.Errorf("event %d: %w", eventID, domain.ErrNotCreator)
	}

	derived := domain.NextStatus(ev.Status, ev.Deadline, ev.TotalRaised, ev.FundingGoal, s.clock.Now())
	if derived != domain.EventStatusCompleted {
		return nil, 0, nil, fmt.Errorf("event %d status %s: %w", eventID, derived, domain.ErrNotCompleted)
	}

	// A manual override can force COMPLETED without the goal being met;
	// payout eligibility checks the funding fact independently.
	if !ev.GoalReached() {
		return nil, 0, nil, fmt.Errorf("event %d: %w", eventID, domain.ErrGoalNotReached)
	}

	ev.Status = derived
	amount := ev.TotalRaised

	s.registry.Close(eventID)
	if _, err := s.registry.Remove(eventID); err != nil {
		return nil, 0, nil, err
	}

	batch := []domain.Notification{
		s.newNotification(domain.NotificationFundsReleased, eventID, ev.Creator, amount),
	}
	return ev, amount, batch, nil
}

// payoutRollback reinstates an event whose payout transfer failed.
func (s *Service) payoutRollback(ev *domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry.Reopen(ev.ID)
	s.registry.Reinstate(ev)
}
