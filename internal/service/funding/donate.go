package funding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// Donate records a contribution from the caller toward the event. The event
// must be active, not closed, and hold at least one milestone. The
// contribution book, the raised total, milestone flags, and the lifecycle
// status all update atomically with respect to other operations; no
// external call happens in between, so a donation can never be observed in
// a half-applied state.
func (s *Service) Donate(ctx context.Context, eventID uint64, amount uint64) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if amount == 0 {
		return domain.NewValidationError("amount", "must be positive")
	}

	s.mu.Lock()
	batch, err := s.donateLocked(eventID, caller, amount)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "contribution recorded",
		slog.Uint64("event_id", eventID),
		slog.String("contributor", caller),
		slog.Uint64("amount", amount),
	)

	return nil
}

func (s *Service) donateLocked(eventID uint64, caller string, amount uint64) ([]domain.Notification, error) {
	if s.registry.IsClosed(eventID) {
		return nil, fmt.Errorf("event %d: %w", eventID, domain.ErrAlreadyClosed)
	}

	ev, err := s.registry.Get(eventID)
	if err != nil {
		return nil, err
	}

	if s.milestones.Count(eventID) == 0 {
		return nil, fmt.Errorf("event %d: %w", eventID, domain.ErrNoMilestones)
	}

	// Precondition uses the derived status so a stale stored status cannot
	// admit a donation past the deadline. Nothing is persisted on failure.
	derived := domain.NextStatus(ev.Status, ev.Deadline, ev.TotalRaised, ev.FundingGoal, s.clock.Now())
	if derived != domain.EventStatusActive {
		return nil, fmt.Errorf("event %d status %s: %w", eventID, derived, domain.ErrNotActive)
	}

	s.book.Add(eventID, caller, amount)
	ev.TotalRaised += amount

	batch := []domain.Notification{
		s.newNotification(domain.NotificationContributionMade, eventID, caller, amount),
	}
	batch = append(batch, s.recomputeDerived(ev)...)
	return batch, nil
}
