package funding

import (
	"context"
	"log/slog"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// SetStatus force-sets the event's status. Creator-only. This is the
// explicit escape hatch out of the automatic lifecycle rules: it may
// contradict the funding and deadline facts, and it is the only way out of
// a terminal status. A status-changed notification is emitted on every
// call, even when the value does not change.
func (s *Service) SetStatus(ctx context.Context, eventID uint64, status domain.EventStatus) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if !status.IsValid() {
		return domain.NewValidationError("status", "must be one of ACTIVE, CANCELLED, COMPLETED")
	}

	s.mu.Lock()
	batch, err := func() ([]domain.Notification, error) {
		ev, err := s.requireCreator(eventID, caller)
		if err != nil {
			return nil, err
		}
		ev.Status = status
		n := s.newNotification(domain.NotificationEventStatusChanged, eventID, caller, 0)
		n.Status = &status
		return []domain.Notification{n}, nil
	}()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "status overridden",
		slog.Uint64("event_id", eventID),
		slog.String("status", status.String()),
	)

	return nil
}
