package funding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// CreateEvent registers a new crowdfunding event for the calling creator
// and returns its identifier. The deadline is computed from the service
// clock plus the requested duration.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (uint64, error) {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := s.clock.Now()
	ev := &domain.Event{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Creator:     caller,
		Status:      domain.EventStatusActive,
		FundingGoal: input.FundingGoal,
		Deadline:    now.Add(time.Duration(input.DurationDays) * 24 * time.Hour),
		CreatedAt:   now,
	}

	s.mu.Lock()
	id := s.registry.Append(ev)
	created := s.newNotification(domain.NotificationEventCreated, id, caller, 0)
	s.mu.Unlock()

	s.publish(ctx, []domain.Notification{created})

	s.log.InfoContext(ctx, "event created",
		slog.Uint64("event_id", id),
		slog.String("creator", caller),
		slog.Uint64("funding_goal", ev.FundingGoal),
		slog.Time("deadline", ev.Deadline),
	)

	return id, nil
}
