package funding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/pkg/ctxutil"
)

// AddMilestone appends a milestone to the event's sequence. Creator-only.
// The new milestone is evaluated immediately, so a target already covered
// by the raised total completes (and notifies) in the same operation.
func (s *Service) AddMilestone(ctx context.Context, input AddMilestoneInput) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	batch, err := func() ([]domain.Notification, error) {
		ev, err := s.requireCreator(input.EventID, caller)
		if err != nil {
			return nil, err
		}
		m := domain.Milestone{Name: strings.TrimSpace(input.Name), Target: input.Target}
		if err := s.milestones.Add(input.EventID, m); err != nil {
			return nil, err
		}
		return s.recomputeDerived(ev), nil
	}()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "milestone added",
		slog.Uint64("event_id", input.EventID),
		slog.Uint64("target", input.Target),
	)

	return nil
}

// RemoveMilestone swap-removes the milestone at index. Creator-only.
// Milestone order is not preserved across removals.
func (s *Service) RemoveMilestone(ctx context.Context, eventID uint64, index int) error {
	caller, ok := ctxutil.CallerFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	batch, err := func() ([]domain.Notification, error) {
		ev, err := s.requireCreator(eventID, caller)
		if err != nil {
			return nil, err
		}
		if err := s.milestones.Remove(eventID, index); err != nil {
			return nil, err
		}
		return s.recomputeDerived(ev), nil
	}()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.publish(ctx, batch)

	s.log.InfoContext(ctx, "milestone removed",
		slog.Uint64("event_id", eventID),
		slog.Int("index", index),
	)

	return nil
}

// requireCreator resolves the event and checks the caller against its
// creator. Must be called with s.mu held.
func (s *Service) requireCreator(eventID uint64, caller string) (*domain.Event, error) {
	ev, err := s.registry.Get(eventID)
	if err != nil {
		return nil, err
	}
	if ev.Creator != caller {
		return nil, fmt.Errorf("event %d: %w", eventID, domain.ErrNotCreator)
	}
	return ev, nil
}
