package funding

import (
	"context"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// GetEvent returns a snapshot of the active event with the given
// identifier. The snapshot carries the status derived through the
// automatic lifecycle path at read time; reads never mutate stored state.
// After payout the identifier resolves to ErrEventNotFound even though
// milestone history remains readable via GetMilestones; that asymmetry is
// part of the ledger's observable behavior.
func (s *Service) GetEvent(_ context.Context, eventID uint64) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.registry.Get(eventID)
	if err != nil {
		return nil, err
	}

	snapshot := *ev
	snapshot.Status = domain.NextStatus(ev.Status, ev.Deadline, ev.TotalRaised, ev.FundingGoal, s.clock.Now())
	return &snapshot, nil
}

// ListActiveEvents returns snapshots of every event still in the active
// collection. Order does not reflect creation order once any event has
// been paid out.
func (s *Service) ListActiveEvents(_ context.Context) []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	events := s.registry.List()
	out := make([]domain.Event, len(events))
	for i, ev := range events {
		out[i] = *ev
		out[i].Status = domain.NextStatus(ev.Status, ev.Deadline, ev.TotalRaised, ev.FundingGoal, now)
	}
	return out
}

// GetMilestones returns the event's milestone sequence. It answers for
// paid-out identifiers too: milestone history outlives the active entry.
func (s *Service) GetMilestones(_ context.Context, eventID uint64) []domain.Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.milestones.List(eventID)
}

// GetContribution returns the contributor's outstanding entry for the
// event; zero once withdrawn or never donated.
func (s *Service) GetContribution(_ context.Context, eventID uint64, contributor string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.Amount(eventID, contributor)
}
