package ledger

import (
	"fmt"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// Flip records a milestone whose completion flag actually changed during a
// recomputation. Recompute reports flips only; re-running it with the same
// raised total reports nothing.
type Flip struct {
	Index     int
	Completed bool
}

// Tracker maintains the ordered milestone sequence per event identifier.
// Milestones are kept by identifier rather than inside the event so the
// history stays addressable after the event leaves the active collection at
// payout.
type Tracker struct {
	milestones map[uint64][]domain.Milestone
}

// NewTracker creates an empty milestone tracker.
func NewTracker() *Tracker {
	return &Tracker{milestones: make(map[uint64][]domain.Milestone)}
}

// Add appends a milestone to the event's sequence. Fails with
// domain.ErrMilestoneLimitExceeded once the event holds the maximum of
// domain.MaxMilestonesPerEvent milestones.
func (t *Tracker) Add(eventID uint64, m domain.Milestone) error {
	ms := t.milestones[eventID]
	if len(ms) >= domain.MaxMilestonesPerEvent {
		return fmt.Errorf("event %d: %w", eventID, domain.ErrMilestoneLimitExceeded)
	}
	t.milestones[eventID] = append(ms, m)
	return nil
}

// Remove swap-removes the milestone at index: the last milestone takes its
// place and the sequence shrinks by one. Order is not preserved.
func (t *Tracker) Remove(eventID uint64, index int) error {
	ms := t.milestones[eventID]
	if index < 0 || index >= len(ms) {
		return fmt.Errorf("event %d index %d: %w", eventID, index, domain.ErrIndexOutOfRange)
	}
	last := len(ms) - 1
	ms[index] = ms[last]
	t.milestones[eventID] = ms[:last]
	return nil
}

// Count returns the number of milestones held for the event.
func (t *Tracker) Count(eventID uint64) int {
	return len(t.milestones[eventID])
}

// List returns a copy of the event's milestone sequence. It answers for
// paid-out identifiers too.
func (t *Tracker) List(eventID uint64) []domain.Milestone {
	ms := t.milestones[eventID]
	out := make([]domain.Milestone, len(ms))
	copy(out, ms)
	return out
}

// Recompute re-evaluates every milestone of the event against the raised
// total. Each milestone is an independent threshold: completed iff
// raised >= target, regardless of the other milestones. The returned flips
// contain only milestones whose flag actually changed, in sequence order.
func (t *Tracker) Recompute(eventID uint64, raised uint64) []Flip {
	ms := t.milestones[eventID]
	var flips []Flip
	for i := range ms {
		completed := raised >= ms[i].Target
		if ms[i].Completed != completed {
			ms[i].Completed = completed
			flips = append(flips, Flip{Index: i, Completed: completed})
		}
	}
	return flips
}
