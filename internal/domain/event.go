package domain

import "time"

// Bounds enforced at event creation. Funding amounts are whole currency
// units; the ledger never deals in fractions.
const (
	MaxEventNameLen        = 100
	MaxEventDescriptionLen = 1000
	MaxFundingGoal         = 1000
	MaxDurationDays        = 365
)

// Event is a crowdfunding campaign. Identifiers are assigned monotonically
// by the registry and never reused, even after the event leaves the active
// set at payout.
//
// Invariant: TotalRaised always equals the sum of all non-zero contribution
// book entries for this event.
type Event struct {
	ID          uint64
	Name        string
	Description string
	Creator     string
	Status      EventStatus
	FundingGoal uint64
	Deadline    time.Time
	TotalRaised uint64
	CreatedAt   time.Time
}

// GoalReached reports whether the event has raised at least its funding goal.
func (e *Event) GoalReached() bool {
	return e.TotalRaised >= e.FundingGoal
}

// Milestone is an independent funding threshold attached to an event.
// Completed tracks `TotalRaised >= Target` as of the last recomputation;
// each milestone is judged against the event's full raised total, never
// against the remainder after earlier milestones.
type Milestone struct {
	Name      string
	Target    uint64
	Completed bool
}

// MaxMilestonesPerEvent caps the milestone sequence length per event.
const MaxMilestonesPerEvent = 9
