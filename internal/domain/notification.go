package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an ordered, observable ledger log entry. Every mutating
// operation publishes the notifications it produced only after its state
// changes have committed; a rolled-back operation publishes nothing.
type Notification struct {
	ID      uuid.UUID
	Kind    NotificationKind
	EventID uint64

	// Actor is the wallet address the entry refers to: the contributor for
	// contribution entries, the creator for creation/payout entries.
	Actor string

	// Amount is set for CONTRIBUTION_MADE, CONTRIBUTION_REFUNDED and
	// FUNDS_RELEASED entries; zero otherwise.
	Amount uint64

	// MilestoneIndex is set for MILESTONE_UPDATED entries.
	MilestoneIndex *int
	// MilestoneCompleted carries the new completion flag for
	// MILESTONE_UPDATED entries.
	MilestoneCompleted *bool

	// Status carries the new status for EVENT_STATUS_CHANGED entries.
	Status *EventStatus

	CreatedAt time.Time
}
