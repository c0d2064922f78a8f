package domain

// EventStatus represents the lifecycle status of a crowdfunding event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "ACTIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusActive, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether the automatic lifecycle path may still leave
// this status. COMPLETED and CANCELLED are terminal; only an explicit
// creator override can move an event out of them.
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCancelled || s == EventStatusCompleted
}

// NotificationKind identifies the type of an observable ledger notification.
type NotificationKind string

const (
	NotificationEventCreated         NotificationKind = "EVENT_CREATED"
	NotificationContributionMade     NotificationKind = "CONTRIBUTION_MADE"
	NotificationContributionRefunded NotificationKind = "CONTRIBUTION_REFUNDED"
	NotificationEventStatusChanged   NotificationKind = "EVENT_STATUS_CHANGED"
	NotificationMilestoneUpdated     NotificationKind = "MILESTONE_UPDATED"
	NotificationFundsReleased        NotificationKind = "FUNDS_RELEASED"
)

func (k NotificationKind) String() string { return string(k) }

func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationEventCreated, NotificationContributionMade,
		NotificationContributionRefunded, NotificationEventStatusChanged,
		NotificationMilestoneUpdated, NotificationFundsReleased:
		return true
	}
	return false
}
