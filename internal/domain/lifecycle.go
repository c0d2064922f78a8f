package domain

import "time"

// NextStatus derives an event's status on the automatic lifecycle path.
// It is pure: the result depends only on the arguments.
//
// Rules:
//   - A terminal status (COMPLETED, CANCELLED) is never left on this path.
//     Only an explicit creator override can move out of it.
//   - Once the deadline is reached, the event resolves to COMPLETED if the
//     goal was met, CANCELLED otherwise.
//   - Before the deadline, the event resolves to COMPLETED as soon as the
//     goal is met (early success); otherwise it stays ACTIVE.
//
// There is no scheduler: callers invoke this lazily on every touch, so the
// stored status is refreshed opportunistically rather than polled.
func NextStatus(status EventStatus, deadline time.Time, raised, goal uint64, now time.Time) EventStatus {
	if status.IsTerminal() {
		return status
	}
	if !now.Before(deadline) {
		if raised >= goal {
			return EventStatusCompleted
		}
		return EventStatusCancelled
	}
	if raised >= goal {
		return EventStatusCompleted
	}
	return EventStatusActive
}
