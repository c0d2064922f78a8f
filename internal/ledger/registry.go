// Package ledger holds the owned mutable state of the crowdfunding ledger:
// the dense active-event collection, the contribution book, and the
// milestone tracker. None of these components performs synchronization or
// external IO; the funding service serializes access and owns all side
// effects, which keeps every invariant here testable in isolation.
package ledger

import (
	"fmt"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// Registry owns the dense collection of active events. It assigns stable,
// monotonically increasing identifiers that are never reused, keeps a
// reverse id→slot index for O(1) removal, and records the permanent closed
// flag set at payout.
//
// Removal is unordered (swap with the last slot, then truncate): callers
// must never rely on collection order reflecting creation order once any
// event has been removed.
type Registry struct {
	events []*domain.Event
	index  map[uint64]int
	nextID uint64
	closed map[uint64]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:  make(map[uint64]int),
		closed: make(map[uint64]bool),
	}
}

// Append adds an event to the active collection, assigns it the next
// identifier, and records its slot. It returns the assigned identifier.
func (r *Registry) Append(ev *domain.Event) uint64 {
	id := r.nextID
	r.nextID++

	ev.ID = id
	r.index[id] = len(r.events)
	r.events = append(r.events, ev)
	return id
}

// Get returns the active event with the given identifier. After payout the
// identifier is no longer resolvable through this path and the lookup fails
// with domain.ErrEventNotFound.
func (r *Registry) Get(id uint64) (*domain.Event, error) {
	slot, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrEventNotFound)
	}
	return r.events[slot], nil
}

// Remove takes the event out of the active collection using swap
// compaction: the target slot is overwritten with the last slot's event,
// that event's index entry is updated to the earlier position, and the
// collection shrinks by one. Removing the last slot needs no swap.
func (r *Registry) Remove(id uint64) (*domain.Event, error) {
	slot, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("event %d: %w", id, domain.ErrEventNotFound)
	}

	removed := r.events[slot]
	last := len(r.events) - 1
	if slot != last {
		moved := r.events[last]
		r.events[slot] = moved
		r.index[moved.ID] = slot
	}
	r.events[last] = nil
	r.events = r.events[:last]
	delete(r.index, id)
	return removed, nil
}

// Reinstate puts a previously removed event back into the active
// collection under its original identifier. It exists solely so a failed
// payout transfer can roll the registry back; the slot position is not
// restored because collection order is never meaningful after removals.
func (r *Registry) Reinstate(ev *domain.Event) {
	r.index[ev.ID] = len(r.events)
	r.events = append(r.events, ev)
}

// List returns a copy of the active collection. The returned slice is
// caller-owned; the events it points at are live registry state.
func (r *Registry) List() []*domain.Event {
	out := make([]*domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of active events.
func (r *Registry) Len() int { return len(r.events) }

// Close permanently marks the identifier as paid out. A closed identifier
// accepts no further donations or withdrawals, ever.
func (r *Registry) Close(id uint64) { r.closed[id] = true }

// Reopen clears the closed flag. Like Reinstate it exists only for payout
// rollback.
func (r *Registry) Reopen(id uint64) { delete(r.closed, id) }

// IsClosed reports whether the identifier was permanently closed at payout.
func (r *Registry) IsClosed(id uint64) bool { return r.closed[id] }
