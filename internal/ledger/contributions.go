package ledger

// Book is the contribution ledger: it maps (event identifier, contributor
// address) to the amount donated. Entries are zeroed on withdrawal, never
// deleted, so a contributor's outstanding claim is always readable.
//
// Precondition (enforced by the funding service, not here): donation
// amounts are strictly positive.
type Book struct {
	entries map[uint64]map[string]uint64
}

// NewBook creates an empty contribution book.
func NewBook() *Book {
	return &Book{entries: make(map[uint64]map[string]uint64)}
}

// Add accumulates amount onto the (eventID, contributor) entry and returns
// the new entry value.
func (b *Book) Add(eventID uint64, contributor string, amount uint64) uint64 {
	m, ok := b.entries[eventID]
	if !ok {
		m = make(map[string]uint64)
		b.entries[eventID] = m
	}
	m[contributor] += amount
	return m[contributor]
}

// Amount returns the current entry for (eventID, contributor); zero if the
// contributor never donated or has withdrawn.
func (b *Book) Amount(eventID uint64, contributor string) uint64 {
	return b.entries[eventID][contributor]
}

// Zero clears the (eventID, contributor) entry and returns the amount that
// was outstanding. The entry itself survives with value zero.
func (b *Book) Zero(eventID uint64, contributor string) uint64 {
	m, ok := b.entries[eventID]
	if !ok {
		return 0
	}
	prior := m[contributor]
	m[contributor] = 0
	return prior
}

// Set overwrites the (eventID, contributor) entry. Used only to roll back a
// withdrawal whose refund transfer failed.
func (b *Book) Set(eventID uint64, contributor string, amount uint64) {
	m, ok := b.entries[eventID]
	if !ok {
		m = make(map[string]uint64)
		b.entries[eventID] = m
	}
	m[contributor] = amount
}

// Total returns the sum of all non-zero entries for the event. The funding
// service keeps Event.TotalRaised equal to this at all times; the accessor
// exists so tests can assert the invariant directly.
func (b *Book) Total(eventID uint64) uint64 {
	var sum uint64
	for _, amount := range b.entries[eventID] {
		sum += amount
	}
	return sum
}
