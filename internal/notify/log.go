// Package notify provides notification sinks for the funding service: an
// in-process ordered log that backs the notification feed, and a fanout
// for publishing to several sinks at once.
package notify

import (
	"context"
	"sync"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// Log is an in-memory ordered notification log. Entries are appended in
// publish order and never mutated afterwards.
type Log struct {
	mu      sync.RWMutex
	entries []domain.Notification
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Publish appends the batch in order. It never fails.
func (l *Log) Publish(_ context.Context, batch []domain.Notification) error {
	l.mu.Lock()
	l.entries = append(l.entries, batch...)
	l.mu.Unlock()
	return nil
}

// List returns a copy of all entries in publish order.
func (l *Log) List() []domain.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// ByEvent returns the entries for one event identifier, in publish order.
func (l *Log) ByEvent(eventID uint64) []domain.Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Notification
	for _, n := range l.entries {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	return out
}

// ListByEvent returns up to limit entries for one event, oldest first. It
// mirrors the archive repository's read API so either can back the feed.
func (l *Log) ListByEvent(_ context.Context, eventID uint64, limit int) ([]domain.Notification, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Notification
	for _, n := range l.entries {
		if n.EventID != eventID {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListRecent returns up to limit entries across all events, newest first,
// skipping offset entries.
func (l *Log) ListRecent(_ context.Context, limit, offset int) ([]domain.Notification, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.Notification
	for i := len(l.entries) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}

// Len returns the number of entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
