package notify

import (
	"context"
	"errors"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

// Sink receives published notification batches.
type Sink interface {
	Publish(ctx context.Context, batch []domain.Notification) error
}

// Multi fans a batch out to every sink. All sinks are attempted even when
// an earlier one fails; the errors are joined.
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fanout over the given sinks.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Publish delivers the batch to every sink.
func (m *Multi) Publish(ctx context.Context, batch []domain.Notification) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, batch); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
