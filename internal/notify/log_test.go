package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

func entry(kind domain.NotificationKind, eventID uint64) domain.Notification {
	return domain.Notification{Kind: kind, EventID: eventID}
}

func TestLog_PublishPreservesOrder(t *testing.T) {
	t.Parallel()

	l := NewLog()
	ctx := context.Background()

	if err := l.Publish(ctx, []domain.Notification{
		entry(domain.NotificationEventCreated, 0),
		entry(domain.NotificationContributionMade, 0),
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := l.Publish(ctx, []domain.Notification{
		entry(domain.NotificationEventCreated, 1),
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	got := l.List()
	want := []domain.NotificationKind{
		domain.NotificationEventCreated,
		domain.NotificationContributionMade,
		domain.NotificationEventCreated,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("entry %d kind = %s, want %s", i, got[i].Kind, k)
		}
	}
}

func TestLog_ByEvent(t *testing.T) {
	t.Parallel()

	l := NewLog()
	l.Publish(context.Background(), []domain.Notification{
		entry(domain.NotificationEventCreated, 0),
		entry(domain.NotificationEventCreated, 1),
		entry(domain.NotificationContributionMade, 1),
	})

	got := l.ByEvent(1)
	if len(got) != 2 {
		t.Fatalf("ByEvent(1) len = %d, want 2", len(got))
	}
	if got[0].Kind != domain.NotificationEventCreated || got[1].Kind != domain.NotificationContributionMade {
		t.Errorf("ByEvent(1) kinds = [%s %s]", got[0].Kind, got[1].Kind)
	}
	if n := l.ByEvent(42); len(n) != 0 {
		t.Errorf("ByEvent(42) = %v, want empty", n)
	}
}

func TestLog_ListByEvent_AppliesLimit(t *testing.T) {
	t.Parallel()

	l := NewLog()
	l.Publish(context.Background(), []domain.Notification{
		entry(domain.NotificationEventCreated, 7),
		entry(domain.NotificationContributionMade, 7),
		entry(domain.NotificationContributionMade, 8),
		entry(domain.NotificationContributionMade, 7),
	})

	got, err := l.ListByEvent(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("ListByEvent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Kind != domain.NotificationEventCreated || got[1].Kind != domain.NotificationContributionMade {
		t.Errorf("kinds = [%s %s], want oldest first", got[0].Kind, got[1].Kind)
	}
}

func TestLog_ListRecent_NewestFirstWithOffset(t *testing.T) {
	t.Parallel()

	l := NewLog()
	l.Publish(context.Background(), []domain.Notification{
		entry(domain.NotificationEventCreated, 1),
		entry(domain.NotificationEventCreated, 2),
		entry(domain.NotificationEventCreated, 3),
	})

	got, err := l.ListRecent(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].EventID != 2 || got[1].EventID != 1 {
		t.Errorf("event ids = [%d %d], want [2 1]", got[0].EventID, got[1].EventID)
	}

	empty, err := l.ListRecent(context.Background(), 10, 99)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("offset past end should return nothing, got %d", len(empty))
	}
}

type failingSink struct{ err error }

func (s failingSink) Publish(context.Context, []domain.Notification) error { return s.err }

func TestMulti_DeliversToAllSinks(t *testing.T) {
	t.Parallel()

	a, b := NewLog(), NewLog()
	boom := errors.New("boom")
	m := NewMulti(a, failingSink{err: boom}, b)

	err := m.Publish(context.Background(), []domain.Notification{
		entry(domain.NotificationEventCreated, 0),
	})
	if !errors.Is(err, boom) {
		t.Errorf("Publish error = %v, want boom", err)
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("sink lens = %d, %d; want 1, 1 (later sinks still attempted)", a.Len(), b.Len())
	}
}
