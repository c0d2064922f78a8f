package funding

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

func TestAddMilestone(t *testing.T) {
	t.Parallel()

	svc, _, notifier, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1)
	ctx := callerCtx(creatorAddr)

	if err := svc.AddMilestone(ctx, AddMilestoneInput{EventID: id, Name: "stretch", Target: 8}); err != nil {
		t.Fatalf("AddMilestone: %v", err)
	}

	ms := svc.GetMilestones(ctx, id)
	if len(ms) != 2 {
		t.Fatalf("milestones = %d, want 2", len(ms))
	}
	if ms[1].Name != "stretch" || ms[1].Target != 8 || ms[1].Completed {
		t.Errorf("milestone = %+v, want incomplete stretch/8", ms[1])
	}
	if got := notifier.countKind(domain.NotificationMilestoneUpdated); got != 0 {
		t.Errorf("MilestoneUpdated notifications = %d, want 0 (nothing flipped)", got)
	}
}

func TestAddMilestone_AlreadyCoveredTargetCompletesImmediately(t *testing.T) {
	t.Parallel()

	svc, _, notifier, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1)
	if err := svc.Donate(callerCtx(aliceAddr), id, 5); err != nil {
		t.Fatalf("Donate: %v", err)
	}

	ctx := callerCtx(creatorAddr)
	if err := svc.AddMilestone(ctx, AddMilestoneInput{EventID: id, Name: "low", Target: 3}); err != nil {
		t.Fatalf("AddMilestone: %v", err)
	}

	ms := svc.GetMilestones(ctx, id)
	if !ms[1].Completed {
		t.Error("milestone with target below raised total must complete on add")
	}
	if got := notifier.countKind(domain.NotificationMilestoneUpdated); got != 1 {
		t.Errorf("MilestoneUpdated notifications = %d, want 1", got)
	}
}

func TestAddMilestone_Limit(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1) // already holds one milestone
	ctx := callerCtx(creatorAddr)

	for i := 1; i < domain.MaxMilestonesPerEvent; i++ {
		in := AddMilestoneInput{EventID: id, Name: fmt.Sprintf("m%d", i), Target: uint64(i)}
		if err := svc.AddMilestone(ctx, in); err != nil {
			t.Fatalf("AddMilestone #%d: %v", i, err)
		}
	}

	err := svc.AddMilestone(ctx, AddMilestoneInput{EventID: id, Name: "tenth", Target: 99})
	if !errors.Is(err, domain.ErrMilestoneLimitExceeded) {
		t.Errorf("error = %v, want ErrMilestoneLimitExceeded", err)
	}
}

func TestAddMilestone_Errors(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1)

	if err := svc.AddMilestone(context.Background(), AddMilestoneInput{EventID: id, Name: "m", Target: 1}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("no caller error = %v, want ErrUnauthorized", err)
	}
	if err := svc.AddMilestone(callerCtx(aliceAddr), AddMilestoneInput{EventID: id, Name: "m", Target: 1}); !errors.Is(err, domain.ErrNotCreator) {
		t.Errorf("non-creator error = %v, want ErrNotCreator", err)
	}
	if err := svc.AddMilestone(callerCtx(creatorAddr), AddMilestoneInput{EventID: 99, Name: "m", Target: 1}); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("unknown id error = %v, want ErrEventNotFound", err)
	}
	if err := svc.AddMilestone(callerCtx(creatorAddr), AddMilestoneInput{EventID: id, Name: "", Target: 1}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty name error = %v, want ErrValidation", err)
	}
	if err := svc.AddMilestone(callerCtx(creatorAddr), AddMilestoneInput{EventID: id, Name: "m", Target: 0}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero target error = %v, want ErrValidation", err)
	}
}

func TestRemoveMilestone(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1)
	ctx := callerCtx(creatorAddr)

	if err := svc.AddMilestone(ctx, AddMilestoneInput{EventID: id, Name: "second", Target: 5}); err != nil {
		t.Fatalf("AddMilestone: %v", err)
	}
	before := len(svc.GetMilestones(ctx, id))

	if err := svc.RemoveMilestone(ctx, id, 0); err != nil {
		t.Fatalf("RemoveMilestone: %v", err)
	}

	ms := svc.GetMilestones(ctx, id)
	if len(ms) != before-1 {
		t.Fatalf("milestones = %d, want %d", len(ms), before-1)
	}
	// Swap-removal: the last milestone moved into slot 0.
	if ms[0].Name != "second" {
		t.Errorf("slot 0 = %q, want %q (order not preserved)", ms[0].Name, "second")
	}
}

func TestRemoveMilestone_Errors(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t)
	id := mustCreateEvent(t, svc, 10, 1)

	if err := svc.RemoveMilestone(callerCtx(aliceAddr), id, 0); !errors.Is(err, domain.ErrNotCreator) {
		t.Errorf("non-creator error = %v, want ErrNotCreator", err)
	}
	if err := svc.RemoveMilestone(callerCtx(creatorAddr), 99, 0); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("unknown id error = %v, want ErrEventNotFound", err)
	}
	if err := svc.RemoveMilestone(callerCtx(creatorAddr), id, 5); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Errorf("bad index error = %v, want ErrIndexOutOfRange", err)
	}
}
