package rest

import (
	"context"

	"github.com/ahsanali17/crowdfund-backend/internal/domain"
	"github.com/ahsanali17/crowdfund-backend/internal/service/funding"
)

// fundingService is the slice of the funding service the handlers consume.
type fundingService interface {
	CreateEvent(ctx context.Context, input funding.CreateEventInput) (uint64, error)
	Donate(ctx context.Context, eventID uint64, amount uint64) error
	Withdraw(ctx context.Context, eventID uint64) error
	Payout(ctx context.Context, eventID uint64) error
	SetStatus(ctx context.Context, eventID uint64, status domain.EventStatus) error
	AddMilestone(ctx context.Context, input funding.AddMilestoneInput) error
	RemoveMilestone(ctx context.Context, eventID uint64, index int) error

	GetEvent(ctx context.Context, eventID uint64) (*domain.Event, error)
	ListActiveEvents(ctx context.Context) []domain.Event
	GetMilestones(ctx context.Context, eventID uint64) []domain.Milestone
	GetContribution(ctx context.Context, eventID uint64, contributor string) uint64
}

// notificationBrowser reads the notification feed. Implemented by both the
// in-memory log and the PostgreSQL archive.
type notificationBrowser interface {
	ListByEvent(ctx context.Context, eventID uint64, limit int) ([]domain.Notification, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.Notification, error)
}

// tokenIssuer mints access tokens for the dev token endpoint.
type tokenIssuer interface {
	GenerateAccessToken(wallet string) (string, error)
}

// tokenValidator checks bearer tokens and returns the wallet address.
type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

// dbPinger is the minimal interface for archive health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}
