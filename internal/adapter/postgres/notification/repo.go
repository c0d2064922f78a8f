// Package notification implements the notification archive using PostgreSQL.
// The archive is append-only: the funding service publishes committed
// notification batches into it, and read endpoints page through history.
package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/ahsanali17/crowdfund-backend/internal/adapter/postgres"
	"github.com/ahsanali17/crowdfund-backend/internal/domain"
)

const table = "notifications"

var columns = []string{
	"id",
	"kind",
	"event_id",
	"actor",
	"amount",
	"milestone_index",
	"milestone_completed",
	"status",
	"created_at",
}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
	b squirrel.StatementBuilderType
}

// New creates a new notification repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		q: q,
		b: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Publish appends a committed notification batch to the archive. The whole
// batch goes in one INSERT so a partial write cannot happen.
func (r *Repo) Publish(ctx context.Context, batch []domain.Notification) error {
	if len(batch) == 0 {
		return nil
	}

	insert := r.b.Insert(table).Columns(columns...)
	for _, n := range batch {
		var status *string
		if n.Status != nil {
			s := n.Status.String()
			status = &s
		}
		insert = insert.Values(
			n.ID,
			string(n.Kind),
			int64(n.EventID),
			n.Actor,
			int64(n.Amount),
			n.MilestoneIndex,
			n.MilestoneCompleted,
			status,
			n.CreatedAt,
		)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("notifications: build insert: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return mapError(err, "insert batch")
	}

	return nil
}

// ListByEvent returns the archived notifications for one event, oldest
// first, limited to `limit` records.
func (r *Repo) ListByEvent(ctx context.Context, eventID uint64, limit int) ([]domain.Notification, error) {
	query := r.b.Select(columns...).
		From(table).
		Where(squirrel.Eq{"event_id": int64(eventID)}).
		OrderBy("created_at ASC, id ASC").
		Limit(uint64(limit))

	return r.list(ctx, query, "list by event")
}

// ListRecent returns the newest archived notifications across all events
// with offset pagination.
func (r *Repo) ListRecent(ctx context.Context, limit, offset int) ([]domain.Notification, error) {
	query := r.b.Select(columns...).
		From(table).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.list(ctx, query, "list recent")
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder, op string) ([]domain.Notification, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("notifications: build %s: %w", op, err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, op)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("notifications: %s: %w", op, err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, op)
	}

	return out, nil
}

func scanNotification(rows pgx.Rows) (domain.Notification, error) {
	var (
		n       domain.Notification
		kind    string
		eventID int64
		amount  int64
		status  *string
	)
	err := rows.Scan(
		&n.ID,
		&kind,
		&eventID,
		&n.Actor,
		&amount,
		&n.MilestoneIndex,
		&n.MilestoneCompleted,
		&status,
		&n.CreatedAt,
	)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("scan row: %w", err)
	}

	n.Kind = domain.NotificationKind(kind)
	n.EventID = uint64(eventID)
	n.Amount = uint64(amount)
	if status != nil {
		s := domain.EventStatus(*status)
		n.Status = &s
	}

	return n, nil
}

// mapError wraps pgx errors with operation context. Context cancellation
// passes through unchanged so callers can test for it.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("notifications: %s: %w", op, err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("notifications: %s: %w", op, domain.ErrEventNotFound)
	}
	return fmt.Errorf("notifications: %s: %w", op, err)
}
