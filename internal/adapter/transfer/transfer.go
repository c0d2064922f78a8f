// Package transfer provides Transferer implementations for the funding
// service: a webhook client that hands transfers to an external payment
// gateway, and a ledger-only mode that records them without moving value.
package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Webhook delivers transfers by POSTing them to a payment gateway endpoint.
// Any non-2xx response fails the transfer, which makes the enclosing ledger
// operation roll back.
type Webhook struct {
	endpoint string
	client   *http.Client
	log      *slog.Logger
}

// NewWebhook creates a webhook transferer with the given request timeout.
func NewWebhook(log *slog.Logger, endpoint string, timeout time.Duration) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log.With("component", "transfer"),
	}
}

type webhookRequest struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// Transfer posts the transfer to the gateway.
func (w *Webhook) Transfer(ctx context.Context, to string, amount uint64) error {
	body, err := json.Marshal(webhookRequest{To: to, Amount: amount})
	if err != nil {
		return fmt.Errorf("transfer: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("transfer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("transfer: gateway returned %d: %s", resp.StatusCode, snippet)
	}

	w.log.DebugContext(ctx, "transfer delivered",
		slog.String("to", to),
		slog.Uint64("amount", amount),
	)

	return nil
}

// LedgerOnly records transfers in the log without moving value. Used when
// no gateway endpoint is configured.
type LedgerOnly struct {
	log *slog.Logger
}

// NewLedgerOnly creates the ledger-only transferer.
func NewLedgerOnly(log *slog.Logger) *LedgerOnly {
	return &LedgerOnly{log: log.With("component", "transfer")}
}

// Transfer logs the transfer and succeeds.
func (l *LedgerOnly) Transfer(ctx context.Context, to string, amount uint64) error {
	l.log.InfoContext(ctx, "ledger-only transfer",
		slog.String("to", to),
		slog.Uint64("amount", amount),
	)
	return nil
}
