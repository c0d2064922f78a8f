package transfer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhook_Transfer(t *testing.T) {
	t.Parallel()

	var got webhookRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	wh := NewWebhook(discardLogger(), srv.URL, 5*time.Second)
	if err := wh.Transfer(context.Background(), "0xalice", 42); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	if got.To != "0xalice" || got.Amount != 42 {
		t.Errorf("request = %+v, want to=0xalice amount=42", got)
	}
}

func TestWebhook_Transfer_GatewayError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "insufficient gateway balance", http.StatusBadGateway)
	}))
	defer srv.Close()

	wh := NewWebhook(discardLogger(), srv.URL, 5*time.Second)
	if err := wh.Transfer(context.Background(), "0xalice", 42); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}

func TestWebhook_Transfer_ConnectionRefused(t *testing.T) {
	t.Parallel()

	wh := NewWebhook(discardLogger(), "http://127.0.0.1:1", time.Second)
	if err := wh.Transfer(context.Background(), "0xalice", 1); err == nil {
		t.Fatal("expected error when gateway is unreachable")
	}
}

func TestLedgerOnly_Transfer(t *testing.T) {
	t.Parallel()

	lo := NewLedgerOnly(discardLogger())
	if err := lo.Transfer(context.Background(), "0xalice", 7); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
}
