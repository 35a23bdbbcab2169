package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewMercadoPagoGateway_RequiresTokenOutsideMockMode(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true)
	if err != nil || g == nil {
		t.Fatalf("mock mode must not need a token, err=%v", err)
	}
}

func TestMercadoPagoGateway_MockApprovesAndEchoes(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)
	g.now = func() time.Time { return time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC) }

	id, status, body, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":800,"date_created":"2024-06-30T00:00:00Z"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result id=%q status=%q", id, status)
	}

	var resp map[string]any
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp["transaction_amount"] != float64(800) || resp["id"] != id {
		t.Fatalf("payload must be echoed with the id: %v", resp)
	}
	if resp["date_created"] != "2024-06-30T00:00:00Z" || resp["date_approved"] != "2024-07-01T10:00:00Z" {
		t.Fatalf("unexpected dates: %v", resp)
	}
}

func TestMercadoPagoGateway_MockKeepsInvalidPayloadRaw(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true)

	_, _, body, err := g.CreatePayment(context.Background(), json.RawMessage(`not json`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var resp map[string]any
	_ = json.Unmarshal(body, &resp)
	if resp["request_payload_raw"] != "not json" {
		t.Fatalf("expected raw payload, got %v", resp)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected not configured, got %v", err)
	}
}
