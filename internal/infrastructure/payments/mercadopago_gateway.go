package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"bahia_gestao/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

const (
	sandboxStatus       = "approved"
	sandboxStatusDetail = "accredited"
)

// MercadoPagoGateway charges budget payments. With sandbox set no call leaves
// the process: the payment is accepted on the spot.
type MercadoPagoGateway struct {
	client  payment.Client
	sandbox bool
	now     func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway needs an access token unless sandbox is set
// (PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK).
func NewMercadoPagoGateway(accessToken string, sandbox bool) (*MercadoPagoGateway, error) {
	if sandbox {
		log.Printf("[payment][gateway] sandbox enabled, payments are approved locally")
		return &MercadoPagoGateway{sandbox: true, now: time.Now}, nil
	}
	if accessToken == "" {
		log.Printf("[payment][gateway] init failed err=%v", ErrMissingMercadoPagoAccessToken)
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] init failed err=%v", err)
		return nil, fmt.Errorf("mercado pago config: %w", err)
	}
	log.Printf("[payment][gateway] mercado pago client ready")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	switch {
	case g != nil && g.sandbox:
		return g.approveLocally(requestPayload)
	case g == nil || g.client == nil:
		log.Printf("[payment][gateway] charge refused err=%v", ErrMercadoPagoGatewayNotConfigured)
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[payment][gateway] bad request body err=%v", err)
		return "", "", nil, fmt.Errorf("decode payment request: %w", err)
	}
	log.Printf("[payment][gateway] charge start amount=%.2f reference=%s", req.TransactionAmount, req.ExternalReference)

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] charge failed reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode provider response: %w", err)
	}
	log.Printf("[payment][gateway] charge done provider_payment_id=%d status=%s", resp.ID, resp.Status)
	return strconv.Itoa(resp.ID), resp.Status, raw, nil
}

// approveLocally answers with the request body plus the fields a real
// approval carries. A body that is not a JSON object is kept as a string
// under request_payload_raw. Dates sent by the caller win.
func (g *MercadoPagoGateway) approveLocally(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	fields := map[string]any{}
	if len(requestPayload) > 0 {
		if err := json.Unmarshal(requestPayload, &fields); err != nil || fields == nil {
			fields = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	at := g.now().UTC()
	id := strconv.FormatInt(at.UnixNano(), 10)
	fields["id"] = id
	fields["status"] = sandboxStatus
	fields["status_detail"] = sandboxStatusDetail
	for _, key := range []string{"date_created", "date_approved"} {
		if _, ok := fields[key]; !ok {
			fields[key] = at.Format(time.RFC3339Nano)
		}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", "", nil, fmt.Errorf("encode sandbox response: %w", err)
	}
	log.Printf("[payment][gateway] sandbox approved provider_payment_id=%s", id)
	return id, sandboxStatus, raw, nil
}
