package mercadopago

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	sdkconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// ErrMissingAccessToken is returned when the gateway is constructed without
// credentials.
var ErrMissingAccessToken = errors.New("missing MercadoPago access token")

// Gateway wraps the MercadoPago payments API
type Gateway struct {
	client payment.Client
}

// NewGateway initializes the MercadoPago SDK client
func NewGateway(accessToken string) (*Gateway, error) {
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := sdkconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create MercadoPago SDK config: %w", err)
	}

	log.Println("MercadoPago client initialized")
	return &Gateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment submits a payment request to MercadoPago. The payload is the
// caller-assembled request body; the provider's id, status and full response
// come back for ledger bookkeeping.
func (g *Gateway) CreatePayment(ctx context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return "", "", nil, fmt.Errorf("invalid MercadoPago payload: %w", err)
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		return "", "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}

	return fmt.Sprintf("%d", resp.ID), resp.Status, raw, nil
}
