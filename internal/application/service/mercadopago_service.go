package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

// PaymentGateway abstracts the electronic payment provider
type PaymentGateway interface {
	CreatePayment(ctx context.Context, payload json.RawMessage) (providerID string, status string, response json.RawMessage, err error)
}

// MercadoPagoService collects an order's outstanding balance electronically
// and records the result in the payment ledger.
type MercadoPagoService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	gateway     PaymentGateway
}

// NewMercadoPagoService creates a new MercadoPago collection service.
// The gateway may be nil when no access token is configured.
func NewMercadoPagoService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
) *MercadoPagoService {
	return &MercadoPagoService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}
}

// CollectResult reports the provider outcome and, when the payment was
// approved, the ledger entry created for it.
type CollectResult struct {
	ProviderID string `json:"mp_id"`
	Status     string `json:"status"`
	PaymentID  *uint  `json:"pago_id,omitempty"`
}

// CollectBalance charges the order's current amount owed through MercadoPago.
// The payload carries the payer/card fields assembled by the front end; the
// amount and external reference are filled in here from the order.
func (s *MercadoPagoService) CollectBalance(ctx context.Context, orderID uint, payload json.RawMessage) (*CollectResult, error) {
	if s.gateway == nil {
		return nil, apperror.NewAppError(http.StatusServiceUnavailable, "MercadoPago is not configured")
	}

	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	owed := order.AmountOwed()
	if owed <= 0 {
		return nil, apperror.NewBadRequestError("Order has no outstanding balance")
	}

	fields := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &fields); err != nil {
			return nil, apperror.NewBadRequestError("Invalid payment payload")
		}
	}
	fields["transaction_amount"] = float64(owed) / 100
	fields["external_reference"] = fmt.Sprintf("pedido-%d", order.ID)
	if _, ok := fields["description"]; !ok {
		fields["description"] = fmt.Sprintf("Saldo pedido #%d - %s", order.ID, order.Customer)
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	providerID, status, _, err := s.gateway.CreatePayment(ctx, body)
	if err != nil {
		return nil, apperror.NewAppError(http.StatusBadGateway, "MercadoPago payment failed: "+err.Error())
	}

	result := &CollectResult{ProviderID: providerID, Status: status}
	if status != "approved" {
		return result, nil
	}

	payment := &entity.Payment{
		OrderID:     order.ID,
		Method:      enum.PaymentMethodMercadoPago,
		AmountPaid:  owed,
		PaymentDate: time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	result.PaymentID = &payment.ID

	return result, nil
}
