package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/apperror"
	"github.com/tallersur/pedidos-api/pkg/pagination"
)

// OrderService handles the order lifecycle: creation from the quote builder,
// state transitions, listing and deletion.
type OrderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	meterPriceRepo repository.MeterPriceRepository
	store          ReceiptStore
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	meterPriceRepo repository.MeterPriceRepository,
	store ReceiptStore,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		meterPriceRepo: meterPriceRepo,
		store:          store,
	}
}

// OrderItemInput is one selected product in the quote
type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Meters    *float64
}

// CreateOrderInput is the typed input for quote-to-order conversion
type CreateOrderInput struct {
	Customer    string
	Phone       string
	Email       string
	Address     string
	Notes       *string
	PaymentType string
	Deposit     *float64
	Items       []OrderItemInput
}

// CreateOrder prices every selected product, builds the line items and writes
// the order atomically. The order starts in PENDIENTE.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.Customer == "" || input.Phone == "" {
		return nil, apperror.NewBadRequestError("Customer name and phone are required")
	}
	if input.Address == "" {
		return nil, apperror.NewBadRequestError("Address is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("At least one product must be selected")
	}

	var deposit *int64
	if input.Deposit != nil {
		if *input.Deposit <= 0 {
			return nil, apperror.NewBadRequestError("Deposit amount must be positive")
		}
		if input.PaymentType == "" {
			return nil, apperror.NewBadRequestError("Deposit requires a payment method")
		}
		cents := int64(math.Round(*input.Deposit * 100))
		deposit = &cents
	}

	// Batch fetch all products in one query
	productIDs := make([]uint, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	meterPrices, err := s.meterPriceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	pricePerMeter := make(map[string]int64, len(meterPrices))
	for _, mp := range meterPrices {
		pricePerMeter[mp.Material] = mp.Price
	}

	var total int64
	items := make([]entity.OrderItem, 0, len(input.Items))

	for _, in := range input.Items {
		product, exists := productMap[in.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %d", in.ProductID))
		}

		quantity := in.Quantity
		if quantity < 1 {
			return nil, apperror.NewBadRequestError("Quantity must be at least 1")
		}

		var item entity.OrderItem
		if product.PerMeter {
			meters := 1.0
			if in.Meters != nil {
				meters = *in.Meters
			}
			if meters <= 0 {
				return nil, apperror.NewBadRequestError("Meters must be positive")
			}
			unitPrice := pricePerMeter[product.Material]
			subtotal := int64(math.Round(float64(quantity) * meters * float64(unitPrice)))
			item = entity.OrderItem{
				Description: fmt.Sprintf("%s - %s (%sm x $%s)",
					product.Name, product.Material, formatMeters(meters), formatAmount(unitPrice)),
				Quantity: quantity,
				Meters:   &meters,
				Subtotal: subtotal,
			}
		} else {
			subtotal := int64(quantity) * product.Price
			item = entity.OrderItem{
				Description: fmt.Sprintf("%s - %s ($%s)",
					product.Name, product.Material, formatAmount(product.Price)),
				Quantity: quantity,
				Subtotal: subtotal,
			}
		}

		total += item.Subtotal
		items = append(items, item)
	}

	now := time.Now()
	order := &entity.Order{
		Customer:    input.Customer,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Notes:       input.Notes,
		Total:       total,
		State:       enum.OrderStatePending,
		PaymentType: input.PaymentType,
		HasDeposit:  deposit != nil,
		Deposit:     deposit,
		Active:      true,
		PendingAt:   &now,
		Items:       items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetOrder retrieves an order with its items, payments and receipts
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists active orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ChangeState applies a state transition. Any of the three states can be
// reached from any other; a same-state request changes nothing. Values
// outside the known set fail and leave the order unmodified.
func (s *OrderService) ChangeState(ctx context.Context, id uint, state string) (*entity.Order, error) {
	target, err := enum.ParseOrderState(state)
	if err != nil {
		return nil, apperror.NewInvalidStateError(state)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if !order.EnterState(target, time.Now()) {
		return order, nil
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes a PENDIENTE or EN_CURSO order outright, cascading to
// items, payments and receipt files. A FINALIZADO order keeps its history and
// is only flagged inactive.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.State == enum.OrderStateFinalized {
		order.Active = false
		return s.orderRepo.Update(ctx, order)
	}

	if err := s.orderRepo.HardDelete(ctx, id); err != nil {
		return err
	}

	// Receipt binaries are cleaned up best-effort once the rows are gone
	if s.store != nil {
		for _, payment := range order.Payments {
			for _, receipt := range payment.Receipts {
				if err := s.store.Remove(receipt.StoredName); err != nil {
					log.Printf("Warning: failed to remove receipt file %s: %v", receipt.StoredName, err)
				}
			}
		}
	}
	return nil
}

// formatAmount renders cents as a decimal without trailing zeros, matching
// the description strings the quote builder has always produced.
func formatAmount(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', -1, 64)
}

func formatMeters(meters float64) string {
	return strconv.FormatFloat(meters, 'f', -1, 64)
}
