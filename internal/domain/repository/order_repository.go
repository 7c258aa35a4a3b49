package repository

import (
	"context"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/pkg/pagination"
)

// OrderFilterParams holds filter parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	State      *enum.OrderState
	Customer   string
	// IncludeInactive lifts the default active-only filter
	IncludeInactive bool
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Create persists the order together with its line items in one transaction.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetWithDetails(ctx context.Context, id uint) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// HardDelete removes the order and all owned items, payments and receipts.
	HardDelete(ctx context.Context, id uint) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
}
