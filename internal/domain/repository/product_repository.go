package repository

import (
	"context"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	// List returns the whole catalog sorted by name.
	List(ctx context.Context) ([]entity.Product, error)
	Delete(ctx context.Context, id uint) error
}

// MeterPriceRepository defines the interface for per-meter price configuration
type MeterPriceRepository interface {
	// List returns all configured prices sorted by material.
	List(ctx context.Context) ([]entity.MeterPrice, error)
	// ReplaceAll swaps the full configuration atomically.
	ReplaceAll(ctx context.Context, prices []entity.MeterPrice) error
}
