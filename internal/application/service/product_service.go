package service

import (
	"context"
	"math"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

// ProductService handles the product catalog
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput is the typed input for adding a catalog entry
type CreateProductInput struct {
	Name     string
	Material string
	Price    float64
	PerMeter bool
}

// CreateProduct adds a catalog entry. Per-meter products store price 0; their
// price is resolved from the per-meter configuration at quoting time.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.Material == "" {
		return nil, apperror.NewBadRequestError("Name and material are required")
	}

	var priceCents int64
	if !input.PerMeter {
		if input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		priceCents = int64(math.Round(input.Price * 100))
	}

	product := &entity.Product{
		Name:     input.Name,
		Material: input.Material,
		Price:    priceCents,
		PerMeter: input.PerMeter,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts returns the whole catalog sorted by name
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// DeleteProduct removes a catalog entry
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}
