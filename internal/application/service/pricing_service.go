package service

import (
	"context"
	"math"
	"strings"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

// PricingService handles the per-meter price configuration
type PricingService struct {
	meterPriceRepo repository.MeterPriceRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(meterPriceRepo repository.MeterPriceRepository) *PricingService {
	return &PricingService{meterPriceRepo: meterPriceRepo}
}

// MeterPriceInput is one material row in the configuration screen
type MeterPriceInput struct {
	Material string
	Price    float64
}

// ListPrices returns the configured per-meter prices sorted by material
func (s *PricingService) ListPrices(ctx context.Context) ([]entity.MeterPrice, error) {
	return s.meterPriceRepo.List(ctx)
}

// ReplacePrices swaps the full configuration. Rows with a blank material are
// skipped; a negative price rejects the whole submission.
func (s *PricingService) ReplacePrices(ctx context.Context, inputs []MeterPriceInput) ([]entity.MeterPrice, error) {
	prices := make([]entity.MeterPrice, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))

	for _, in := range inputs {
		material := strings.TrimSpace(in.Material)
		if material == "" {
			continue
		}
		if in.Price < 0 {
			return nil, apperror.NewBadRequestError("Invalid price for " + material)
		}
		if seen[material] {
			return nil, apperror.NewBadRequestError("Duplicate material: " + material)
		}
		seen[material] = true

		prices = append(prices, entity.MeterPrice{
			Material: material,
			Price:    int64(math.Round(in.Price * 100)),
		})
	}

	if err := s.meterPriceRepo.ReplaceAll(ctx, prices); err != nil {
		return nil, err
	}
	return s.meterPriceRepo.List(ctx)
}
