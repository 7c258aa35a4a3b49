package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

func TestPricingService_ReplacePrices(t *testing.T) {
	repo := &mockMeterPriceRepo{}
	svc := NewPricingService(repo)

	prices, err := svc.ReplacePrices(context.Background(), []MeterPriceInput{
		{Material: "Melamina", Price: 7000},
		{Material: "  Paraíso  ", Price: 9500.50},
	})
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "Melamina", prices[0].Material)
	assert.Equal(t, int64(700000), prices[0].Price)
	assert.Equal(t, "Paraíso", prices[1].Material) // material names are trimmed
	assert.Equal(t, int64(950050), prices[1].Price)
}

func TestPricingService_ReplacePrices_SkipsBlankRows(t *testing.T) {
	repo := &mockMeterPriceRepo{}
	svc := NewPricingService(repo)

	prices, err := svc.ReplacePrices(context.Background(), []MeterPriceInput{
		{Material: "Melamina", Price: 7000},
		{Material: "   ", Price: 100},
		{Material: "", Price: 200},
	})
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, "Melamina", prices[0].Material)
}

func TestPricingService_ReplacePrices_RejectsNegativePrice(t *testing.T) {
	repo := &mockMeterPriceRepo{prices: []entity.MeterPrice{newMeterPrice("Melamina", 700000)}}
	svc := NewPricingService(repo)

	_, err := svc.ReplacePrices(context.Background(), []MeterPriceInput{
		{Material: "Roble", Price: -1},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Existing configuration untouched on rejection
	kept, listErr := svc.ListPrices(context.Background())
	require.NoError(t, listErr)
	require.Len(t, kept, 1)
	assert.Equal(t, "Melamina", kept[0].Material)
}

func TestPricingService_ReplacePrices_RejectsDuplicateMaterial(t *testing.T) {
	repo := &mockMeterPriceRepo{}
	svc := NewPricingService(repo)

	_, err := svc.ReplacePrices(context.Background(), []MeterPriceInput{
		{Material: "Melamina", Price: 7000},
		{Material: "Melamina", Price: 8000},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
