package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/application/service"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/request"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/response"
)

// PricingHandler handles per-meter price configuration HTTP requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// List handles listing the configured per-meter prices
func (h *PricingHandler) List(c *gin.Context) {
	prices, err := h.pricingService.ListPrices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prices retrieved successfully", prices)
}

// Replace handles swapping the full price configuration
func (h *PricingHandler) Replace(c *gin.Context) {
	var req request.ReplacePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	inputs := make([]service.MeterPriceInput, 0, len(req.Prices))
	for _, row := range req.Prices {
		inputs = append(inputs, service.MeterPriceInput{
			Material: row.Material,
			Price:    row.Price,
		})
	}

	prices, err := h.pricingService.ReplacePrices(c.Request.Context(), inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Prices updated successfully", prices)
}
