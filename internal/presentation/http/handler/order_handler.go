package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/application/service"
	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/request"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/response"
	"github.com/tallersur/pedidos-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing active orders with optional state and customer filters
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Customer: c.Query("cliente"),
	}

	if stateStr := c.Query("estado"); stateStr != "" && stateStr != "TODOS" {
		state, err := enum.ParseOrderState(stateStr)
		if err != nil {
			response.BadRequest(c, "Invalid order state: "+stateStr)
			return
		}
		params.State = &state
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Create handles quote-to-order conversion
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.CreateOrderInput{
		Customer:    req.Customer,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Notes:       req.Notes,
		PaymentType: req.PaymentType,
		Deposit:     req.Deposit,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Meters:    item.Meters,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// orderDetail carries the order together with its derived balance figures
type orderDetail struct {
	Order      *entity.Order `json:"pedido"`
	TotalPaid  float64       `json:"total_pagado"`
	AmountOwed float64       `json:"debe"`
}

// Get handles retrieving a single order with items, payments and balance
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", orderDetail{
		Order:      order,
		TotalPaid:  float64(order.TotalPaid()) / 100,
		AmountOwed: float64(order.AmountOwed()) / 100,
	})
}

// ChangeState handles moving an order between PENDIENTE, EN_CURSO and
// FINALIZADO
func (h *OrderHandler) ChangeState(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.ChangeStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order, err := h.orderService.ChangeState(c.Request.Context(), id, req.State)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, gin.H{
		"ok":           true,
		"estado":       order.State,
		"fecha_estado": order.StateTimestamp(),
	})
}

// Delete handles deleting an order: hard for PENDIENTE/EN_CURSO, soft for
// FINALIZADO
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
