package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tallersur/pedidos-api/internal/application/service"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/request"
	"github.com/tallersur/pedidos-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment ledger HTTP requests
type PaymentHandler struct {
	paymentService     *service.PaymentService
	mercadoPagoService *service.MercadoPagoService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, mercadoPagoService *service.MercadoPagoService) *PaymentHandler {
	return &PaymentHandler{
		paymentService:     paymentService,
		mercadoPagoService: mercadoPagoService,
	}
}

// Create handles recording a payment against an order, with an optional
// receipt file in the "comprobante" multipart field
func (h *PaymentHandler) Create(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req request.AddPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.AddPaymentInput{
		OrderID:           orderID,
		Method:            req.Method,
		Date:              req.Date,
		Amount:            req.Amount,
		Installments:      req.Installments,
		InstallmentAmount: req.InstallmentAmount,
	}

	if file, err := c.FormFile("comprobante"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			response.Error(c, err)
			return
		}
		defer f.Close()

		input.Receipt = &service.ReceiptUpload{
			OriginalName: file.Filename,
			ContentType:  file.Header.Get("Content-Type"),
			Data:         f,
		}
	}

	payment, err := h.paymentService.AddPayment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	var receiptURL *string
	if len(payment.Receipts) > 0 {
		url := "/api/v1/comprobantes/" + payment.Receipts[0].StoredName
		receiptURL = &url
	}

	c.JSON(201, gin.H{
		"ok":              true,
		"pago_id":         payment.ID,
		"comprobante_url": receiptURL,
	})
}

// Delete handles removing a payment and its receipts from the ledger
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.RemovePayment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true})
}

// DownloadReceipt streams a stored receipt with its recorded MIME type
func (h *PaymentHandler) DownloadReceipt(c *gin.Context) {
	storedName := c.Param("filename")

	receipt, f, err := h.paymentService.OpenReceipt(c.Request.Context(), storedName)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	c.DataFromReader(200, receipt.Size, receipt.MimeType, f, map[string]string{
		"Content-Disposition": `inline; filename="` + receipt.OriginalName + `"`,
	})
}

// CollectMercadoPago charges the order's outstanding balance through
// MercadoPago and records the approved payment in the ledger
func (h *PaymentHandler) CollectMercadoPago(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Unable to read request body")
		return
	}

	result, err := h.mercadoPagoService.CollectBalance(c.Request.Context(), orderID, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(201, gin.H{
		"ok":      true,
		"mp_id":   result.ProviderID,
		"status":  result.Status,
		"pago_id": result.PaymentID,
	})
}
