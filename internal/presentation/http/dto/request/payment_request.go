package request

// AddPaymentRequest is the multipart form for recording a payment.
// The optional receipt file travels separately as the "comprobante" part.
type AddPaymentRequest struct {
	Method            string   `form:"metodo" binding:"required"`
	Date              string   `form:"fecha_pago" binding:"required"`
	Amount            float64  `form:"monto_pagado" binding:"required"`
	Installments      *int     `form:"cuotas"`
	InstallmentAmount *float64 `form:"monto_cuota"`
}
