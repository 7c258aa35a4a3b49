package enum

// PaymentMethod represents how a payment was received
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "Efectivo"
	PaymentMethodTransfer    PaymentMethod = "Transferencia"
	PaymentMethodCard        PaymentMethod = "Tarjeta"
	PaymentMethodMercadoPago PaymentMethod = "MercadoPago"
)

// IsValid reports whether the method is one of the accepted values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCard, PaymentMethodMercadoPago:
		return true
	}
	return false
}

// RequiresInstallments reports whether the method carries installment terms.
// Only card payments do.
func (m PaymentMethod) RequiresInstallments() bool {
	return m == PaymentMethodCard
}
