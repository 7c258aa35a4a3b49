package request

// CreateOrderRequest is the typed body for quote-to-order conversion,
// replacing the loose form dictionaries of the legacy web app.
type CreateOrderRequest struct {
	Customer    string                   `json:"cliente" binding:"required"`
	Phone       string                   `json:"telefono" binding:"required"`
	Email       string                   `json:"email" binding:"omitempty,email"`
	Address     string                   `json:"direccion" binding:"required"`
	Notes       *string                  `json:"observaciones"`
	PaymentType string                   `json:"forma_pago"`
	Deposit     *float64                 `json:"monto_sena"`
	Items       []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemRequest is one selected product with its quantity and,
// for per-meter products, the length in meters.
type CreateOrderItemRequest struct {
	ProductID uint     `json:"producto_id" binding:"required"`
	Quantity  int      `json:"cantidad" binding:"required,min=1"`
	Meters    *float64 `json:"metros" binding:"omitempty,gt=0"`
}

// ChangeStateRequest is the body for state transitions
type ChangeStateRequest struct {
	State string `json:"estado" binding:"required"`
}
