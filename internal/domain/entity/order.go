package entity

import (
	"encoding/json"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/enum"
)

// Order represents a confirmed customer order built from the quote builder
type Order struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Customer     string          `gorm:"size:150;not null" json:"cliente"`
	Phone        string          `gorm:"size:50" json:"telefono"`
	Email        string          `gorm:"size:120" json:"email,omitempty"`
	Address      string          `gorm:"size:200" json:"direccion"`
	Notes        *string         `gorm:"type:text" json:"observaciones,omitempty"`
	Total        int64           `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	State        enum.OrderState `gorm:"default:0" json:"estado"`
	PaymentType  string          `gorm:"size:50" json:"forma_pago,omitempty"`
	HasDeposit   bool            `gorm:"default:false" json:"tiene_sena"`
	Deposit      *int64          `json:"-"` // Stored in cents, excluded from JSON
	Active       bool            `gorm:"default:true" json:"activo"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	PendingAt    *time.Time      `json:"pendiente_at,omitempty"`
	InProgressAt *time.Time      `json:"en_curso_at,omitempty"`
	FinalizedAt  *time.Time      `json:"finalizado_at,omitempty"`

	// Relationships
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"pagos,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	var deposit *float64
	if o.Deposit != nil {
		d := float64(*o.Deposit) / 100
		deposit = &d
	}
	return json.Marshal(&struct {
		Alias
		Total   float64  `json:"total"`
		Deposit *float64 `json:"monto_sena,omitempty"`
	}{
		Alias:   Alias(o),
		Total:   float64(o.Total) / 100,
		Deposit: deposit,
	})
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "pedidos"
}

// DepositOrZero returns the deposit in cents, treating absent as zero.
func (o *Order) DepositOrZero() int64 {
	if o.Deposit == nil {
		return 0
	}
	return *o.Deposit
}

// TotalPaid sums the amounts of every payment recorded against the order.
// Payments must be loaded.
func (o *Order) TotalPaid() int64 {
	var paid int64
	for _, p := range o.Payments {
		paid += p.AmountPaid
	}
	return paid
}

// AmountOwed derives the outstanding balance in cents:
// total minus deposit minus everything paid so far.
// A negative result means the customer overpaid and is not an error.
func (o *Order) AmountOwed() int64 {
	return o.Total - o.DepositOrZero() - o.TotalPaid()
}

// EnterState moves the order into s and stamps that state's timestamp.
// A same-state request is a no-op and leaves every timestamp untouched.
// Reports whether the order changed.
func (o *Order) EnterState(s enum.OrderState, now time.Time) bool {
	if s == o.State {
		return false
	}
	o.State = s
	switch s {
	case enum.OrderStatePending:
		o.PendingAt = &now
	case enum.OrderStateInProgress:
		o.InProgressAt = &now
	case enum.OrderStateFinalized:
		o.FinalizedAt = &now
	}
	return true
}

// StateTimestamp returns the timestamp recorded for the order's current state.
func (o *Order) StateTimestamp() *time.Time {
	switch o.State {
	case enum.OrderStatePending:
		return o.PendingAt
	case enum.OrderStateInProgress:
		return o.InProgressAt
	case enum.OrderStateFinalized:
		return o.FinalizedAt
	}
	return nil
}

// OrderItem represents a priced line item within an order
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"pedido_id"`
	Description string    `gorm:"size:255;not null" json:"descripcion"`
	Quantity    int       `gorm:"not null;default:1" json:"cantidad"`
	Meters      *float64  `json:"metros,omitempty"`
	Subtotal    int64     `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (it OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
	}{
		Alias:    Alias(it),
		Subtotal: float64(it.Subtotal) / 100,
	})
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "pedido_items"
}
