package entity

import (
	"encoding/json"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/enum"
)

// Payment records money received against an order after creation
type Payment struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	OrderID           uint               `gorm:"not null;index" json:"pedido_id"`
	Method            enum.PaymentMethod `gorm:"size:50;not null" json:"metodo"`
	AmountPaid        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Installments      *int               `json:"cuotas,omitempty"`
	InstallmentAmount *int64             `json:"-"` // Stored in cents, excluded from JSON
	PaymentDate       time.Time          `gorm:"type:date;not null" json:"-"`
	CreatedAt         time.Time          `json:"created_at"`

	// Relationships
	Order    Order     `gorm:"foreignKey:OrderID" json:"-"`
	Receipts []Receipt `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE" json:"comprobantes,omitempty"`
}

// MarshalJSON custom marshaler: cents to decimal, payment date as a bare
// calendar date.
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	var perInstallment *float64
	if p.InstallmentAmount != nil {
		v := float64(*p.InstallmentAmount) / 100
		perInstallment = &v
	}
	return json.Marshal(&struct {
		Alias
		AmountPaid        float64  `json:"monto_pagado"`
		InstallmentAmount *float64 `json:"monto_cuota,omitempty"`
		PaymentDate       string   `json:"fecha_pago"`
	}{
		Alias:             Alias(p),
		AmountPaid:        float64(p.AmountPaid) / 100,
		InstallmentAmount: perInstallment,
		PaymentDate:       p.PaymentDate.Format("2006-01-02"),
	})
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "pagos"
}

// Receipt is an uploaded proof-of-payment file attached to a payment
type Receipt struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PaymentID    uint      `gorm:"not null;index" json:"pago_id"`
	StoredName   string    `gorm:"size:255;uniqueIndex;not null" json:"stored_name"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	MimeType     string    `gorm:"size:100;not null" json:"mime_type"`
	Size         int64     `gorm:"not null" json:"size"`
	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`

	// Relationships
	Payment Payment `gorm:"foreignKey:PaymentID" json:"-"`
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "comprobantes"
}
