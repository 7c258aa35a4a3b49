package repository

import (
	"context"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
)

// PaymentRepository defines the interface for payment ledger data access
type PaymentRepository interface {
	// Create persists the payment and any attached receipts in one transaction.
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uint) (*entity.Payment, error)
	// Delete removes the payment and its receipts. It touches nothing else,
	// so a replacement payment can be added immediately afterwards.
	Delete(ctx context.Context, id uint) error
	GetReceiptByStoredName(ctx context.Context, storedName string) (*entity.Receipt, error)
}
