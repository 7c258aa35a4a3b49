package service

import (
	"context"
	"io"
	"log"
	"math"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

// AllowedReceiptTypes is the MIME allow-list for receipt uploads
var AllowedReceiptTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
}

// ReceiptStore abstracts where receipt binaries live
type ReceiptStore interface {
	Save(originalName string, r io.Reader) (storedName string, size int64, err error)
	Open(storedName string) (io.ReadCloser, error)
	Remove(storedName string) error
}

// PaymentService handles the payment ledger of an order
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	store       ReceiptStore
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	store ReceiptStore,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		store:       store,
	}
}

// ReceiptUpload carries an uploaded receipt file into the service
type ReceiptUpload struct {
	OriginalName string
	ContentType  string
	Data         io.Reader
}

// AddPaymentInput is the typed input for recording a payment
type AddPaymentInput struct {
	OrderID           uint
	Method            string
	Date              string // YYYY-MM-DD
	Amount            float64
	Installments      *int
	InstallmentAmount *float64
	Receipt           *ReceiptUpload
}

// AddPayment validates and records a payment against an order, optionally
// persisting an attached receipt. Card payments must carry installment terms;
// every other method has them discarded.
func (s *PaymentService) AddPayment(ctx context.Context, input *AddPaymentInput) (*entity.Payment, error) {
	method := enum.PaymentMethod(input.Method)
	if input.Method == "" || !method.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, apperror.NewBadRequestError("Payment date must be YYYY-MM-DD")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	var installments *int
	var installmentAmount *int64
	if method.RequiresInstallments() {
		if input.Installments == nil || *input.Installments < 1 {
			return nil, apperror.NewBadRequestError("Card payments require at least one installment")
		}
		if input.InstallmentAmount == nil || *input.InstallmentAmount <= 0 {
			return nil, apperror.NewBadRequestError("Card payments require a positive installment amount")
		}
		installments = input.Installments
		cents := int64(math.Round(*input.InstallmentAmount * 100))
		installmentAmount = &cents
	}

	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	payment := &entity.Payment{
		OrderID:           order.ID,
		Method:            method,
		AmountPaid:        int64(math.Round(input.Amount * 100)),
		Installments:      installments,
		InstallmentAmount: installmentAmount,
		PaymentDate:       date,
	}

	var storedName string
	if input.Receipt != nil {
		if !AllowedReceiptTypes[input.Receipt.ContentType] {
			return nil, apperror.NewUnsupportedMediaTypeError(input.Receipt.ContentType)
		}

		name, size, err := s.store.Save(input.Receipt.OriginalName, input.Receipt.Data)
		if err != nil {
			return nil, apperror.NewStorageError(err)
		}
		storedName = name

		payment.Receipts = []entity.Receipt{{
			StoredName:   storedName,
			OriginalName: input.Receipt.OriginalName,
			MimeType:     input.Receipt.ContentType,
			Size:         size,
		}}
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if storedName != "" {
			if rmErr := s.store.Remove(storedName); rmErr != nil {
				log.Printf("Warning: failed to remove orphaned receipt file %s: %v", storedName, rmErr)
			}
		}
		return nil, err
	}

	return payment, nil
}

// RemovePayment deletes a payment and its receipts. It leaves the order and
// the rest of the ledger alone; a new payment can be added right after.
func (s *PaymentService) RemovePayment(ctx context.Context, id uint) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	for _, receipt := range payment.Receipts {
		if err := s.store.Remove(receipt.StoredName); err != nil {
			log.Printf("Warning: failed to remove receipt file %s: %v", receipt.StoredName, err)
		}
	}
	return nil
}

// OpenReceipt looks up a stored receipt and opens its binary for download
func (s *PaymentService) OpenReceipt(ctx context.Context, storedName string) (*entity.Receipt, io.ReadCloser, error) {
	receipt, err := s.paymentRepo.GetReceiptByStoredName(ctx, storedName)
	if err != nil {
		return nil, nil, err
	}
	if receipt == nil {
		return nil, nil, apperror.NewNotFoundError("Receipt")
	}

	f, err := s.store.Open(receipt.StoredName)
	if err != nil {
		return nil, nil, apperror.NewStorageError(err)
	}
	return receipt, f, nil
}
