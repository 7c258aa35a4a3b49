package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/pkg/apperror"
)

func newOrderServiceFixture(t *testing.T) (*OrderService, *mockOrderRepo, *mockProductRepo, *mockMeterPriceRepo, *fakeStore) {
	t.Helper()
	orderRepo := newMockOrderRepo()
	productRepo := newMockProductRepo()
	meterPriceRepo := &mockMeterPriceRepo{}
	store := newFakeStore()
	svc := NewOrderService(orderRepo, productRepo, meterPriceRepo, store)
	return svc, orderRepo, productRepo, meterPriceRepo, store
}

func seedCatalog(t *testing.T, productRepo *mockProductRepo, meterPriceRepo *mockMeterPriceRepo) (flatID, perMeterID uint) {
	t.Helper()
	ctx := context.Background()

	silla := newProduct("Silla", "Paraíso", 1500000, false) // $15000 flat
	require.NoError(t, productRepo.Create(ctx, silla))

	placard := newProduct("Placard", "Melamina", 0, true)
	require.NoError(t, productRepo.Create(ctx, placard))

	meterPriceRepo.prices = append(meterPriceRepo.prices, newMeterPrice("Melamina", 700000)) // $7000/m

	return silla.ID, placard.ID
}

func validOrderInput(items ...OrderItemInput) *CreateOrderInput {
	return &CreateOrderInput{
		Customer: "Juana Pérez",
		Phone:    "11-5555-0000",
		Address:  "Av. Siempreviva 742",
		Items:    items,
	}
}

func TestOrderService_CreateOrder_TotalsFromItems(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, perMeterID := seedCatalog(t, productRepo, meterPriceRepo)

	meters := 3.0
	order, err := svc.CreateOrder(context.Background(), validOrderInput(
		OrderItemInput{ProductID: perMeterID, Quantity: 2, Meters: &meters},
		OrderItemInput{ProductID: flatID, Quantity: 1},
	))
	require.NoError(t, err)

	// 2 x 3m x $7000 = $42000, plus one flat $15000
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(4200000), order.Items[0].Subtotal)
	assert.Equal(t, int64(1500000), order.Items[1].Subtotal)
	assert.Equal(t, int64(5700000), order.Total)

	assert.Equal(t, enum.OrderStatePending, order.State)
	assert.NotNil(t, order.PendingAt)
	assert.True(t, order.Active)
	assert.Contains(t, order.Items[0].Description, "Placard - Melamina")
	assert.Contains(t, order.Items[0].Description, "3m x $7000")
	assert.Contains(t, order.Items[1].Description, "($15000)")
}

func TestOrderService_CreateOrder_BalanceExample(t *testing.T) {
	// Worked example: one per-meter item (qty=2, 3m at $7000/m) gives a
	// $42000 order; with a $10000 deposit and a $15000 payment the customer
	// still owes $17000.
	svc, orderRepo, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	_, perMeterID := seedCatalog(t, productRepo, meterPriceRepo)

	meters := 3.0
	deposit := 10000.0
	input := validOrderInput(OrderItemInput{ProductID: perMeterID, Quantity: 2, Meters: &meters})
	input.Deposit = &deposit
	input.PaymentType = "Transferencia"

	order, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(4200000), order.Total)
	require.NotNil(t, order.Deposit)
	assert.Equal(t, int64(1000000), *order.Deposit)

	paymentRepo := newMockPaymentRepo(orderRepo)
	paySvc := NewPaymentService(paymentRepo, orderRepo, newFakeStore())
	_, err = paySvc.AddPayment(context.Background(), &AddPaymentInput{
		OrderID: order.ID,
		Method:  "Efectivo",
		Date:    "2025-03-10",
		Amount:  15000,
	})
	require.NoError(t, err)

	reloaded, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500000), reloaded.TotalPaid())
	assert.Equal(t, int64(1700000), reloaded.AmountOwed())
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	tests := []struct {
		name    string
		mutate  func(*CreateOrderInput)
		message string
	}{
		{"missing customer", func(in *CreateOrderInput) { in.Customer = "" }, "Customer name and phone are required"},
		{"missing phone", func(in *CreateOrderInput) { in.Phone = "" }, "Customer name and phone are required"},
		{"missing address", func(in *CreateOrderInput) { in.Address = "" }, "Address is required"},
		{"no items", func(in *CreateOrderInput) { in.Items = nil }, "At least one product must be selected"},
		{"deposit without method", func(in *CreateOrderInput) {
			d := 5000.0
			in.Deposit = &d
			in.PaymentType = ""
		}, "Deposit requires a payment method"},
		{"non-positive deposit", func(in *CreateOrderInput) {
			d := 0.0
			in.Deposit = &d
			in.PaymentType = "Efectivo"
		}, "Deposit amount must be positive"},
		{"zero quantity", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }, "Quantity must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1})
			tt.mutate(input)

			_, err := svc.CreateOrder(context.Background(), input)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	seedCatalog(t, productRepo, meterPriceRepo)

	_, err := svc.CreateOrder(context.Background(), validOrderInput(
		OrderItemInput{ProductID: 999, Quantity: 1},
	))
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestOrderService_ChangeState_FreeTransitions(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)
	firstPending := order.PendingAt

	// PENDIENTE -> FINALIZADO skips EN_CURSO entirely
	order, err = svc.ChangeState(context.Background(), order.ID, "FINALIZADO")
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStateFinalized, order.State)
	require.NotNil(t, order.FinalizedAt)

	// ...and straight back again, re-stamping the pending timestamp
	order, err = svc.ChangeState(context.Background(), order.ID, "PENDIENTE")
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatePending, order.State)
	require.NotNil(t, order.PendingAt)
	assert.True(t, order.PendingAt.After(*firstPending) || order.PendingAt.Equal(*firstPending))
	assert.NotNil(t, order.FinalizedAt) // earlier stamp survives
}

func TestOrderService_ChangeState_SameStateIsNoOp(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)

	order, err = svc.ChangeState(context.Background(), order.ID, "EN_CURSO")
	require.NoError(t, err)
	stamp := order.InProgressAt

	order, err = svc.ChangeState(context.Background(), order.ID, "EN_CURSO")
	require.NoError(t, err)
	assert.Equal(t, stamp, order.InProgressAt)
}

func TestOrderService_ChangeState_InvalidState(t *testing.T) {
	svc, orderRepo, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)

	_, err = svc.ChangeState(context.Background(), order.ID, "ENTREGADO")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Order untouched
	stored, err := orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatePending, stored.State)
}

func TestOrderService_DeleteOrder_HardWhilePending(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))

	_, err = svc.GetOrder(context.Background(), order.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestOrderService_DeleteOrder_SoftWhenFinalized(t *testing.T) {
	svc, _, productRepo, meterPriceRepo, _ := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)
	_, err = svc.ChangeState(context.Background(), order.ID, "FINALIZADO")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))

	// Still retrievable by id, but flagged inactive
	kept, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.False(t, kept.Active)

	// ...and hidden from the default listing
	result, err := svc.ListOrders(context.Background(), defaultListParams())
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestOrderService_DeleteOrder_RemovesReceiptFiles(t *testing.T) {
	svc, orderRepo, productRepo, meterPriceRepo, store := newOrderServiceFixture(t)
	flatID, _ := seedCatalog(t, productRepo, meterPriceRepo)

	order, err := svc.CreateOrder(context.Background(), validOrderInput(OrderItemInput{ProductID: flatID, Quantity: 1}))
	require.NoError(t, err)

	paymentRepo := newMockPaymentRepo(orderRepo)
	paySvc := NewPaymentService(paymentRepo, orderRepo, store)
	_, err = paySvc.AddPayment(context.Background(), &AddPaymentInput{
		OrderID: order.ID,
		Method:  "Transferencia",
		Date:    "2025-02-01",
		Amount:  5000,
		Receipt: &ReceiptUpload{OriginalName: "transf.pdf", ContentType: "application/pdf", Data: payloadReader("pdf-bytes")},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	require.Len(t, store.removed, 1)
	assert.Empty(t, store.saved)
}
