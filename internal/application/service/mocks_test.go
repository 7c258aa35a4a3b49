package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	domainRepo "github.com/tallersur/pedidos-api/internal/domain/repository"
)

// ============================================================================
// MOCK REPOSITORIES
// ============================================================================

type mockOrderRepo struct {
	orders map[uint]*entity.Order
	nextID uint

	createErr error
	updateErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uint]*entity.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = m.nextID
	m.nextID++
	for i := range order.Items {
		order.Items[i].ID = uint(i + 1)
		order.Items[i].OrderID = order.ID
	}
	order.CreatedAt = time.Now()
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	clone.Items = nil
	clone.Payments = nil
	return &clone, nil
}

func (m *mockOrderRepo) GetWithDetails(ctx context.Context, id uint) (*entity.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, ok := m.orders[order.ID]
	if !ok {
		return fmt.Errorf("order %d not found", order.ID)
	}
	clone := *order
	clone.Items = existing.Items
	clone.Payments = existing.Payments
	m.orders[order.ID] = &clone
	return nil
}

func (m *mockOrderRepo) HardDelete(ctx context.Context, id uint) error {
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, order := range m.orders {
		if !params.IncludeInactive && !order.Active {
			continue
		}
		if params.State != nil && order.State != *params.State {
			continue
		}
		if params.Customer != "" && !strings.Contains(strings.ToLower(order.Customer), strings.ToLower(params.Customer)) {
			continue
		}
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

type mockPaymentRepo struct {
	payments map[uint]*entity.Payment
	orders   *mockOrderRepo
	nextID   uint

	createErr error
}

func newMockPaymentRepo(orders *mockOrderRepo) *mockPaymentRepo {
	return &mockPaymentRepo{payments: make(map[uint]*entity.Payment), orders: orders, nextID: 1}
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if m.createErr != nil {
		return m.createErr
	}
	payment.ID = m.nextID
	m.nextID++
	for i := range payment.Receipts {
		payment.Receipts[i].ID = uint(i + 1)
		payment.Receipts[i].PaymentID = payment.ID
	}
	stored := *payment
	m.payments[payment.ID] = &stored
	if m.orders != nil {
		if order, ok := m.orders.orders[payment.OrderID]; ok {
			order.Payments = append(order.Payments, stored)
		}
	}
	return nil
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id uint) (*entity.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return nil, nil
	}
	clone := *payment
	return &clone, nil
}

func (m *mockPaymentRepo) Delete(ctx context.Context, id uint) error {
	payment, ok := m.payments[id]
	if ok && m.orders != nil {
		if order, exists := m.orders.orders[payment.OrderID]; exists {
			kept := order.Payments[:0]
			for _, p := range order.Payments {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			order.Payments = kept
		}
	}
	delete(m.payments, id)
	return nil
}

func (m *mockPaymentRepo) GetReceiptByStoredName(ctx context.Context, storedName string) (*entity.Receipt, error) {
	for _, payment := range m.payments {
		for _, receipt := range payment.Receipts {
			if receipt.StoredName == storedName {
				clone := receipt
				return &clone, nil
			}
		}
	}
	return nil, nil
}

type mockProductRepo struct {
	products map[uint]*entity.Product
	nextID   uint
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]*entity.Product), nextID: 1}
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	product.ID = m.nextID
	m.nextID++
	stored := *product
	m.products[product.ID] = &stored
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if product, ok := m.products[id]; ok {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (m *mockProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, product := range m.products {
		out = append(out, *product)
	}
	return out, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	delete(m.products, id)
	return nil
}

type mockMeterPriceRepo struct {
	prices []entity.MeterPrice
}

func (m *mockMeterPriceRepo) List(ctx context.Context) ([]entity.MeterPrice, error) {
	out := make([]entity.MeterPrice, len(m.prices))
	copy(out, m.prices)
	return out, nil
}

func (m *mockMeterPriceRepo) ReplaceAll(ctx context.Context, prices []entity.MeterPrice) error {
	m.prices = make([]entity.MeterPrice, len(prices))
	copy(m.prices, prices)
	return nil
}

// ============================================================================
// FAKE RECEIPT STORE
// ============================================================================

type fakeStore struct {
	saved   map[string][]byte
	removed []string
	nextID  int

	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) Save(originalName string, r io.Reader) (string, int64, error) {
	if f.saveErr != nil {
		return "", 0, f.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	f.nextID++
	storedName := fmt.Sprintf("stored-%d", f.nextID)
	f.saved[storedName] = data
	return storedName, int64(len(data)), nil
}

func (f *fakeStore) Open(storedName string) (io.ReadCloser, error) {
	data, ok := f.saved[storedName]
	if !ok {
		return nil, fmt.Errorf("file %s not found", storedName)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStore) Remove(storedName string) error {
	delete(f.saved, storedName)
	f.removed = append(f.removed, storedName)
	return nil
}
