package repository

import (
	"context"
	"errors"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	domainRepo "github.com/tallersur/pedidos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	// Items are created through the association in the same transaction
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetWithDetails(ctx context.Context, id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("Payments.Receipts").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) HardDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var paymentIDs []uint
		if err := tx.Model(&entity.Payment{}).Where("order_id = ?", id).Pluck("id", &paymentIDs).Error; err != nil {
			return err
		}
		if len(paymentIDs) > 0 {
			if err := tx.Where("payment_id IN ?", paymentIDs).Delete(&entity.Receipt{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if !params.IncludeInactive {
		query = query.Where("active = ?", true)
	}

	if params.State != nil {
		query = query.Where("state = ?", *params.State)
	}

	if params.Customer != "" {
		query = query.Where("customer ILIKE ?", "%"+params.Customer+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("id DESC").
		Find(&orders).Error

	return orders, total, err
}
