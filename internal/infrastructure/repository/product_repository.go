package repository

import (
	"context"
	"errors"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	domainRepo "github.com/tallersur/pedidos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

type meterPriceRepository struct {
	db *gorm.DB
}

// NewMeterPriceRepository creates a new per-meter price repository
func NewMeterPriceRepository(db *gorm.DB) domainRepo.MeterPriceRepository {
	return &meterPriceRepository{db: db}
}

func (r *meterPriceRepository) List(ctx context.Context) ([]entity.MeterPrice, error) {
	var prices []entity.MeterPrice
	err := r.db.WithContext(ctx).Order("material ASC").Find(&prices).Error
	return prices, err
}

func (r *meterPriceRepository) ReplaceAll(ctx context.Context, prices []entity.MeterPrice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.MeterPrice{}).Error; err != nil {
			return err
		}
		if len(prices) == 0 {
			return nil
		}
		return tx.Create(&prices).Error
	})
}
