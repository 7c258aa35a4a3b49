package repository

import (
	"context"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	domainRepo "github.com/tallersur/pedidos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) TallyByState(ctx context.Context, state enum.OrderState) (domainRepo.StateTally, error) {
	var row struct {
		Count      int64
		TotalCents int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total_cents").
		Where("state = ?", state).
		Scan(&row).Error
	return domainRepo.StateTally{Count: row.Count, TotalCents: row.TotalCents}, err
}

func (r *analyticsRepository) DailyTallies(ctx context.Context, from, to time.Time) ([]domainRepo.DailyTally, error) {
	var rows []struct {
		Day        time.Time
		Count      int64
		TotalCents int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("DATE(created_at) AS day, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total_cents").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]domainRepo.DailyTally, len(rows))
	for _, row := range rows {
		key := row.Day.Format("2006-01-02")
		byDay[key] = domainRepo.DailyTally{Day: row.Day, Count: row.Count, TotalCents: row.TotalCents}
	}

	// Fill days without orders with zero tallies
	var tallies []domainRepo.DailyTally
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if tally, ok := byDay[key]; ok {
			tally.Day = d
			tallies = append(tallies, tally)
		} else {
			tallies = append(tallies, domainRepo.DailyTally{Day: d})
		}
	}
	return tallies, nil
}

func (r *analyticsRepository) TopItems(ctx context.Context, limit int) ([]domainRepo.ItemTally, error) {
	var rows []struct {
		Description string
		Quantity    int64
	}
	err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Select("description, SUM(quantity) AS quantity").
		Group("description").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	tallies := make([]domainRepo.ItemTally, 0, len(rows))
	for _, row := range rows {
		tallies = append(tallies, domainRepo.ItemTally{Description: row.Description, Quantity: row.Quantity})
	}
	return tallies, nil
}

func (r *analyticsRepository) LatestOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
