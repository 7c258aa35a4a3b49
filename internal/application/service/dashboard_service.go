package service

import (
	"context"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
	"github.com/tallersur/pedidos-api/internal/domain/repository"
)

// DashboardService provides the workshop overview statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats represents the dashboard payload
type DashboardStats struct {
	TotalOrders     int64           `json:"total_pedidos"`
	Pending         int64           `json:"pendientes"`
	InProgress      int64           `json:"en_curso"`
	Finalized       int64           `json:"finalizados"`
	PendingTotal    float64         `json:"total_pendiente"`
	InProgressTotal float64         `json:"total_en_curso"`
	FinalizedTotal  float64         `json:"total_finalizado"`
	DailySeries     []DailyPoint    `json:"serie_diaria"`
	TopProducts     []ProductCount  `json:"productos_top"`
	LatestOrders    []entity.Order  `json:"ultimos_pedidos"`
}

// DailyPoint is one day in the last-7-days series
type DailyPoint struct {
	Label string  `json:"label"` // dd/mm
	Total float64 `json:"total"`
	Count int64   `json:"cantidad"`
}

// ProductCount is a line-item description with its summed sold quantity
type ProductCount struct {
	Description string `json:"descripcion"`
	Quantity    int64  `json:"cantidad"`
}

// GetStats assembles counts and totals per state, the creation series for the
// last seven days, the five best-selling items and the five newest orders.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	total, err := s.analyticsRepo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = total

	pending, err := s.analyticsRepo.TallyByState(ctx, enum.OrderStatePending)
	if err != nil {
		return nil, err
	}
	inProgress, err := s.analyticsRepo.TallyByState(ctx, enum.OrderStateInProgress)
	if err != nil {
		return nil, err
	}
	finalized, err := s.analyticsRepo.TallyByState(ctx, enum.OrderStateFinalized)
	if err != nil {
		return nil, err
	}
	stats.Pending = pending.Count
	stats.InProgress = inProgress.Count
	stats.Finalized = finalized.Count
	stats.PendingTotal = float64(pending.TotalCents) / 100
	stats.InProgressTotal = float64(inProgress.TotalCents) / 100
	stats.FinalizedTotal = float64(finalized.TotalCents) / 100

	today := time.Now().Truncate(24 * time.Hour)
	from := today.AddDate(0, 0, -6)
	to := today.AddDate(0, 0, 1)
	tallies, err := s.analyticsRepo.DailyTallies(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stats.DailySeries = make([]DailyPoint, 0, len(tallies))
	for _, t := range tallies {
		stats.DailySeries = append(stats.DailySeries, DailyPoint{
			Label: t.Day.Format("02/01"),
			Total: float64(t.TotalCents) / 100,
			Count: t.Count,
		})
	}

	topItems, err := s.analyticsRepo.TopItems(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopProducts = make([]ProductCount, 0, len(topItems))
	for _, item := range topItems {
		stats.TopProducts = append(stats.TopProducts, ProductCount{
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	latest, err := s.analyticsRepo.LatestOrders(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.LatestOrders = latest

	return stats, nil
}
