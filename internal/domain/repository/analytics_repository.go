package repository

import (
	"context"
	"time"

	"github.com/tallersur/pedidos-api/internal/domain/entity"
	"github.com/tallersur/pedidos-api/internal/domain/enum"
)

// StateTally is the count and summed total of orders in one state
type StateTally struct {
	Count      int64
	TotalCents int64
}

// DailyTally is one day of the creation-date series
type DailyTally struct {
	Day        time.Time
	Count      int64
	TotalCents int64
}

// ItemTally is a line-item description with its summed quantity
type ItemTally struct {
	Description string
	Quantity    int64
}

// AnalyticsRepository provides the aggregate queries behind the dashboard
type AnalyticsRepository interface {
	CountOrders(ctx context.Context) (int64, error)
	TallyByState(ctx context.Context, state enum.OrderState) (StateTally, error)
	// DailyTallies returns one entry per day in [from, to), days without
	// orders included with zero values.
	DailyTallies(ctx context.Context, from, to time.Time) ([]DailyTally, error)
	TopItems(ctx context.Context, limit int) ([]ItemTally, error)
	LatestOrders(ctx context.Context, limit int) ([]entity.Order, error)
}
