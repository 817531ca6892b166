package repository

import (
	"context"

	"github.com/trip-dashboard/internal/domain"
)

// TripAPIRepository - чтение данных из внешнего API поездок
type TripAPIRepository interface {
	// GetMetrics возвращает агрегированные метрики по фильтру
	GetMetrics(ctx context.Context, query domain.FilterQuery) (*domain.MetricsResult, error)

	// GetHeatmap возвращает точки тепловой карты по фильтру
	GetHeatmap(ctx context.Context, query domain.FilterQuery) ([]domain.HeatPoint, error)

	// ListTrips возвращает страницу поездок
	ListTrips(ctx context.Context, query domain.TripListQuery) (*domain.TripPage, error)
}
