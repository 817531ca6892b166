package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trip-dashboard/internal/domain"
)

// MockTripAPIRepository is a mock of TripAPIRepository
type MockTripAPIRepository struct {
	mock.Mock
}

func (m *MockTripAPIRepository) GetMetrics(ctx context.Context, query domain.FilterQuery) (*domain.MetricsResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MetricsResult), args.Error(1)
}

func (m *MockTripAPIRepository) GetHeatmap(ctx context.Context, query domain.FilterQuery) ([]domain.HeatPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeatPoint), args.Error(1)
}

func (m *MockTripAPIRepository) ListTrips(ctx context.Context, query domain.TripListQuery) (*domain.TripPage, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripPage), args.Error(1)
}
