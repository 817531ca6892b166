package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/domain"
	"github.com/trip-dashboard/internal/pkg/format"
	"github.com/trip-dashboard/internal/usecase"
	"github.com/trip-dashboard/internal/view"
)

func newSessionUseCase(api *MockTripAPIRepository, ttl time.Duration, maxSessions int) *usecase.SessionUseCase {
	return usecase.NewSessionUseCase(
		api,
		format.New("en-US"),
		usecase.ControllerSettings{HeatmapLimit: 8000, TripsLimit: 50},
		view.FormValues{Start: "2016-01-01", End: "2016-06-30"},
		view.MapView{CenterLat: 40.73, CenterLng: -73.94, Zoom: 11},
		ttl,
		maxSessions,
		zap.NewNop(),
	)
}

func TestSessionUseCase_CreateAndGet(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, time.Hour, 0)

	sess := uc.Create()
	require.NotNil(t, sess)
	_, err := uuid.Parse(sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, "2016-01-01", sess.Page.Form.Values().Start)
	assert.Equal(t, 11, sess.Page.Map.Zoom)
	assert.Equal(t, 1, uc.Count())

	got, ok := uc.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = uc.Get("")
	assert.False(t, ok)
	_, ok = uc.Get(uuid.NewString())
	assert.False(t, ok)
}

func TestSessionUseCase_GetOrCreate(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, time.Hour, 0)

	first, created := uc.GetOrCreate("unknown")
	assert.True(t, created)

	again, created := uc.GetOrCreate(first.ID)
	assert.False(t, created)
	assert.Same(t, first, again)
	assert.Equal(t, 1, uc.Count())
}

func TestSessionUseCase_SessionsAreIsolated(t *testing.T) {
	api := &MockTripAPIRepository{}
	uc := newSessionUseCase(api, time.Hour, 0)

	api.On("GetMetrics", mock.Anything, mock.Anything).Return(&domain.MetricsResult{TotalTrips: 10}, nil)
	api.On("GetHeatmap", mock.Anything, mock.Anything).Return([]domain.HeatPoint{{Lat: 40.7, Lng: -73.9}}, nil)
	api.On("ListTrips", mock.Anything, mock.Anything).Return(&domain.TripPage{}, nil)

	a := uc.Create()
	b := uc.Create()
	require.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.Controller.Refresh(context.Background()))

	assert.Equal(t, "10", a.Page.KPIs.KPIs().Trips)
	assert.Empty(t, b.Page.KPIs.KPIs().Trips)
	assert.Len(t, a.Page.Heat.State().Markers, 1)
	assert.Empty(t, b.Page.Heat.State().Markers)
}

func TestSessionUseCase_Sweep(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, time.Minute, 0)

	first := uc.Create()
	second := uc.Create()

	now := time.Now()
	assert.Zero(t, uc.Sweep(now))

	removed := uc.Sweep(now.Add(2 * time.Minute))
	assert.Equal(t, 2, removed)
	assert.Zero(t, uc.Count())

	_, ok := uc.Get(first.ID)
	assert.False(t, ok)
	_, ok = uc.Get(second.ID)
	assert.False(t, ok)
}

func TestSessionUseCase_SweepDisabled(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, 0, 0)
	uc.Create()
	assert.Zero(t, uc.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, uc.Count())
}

func TestSessionUseCase_EvictsLeastRecentlySeen(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, time.Hour, 3)

	first := uc.Create()
	second := uc.Create()
	third := uc.Create()

	// first становится самой свежей
	_, ok := uc.Get(first.ID)
	require.True(t, ok)

	fourth := uc.Create()
	assert.Equal(t, 3, uc.Count())
	_, ok = uc.Get(second.ID)
	assert.False(t, ok)

	fifth := uc.Create()
	assert.Equal(t, 3, uc.Count())
	_, ok = uc.Get(third.ID)
	assert.False(t, ok)

	for _, sess := range []*usecase.DashboardSession{first, fourth, fifth} {
		_, ok := uc.Get(sess.ID)
		assert.True(t, ok, sess.ID)
	}
}

func TestSessionUseCase_CookielessClientsStayWithinCap(t *testing.T) {
	uc := newSessionUseCase(&MockTripAPIRepository{}, time.Hour, 10)

	var last *usecase.DashboardSession
	for i := 0; i < 200; i++ {
		sess, created := uc.GetOrCreate("")
		require.True(t, created)
		last = sess
	}

	assert.Equal(t, 10, uc.Count())
	_, ok := uc.Get(last.ID)
	assert.True(t, ok)
}
