package tripapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/config"
	"github.com/trip-dashboard/internal/domain"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		TripAPI: config.TripAPIConfig{BaseURL: server.URL + "/", RequestTimeout: 5},
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestClient_GetMetrics(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		vendor := "1"
		pmin := "2"
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/metrics", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "2016-01-01", q.Get("start"))
			assert.Equal(t, "2016-01-31", q.Get("end"))
			assert.Equal(t, "1", q.Get("vendor_id"))
			assert.Equal(t, "2", q.Get("passenger_min"))
			assert.False(t, q.Has("passenger_max"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"totalTrips": 1234567,
				"totalDistanceKm": 4200.5,
				"avgFare": 42,
				"avgTripTimeMin": 13.7,
				"timeSeries": [{"date": "2016-01-01", "trips": 10}, {"date": "2016-01-02", "trips": 12}],
				"byBorough": [{"borough": "Manhattan", "trips": 20}]
			}`))
		})

		result, err := c.GetMetrics(context.Background(), domain.FilterQuery{
			Start:        "2016-01-01",
			End:          "2016-01-31",
			VendorID:     &vendor,
			PassengerMin: &pmin,
		})
		require.NoError(t, err)
		assert.Equal(t, 1234567.0, result.TotalTrips)
		assert.Equal(t, 4200.5, result.TotalDistanceKm)
		assert.Equal(t, 42.0, result.AvgFare)
		assert.Equal(t, 13.7, result.AvgTripTimeMin)
		require.Len(t, result.TimeSeries, 2)
		assert.Equal(t, "2016-01-02", result.TimeSeries[1].Date)
		require.Len(t, result.ByBorough, 1)
		assert.Equal(t, "Manhattan", result.ByBorough[0].Borough)
	})

	t.Run("empty filter sends no query string", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			w.Write([]byte(`{}`))
		})

		result, err := c.GetMetrics(context.Background(), domain.FilterQuery{})
		require.NoError(t, err)
		assert.Zero(t, result.TotalTrips)
		assert.Empty(t, result.TimeSeries)
	})

	t.Run("api error response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("aggregation backend unavailable"))
		})

		result, err := c.GetMetrics(context.Background(), domain.FilterQuery{})
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrRequestFailed))
		assert.Equal(t, "aggregation backend unavailable", err.Error())

		rf, ok := apperrors.AsRequestFailed(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, rf.StatusCode)
	})

	t.Run("invalid json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		})

		result, err := c.GetMetrics(context.Background(), domain.FilterQuery{})
		assert.Nil(t, result)
		require.Error(t, err)
		assert.False(t, errors.Is(err, apperrors.ErrRequestFailed))
		assert.Contains(t, err.Error(), "failed to decode response")
	})
}

func TestClient_GetHeatmap(t *testing.T) {
	t.Run("decodes coordinate pairs", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/geo/heatmap", r.URL.Path)
			assert.Equal(t, "2016-01-01", r.URL.Query().Get("start"))
			json.NewEncoder(w).Encode([][]float64{{40.75, -73.99}, {40.64, -73.78}})
		})

		points, err := c.GetHeatmap(context.Background(), domain.FilterQuery{Start: "2016-01-01"})
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, domain.HeatPoint{Lat: 40.64, Lng: -73.78}, points[1])
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such route", http.StatusNotFound)
		})

		points, err := c.GetHeatmap(context.Background(), domain.FilterQuery{})
		assert.Nil(t, points)
		assert.True(t, errors.Is(err, apperrors.ErrRequestFailed))
		assert.Contains(t, err.Error(), "no such route")
	})
}

func TestClient_ListTrips(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trips", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("start"))
		w.Write([]byte(`{"rows": [{
			"pickup_datetime": "2016-03-14 17:24:55",
			"dropoff_datetime": "2016-03-14 17:32:30",
			"passenger_count": 1,
			"trip_distance_km": 1.5,
			"fare_amount": 9.25,
			"pickup_borough": "Manhattan",
			"dropoff_borough": "Queens"
		}]}`))
	})

	page, err := c.ListTrips(context.Background(), domain.TripListQuery{Offset: 0, Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	row := page.Rows[0]
	assert.Equal(t, "2016-03-14 17:24:55", row.PickupDatetime)
	assert.Equal(t, 1, row.PassengerCount)
	assert.Equal(t, 1.5, row.TripDistanceKm)
	assert.Equal(t, 9.25, row.FareAmount)
	assert.Equal(t, "Queens", row.DropoffBorough)
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.ListTrips(ctx, domain.TripListQuery{Limit: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
