package tripapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/trip-dashboard/internal/config"
	"github.com/trip-dashboard/internal/domain"
	"github.com/trip-dashboard/internal/domain/repository"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	metricsPath = "/api/metrics"
	heatmapPath = "/api/geo/heatmap"
	tripsPath   = "/api/trips"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент для API поездок
func NewClient(cfg *config.Config, logger *zap.Logger) repository.TripAPIRepository {
	return NewClientWithHTTP(&http.Client{Timeout: cfg.GetTripAPITimeout()}, cfg.TripAPI.BaseURL, logger)
}

// NewClientWithHTTP создает клиент с готовым http.Client
func NewClientWithHTTP(httpClient *http.Client, baseURL string, logger *zap.Logger) repository.TripAPIRepository {
	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// GetMetrics возвращает агрегированные метрики
func (c *client) GetMetrics(ctx context.Context, query domain.FilterQuery) (*domain.MetricsResult, error) {
	var metrics domain.MetricsResult
	if err := c.get(ctx, metricsPath, query.Values(), &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GetHeatmap возвращает точки тепловой карты
func (c *client) GetHeatmap(ctx context.Context, query domain.FilterQuery) ([]domain.HeatPoint, error) {
	var points []domain.HeatPoint
	if err := c.get(ctx, heatmapPath, query.Values(), &points); err != nil {
		return nil, err
	}
	return points, nil
}

// ListTrips возвращает страницу поездок
func (c *client) ListTrips(ctx context.Context, query domain.TripListQuery) (*domain.TripPage, error) {
	var page domain.TripPage
	if err := c.get(ctx, tripsPath, query.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *client) buildURL(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.buildURL(path, params)

	c.logger.Debug("Calling Trip API", zap.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to execute request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Trip API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return apperrors.NewRequestFailed(resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response %s: %w", path, err)
	}

	c.logger.Debug("Trip API call successful", zap.String("path", path))
	return nil
}
