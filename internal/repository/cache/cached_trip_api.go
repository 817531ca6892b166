package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/trip-dashboard/internal/config"
	"github.com/trip-dashboard/internal/domain"
	"github.com/trip-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const keyPrefix = "tripapi"

// TTLs - время жизни закешированных ответов по эндпоинтам
type TTLs struct {
	Metrics time.Duration
	Heatmap time.Duration
	Trips   time.Duration
}

// TTLsFromConfig - TTL из конфигурации кеша
func TTLsFromConfig(cfg *config.CacheConfig) TTLs {
	return TTLs{
		Metrics: cfg.MetricsTTL,
		Heatmap: cfg.HeatmapTTL,
		Trips:   cfg.TripsTTL,
	}
}

// cachedTripAPI кеширует успешные ответы API поездок в redis.
// Ошибки кеша пропускаются, ошибки API не кешируются.
type cachedTripAPI struct {
	next   repository.TripAPIRepository
	cache  repository.CacheRepository
	ttls   TTLs
	logger *zap.Logger
}

// NewCachedTripAPI оборачивает TripAPIRepository кешем
func NewCachedTripAPI(
	next repository.TripAPIRepository,
	cache repository.CacheRepository,
	ttls TTLs,
	logger *zap.Logger,
) repository.TripAPIRepository {
	return &cachedTripAPI{
		next:   next,
		cache:  cache,
		ttls:   ttls,
		logger: logger,
	}
}

func cacheKey(endpoint, encodedQuery string) string {
	return keyPrefix + ":" + endpoint + ":" + encodedQuery
}

func (c *cachedTripAPI) GetMetrics(ctx context.Context, query domain.FilterQuery) (*domain.MetricsResult, error) {
	key := cacheKey("metrics", query.Values().Encode())

	var cached domain.MetricsResult
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := c.next.GetMetrics(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, result, c.ttls.Metrics)
	return result, nil
}

func (c *cachedTripAPI) GetHeatmap(ctx context.Context, query domain.FilterQuery) ([]domain.HeatPoint, error) {
	key := cacheKey("heatmap", query.Values().Encode())

	var cached []domain.HeatPoint
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	points, err := c.next.GetHeatmap(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, points, c.ttls.Heatmap)
	return points, nil
}

func (c *cachedTripAPI) ListTrips(ctx context.Context, query domain.TripListQuery) (*domain.TripPage, error) {
	key := cacheKey("trips", query.Values().Encode())

	var cached domain.TripPage
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	page, err := c.next.ListTrips(ctx, query)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, page, c.ttls.Trips)
	return page, nil
}

func (c *cachedTripAPI) load(ctx context.Context, key string, out interface{}) bool {
	data, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to read trip API cache", zap.String("key", key), zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("Failed to unmarshal cached trip API response", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *cachedTripAPI) store(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to marshal trip API response", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.cache.Set(ctx, key, data, ttl); err != nil {
		c.logger.Warn("Failed to cache trip API response", zap.String("key", key), zap.Error(err))
	}
}
