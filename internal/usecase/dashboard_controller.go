package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/trip-dashboard/internal/domain"
	"github.com/trip-dashboard/internal/domain/repository"
	"github.com/trip-dashboard/internal/pkg/format"
	"github.com/trip-dashboard/internal/pkg/validator"
	"github.com/trip-dashboard/internal/view"
)

const (
	defaultHeatmapLimit = 8000
	defaultTripsLimit   = 50

	markerRadius  = 2
	markerOpacity = 0.4
)

// ControllerSettings - параметры обновления дашборда
type ControllerSettings struct {
	HeatmapLimit    int
	TripsLimit      int
	ConcurrentFetch bool
}

func (s ControllerSettings) withDefaults() ControllerSettings {
	if s.HeatmapLimit <= 0 {
		s.HeatmapLimit = defaultHeatmapLimit
	}
	if s.TripsLimit <= 0 {
		s.TripsLimit = defaultTripsLimit
	}
	return s
}

// DashboardController - загружает данные из API поездок и обновляет поверхности страницы
type DashboardController struct {
	tripAPI   repository.TripAPIRepository
	formatter *format.Formatter
	surfaces  Surfaces
	settings  ControllerSettings
	logger    *zap.Logger
}

// NewDashboardController - создание контроллера для одной страницы
func NewDashboardController(
	tripAPI repository.TripAPIRepository,
	formatter *format.Formatter,
	surfaces Surfaces,
	settings ControllerSettings,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		tripAPI:   tripAPI,
		formatter: formatter,
		surfaces:  surfaces,
		settings:  settings.withDefaults(),
		logger:    logger,
	}
}

// refreshStep - один запрос и обновление его поверхностей
type refreshStep struct {
	name  string
	fetch func(ctx context.Context) error
	apply func()
}

// Refresh читает фильтр из формы, запрашивает метрики, тепловую карту и поездки
// и обновляет поверхности в этом порядке. Первая ошибка останавливает все
// последующие обновления; уже обновленные поверхности сохраняют новые значения.
func (c *DashboardController) Refresh(ctx context.Context) error {
	start := time.Now()

	query := c.surfaces.Form.Values().FilterQuery()
	if err := validator.ValidateFilter(query); err != nil {
		return err
	}

	steps := c.buildSteps(query)

	var err error
	if c.settings.ConcurrentFetch {
		err = c.runConcurrent(ctx, steps)
	} else {
		err = c.runSequential(ctx, steps)
	}
	if err != nil {
		return err
	}

	c.logger.Debug("Dashboard refreshed",
		zap.Duration("duration", time.Since(start)),
		zap.Bool("concurrent", c.settings.ConcurrentFetch))
	return nil
}

func (c *DashboardController) runSequential(ctx context.Context, steps []refreshStep) error {
	for _, step := range steps {
		if err := step.fetch(ctx); err != nil {
			return fmt.Errorf("refresh %s: %w", step.name, err)
		}
		step.apply()
	}
	return nil
}

// runConcurrent выполняет все запросы параллельно и применяет результаты по порядку.
// Контекст группы не отменяется по первой ошибке: шаги до упавшего должны
// получить свои ответы и обновить поверхности, как при последовательном режиме.
func (c *DashboardController) runConcurrent(ctx context.Context, steps []refreshStep) error {
	errs := make([]error, len(steps))

	var g errgroup.Group
	for i, step := range steps {
		g.Go(func() error {
			errs[i] = step.fetch(ctx)
			return errs[i]
		})
	}
	if err := g.Wait(); err == nil {
		for _, step := range steps {
			step.apply()
		}
		return nil
	}

	for i, step := range steps {
		if errs[i] != nil {
			return fmt.Errorf("refresh %s: %w", step.name, errs[i])
		}
		step.apply()
	}
	return nil
}

func (c *DashboardController) buildSteps(query domain.FilterQuery) []refreshStep {
	var (
		metrics *domain.MetricsResult
		heat    []domain.HeatPoint
		trips   *domain.TripPage
	)

	// NOTE: листинг поездок идет без фильтров, только окно offset 0 / limit
	tripsQuery := domain.TripListQuery{Offset: 0, Limit: c.settings.TripsLimit}

	return []refreshStep{
		{
			name: "metrics",
			fetch: func(ctx context.Context) (err error) {
				metrics, err = c.tripAPI.GetMetrics(ctx, query)
				return err
			},
			apply: func() { c.applyMetrics(metrics) },
		},
		{
			name: "heatmap",
			fetch: func(ctx context.Context) (err error) {
				heat, err = c.tripAPI.GetHeatmap(ctx, query)
				return err
			},
			apply: func() { c.applyHeatmap(heat) },
		},
		{
			name: "trips",
			fetch: func(ctx context.Context) (err error) {
				trips, err = c.tripAPI.ListTrips(ctx, tripsQuery)
				return err
			},
			apply: func() { c.applyTrips(trips) },
		},
	}
}

func (c *DashboardController) applyMetrics(m *domain.MetricsResult) {
	if m == nil {
		m = &domain.MetricsResult{}
	}
	f := c.formatter

	c.surfaces.KPIs.SetKPIs(view.KPIValues{
		Trips:    f.Number(m.TotalTrips),
		Distance: f.Number(m.TotalDistanceKm) + " km",
		Fare:     f.USD(m.AvgFare),
		Time:     f.Number(m.AvgTripTimeMin) + " min",
	})

	series := make([]view.ChartPoint, 0, len(m.TimeSeries))
	for _, p := range m.TimeSeries {
		series = append(series, view.ChartPoint{Label: p.Date, Value: p.Trips})
	}
	c.surfaces.Series.Replace(series)

	boroughs := make([]view.ChartPoint, 0, len(m.ByBorough))
	for _, b := range m.ByBorough {
		boroughs = append(boroughs, view.ChartPoint{Label: b.Borough, Value: b.Trips})
	}
	c.surfaces.Borough.Replace(boroughs)
}

func (c *DashboardController) applyHeatmap(points []domain.HeatPoint) {
	if len(points) > c.settings.HeatmapLimit {
		points = points[:c.settings.HeatmapLimit]
	}

	markers := make([]view.Marker, len(points))
	for i, p := range points {
		markers[i] = view.Marker{
			Lat:         p.Lat,
			Lng:         p.Lng,
			Radius:      markerRadius,
			Opacity:     markerOpacity,
			FillOpacity: markerOpacity,
		}
	}
	c.surfaces.Heat.ReplaceMarkers(markers)
}

func (c *DashboardController) applyTrips(page *domain.TripPage) {
	var trips []domain.TripRow
	if page != nil {
		trips = page.Rows
	}

	rows := make([]view.TableRow, len(trips))
	for i, t := range trips {
		rows[i] = view.TableRow{
			Pickup:         t.PickupDatetime,
			Dropoff:        t.DropoffDatetime,
			Passengers:     strconv.Itoa(t.PassengerCount),
			DistanceKm:     strconv.FormatFloat(t.TripDistanceKm, 'f', -1, 64),
			Fare:           c.formatter.USD(t.FareAmount),
			PickupBorough:  t.PickupBorough,
			DropoffBorough: t.DropoffBorough,
		}
	}
	c.surfaces.Table.ReplaceRows(rows)
}
