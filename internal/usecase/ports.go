package usecase

import "github.com/trip-dashboard/internal/view"

// FilterForm - источник значений фильтра
type FilterForm interface {
	Values() view.FormValues
}

// KPISurface - текстовые поля KPI
type KPISurface interface {
	SetKPIs(values view.KPIValues)
}

// ChartSurface - график, данные заменяются целиком
type ChartSurface interface {
	Replace(points []view.ChartPoint)
}

// HeatSurface - слой маркеров на карте
type HeatSurface interface {
	ReplaceMarkers(markers []view.Marker)
}

// TableSurface - тело таблицы поездок
type TableSurface interface {
	ReplaceRows(rows []view.TableRow)
}

// Surfaces - поверхности, на которые контроллер проецирует ответы API
type Surfaces struct {
	Form    FilterForm
	KPIs    KPISurface
	Series  ChartSurface
	Borough ChartSurface
	Heat    HeatSurface
	Table   TableSurface
}

// SurfacesFromPage связывает поверхности со страницей
func SurfacesFromPage(p *view.Page) Surfaces {
	return Surfaces{
		Form:    p.Form,
		KPIs:    p.KPIs,
		Series:  p.Series,
		Borough: p.Borough,
		Heat:    p.Heat,
		Table:   p.Table,
	}
}
