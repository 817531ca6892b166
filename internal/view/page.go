package view

// Page - все поверхности одной страницы дашборда
type Page struct {
	Form    *Form
	KPIs    *KPIPanel
	Series  *Chart
	Borough *Chart
	Heat    *HeatLayer
	Table   *TripTable
	Map     MapView
}

// MapView - начальный вид карты
type MapView struct {
	CenterLat float64 `json:"centerLat"`
	CenterLng float64 `json:"centerLng"`
	Zoom      int     `json:"zoom"`
}

// Snapshot - копия состояния страницы для рендеринга
type Snapshot struct {
	Form    FormValues `json:"form"`
	KPIs    KPIValues  `json:"kpis"`
	Series  ChartState `json:"series"`
	Borough ChartState `json:"borough"`
	Heat    HeatState  `json:"heat"`
	Rows    []TableRow `json:"rows"`
	Map     MapView    `json:"map"`
}

func NewPage(defaults FormValues, mapView MapView) *Page {
	return &Page{
		Form:    NewForm(defaults),
		KPIs:    NewKPIPanel(),
		Series:  NewChart("chartSeries", ChartLine, "Trips", true),
		Borough: NewChart("chartBorough", ChartBar, "Trips", false),
		Heat:    NewHeatLayer(),
		Table:   NewTripTable(),
		Map:     mapView,
	}
}

func (p *Page) Snapshot() Snapshot {
	return Snapshot{
		Form:    p.Form.Values(),
		KPIs:    p.KPIs.KPIs(),
		Series:  p.Series.State(),
		Borough: p.Borough.State(),
		Heat:    p.Heat.State(),
		Rows:    p.Table.Rows(),
		Map:     p.Map,
	}
}
