package domain

// MetricsResult - агрегированные метрики по поездкам
type MetricsResult struct {
	TotalTrips      float64           `json:"totalTrips"`
	TotalDistanceKm float64           `json:"totalDistanceKm"`
	AvgFare         float64           `json:"avgFare"`
	AvgTripTimeMin  float64           `json:"avgTripTimeMin"`
	TimeSeries      []TimeSeriesPoint `json:"timeSeries"`
	ByBorough       []BoroughCount    `json:"byBorough"`
}

// TimeSeriesPoint - количество поездок за дату
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Trips float64 `json:"trips"`
}

// BoroughCount - количество поездок по району
type BoroughCount struct {
	Borough string  `json:"borough"`
	Trips   float64 `json:"trips"`
}
