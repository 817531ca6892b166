package domain

import (
	"net/url"
	"strconv"
)

// TripRow - строка таблицы поездок
type TripRow struct {
	PickupDatetime  string  `json:"pickup_datetime"`
	DropoffDatetime string  `json:"dropoff_datetime"`
	PassengerCount  int     `json:"passenger_count"`
	TripDistanceKm  float64 `json:"trip_distance_km"`
	FareAmount      float64 `json:"fare_amount"`
	PickupBorough   string  `json:"pickup_borough"`
	DropoffBorough  string  `json:"dropoff_borough"`
}

// TripPage - страница поездок
type TripPage struct {
	Rows []TripRow `json:"rows"`
}

// TripListQuery - пагинация и фильтры листинга поездок.
// Offset и Limit отправляются всегда, остальные поля - только если заданы.
type TripListQuery struct {
	Offset int
	Limit  int

	StartDate        string
	EndDate          string
	HourOfDay        *int
	DayOfWeek        *int
	IsWeekend        *bool
	DistanceCategory string
	MinSpeed         *float64
	MaxSpeed         *float64
	PassengerCount   *int
}

// Values кодирует запрос в параметры
func (q TripListQuery) Values() url.Values {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("limit", strconv.Itoa(q.Limit))

	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}
	if q.HourOfDay != nil {
		params.Set("hour_of_day", strconv.Itoa(*q.HourOfDay))
	}
	if q.DayOfWeek != nil {
		params.Set("day_of_week", strconv.Itoa(*q.DayOfWeek))
	}
	if q.IsWeekend != nil {
		params.Set("is_weekend", strconv.FormatBool(*q.IsWeekend))
	}
	if q.DistanceCategory != "" {
		params.Set("distance_category", q.DistanceCategory)
	}
	if q.MinSpeed != nil {
		params.Set("min_speed", strconv.FormatFloat(*q.MinSpeed, 'f', -1, 64))
	}
	if q.MaxSpeed != nil {
		params.Set("max_speed", strconv.FormatFloat(*q.MaxSpeed, 'f', -1, 64))
	}
	if q.PassengerCount != nil {
		params.Set("passenger_count", strconv.Itoa(*q.PassengerCount))
	}
	return params
}
