package domain

import (
	"net/url"
)

// FilterQuery - фильтр для метрик и тепловой карты.
// Пустые поля не попадают в query string, остальные уходят как введены.
type FilterQuery struct {
	Start        string  `json:"start,omitempty"`
	End          string  `json:"end,omitempty"`
	VendorID     *string `json:"vendor_id,omitempty"`
	PassengerMin *string `json:"passenger_min,omitempty" validate:"omitempty,numeric"`
	PassengerMax *string `json:"passenger_max,omitempty" validate:"omitempty,numeric"`
}

// Values кодирует фильтр в параметры запроса
func (q FilterQuery) Values() url.Values {
	params := url.Values{}
	if q.Start != "" {
		params.Set("start", q.Start)
	}
	if q.End != "" {
		params.Set("end", q.End)
	}
	setOptional(params, "vendor_id", q.VendorID)
	setOptional(params, "passenger_min", q.PassengerMin)
	setOptional(params, "passenger_max", q.PassengerMax)
	return params
}

func setOptional(params url.Values, key string, v *string) {
	if v != nil && *v != "" {
		params.Set(key, *v)
	}
}
