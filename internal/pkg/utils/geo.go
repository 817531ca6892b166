package utils

import (
	"github.com/golang/geo/s2"
)

// Bounds - прямоугольник на карте в градусах
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return s2.LatLngFromDegrees(lat, lng).IsValid()
}

// RectBounder накапливает s2 прямоугольник по добавленным точкам
type RectBounder struct {
	rect s2.Rect
}

// NewRectBounder создает пустой RectBounder
func NewRectBounder() *RectBounder {
	return &RectBounder{rect: s2.EmptyRect()}
}

// Add добавляет точку, невалидные координаты пропускаются
func (b *RectBounder) Add(lat, lng float64) bool {
	if !ValidateCoordinates(lat, lng) {
		return false
	}
	b.rect = b.rect.AddPoint(s2.LatLngFromDegrees(lat, lng))
	return true
}

// Bounds возвращает границы или false, если точек не было
func (b *RectBounder) Bounds() (Bounds, bool) {
	if b.rect.IsEmpty() {
		return Bounds{}, false
	}
	lo, hi := b.rect.Lo(), b.rect.Hi()
	return Bounds{
		MinLat: lo.Lat.Degrees(),
		MinLng: lo.Lng.Degrees(),
		MaxLat: hi.Lat.Degrees(),
		MaxLng: hi.Lng.Degrees(),
	}, true
}
