package view

import (
	"sync"

	"github.com/trip-dashboard/internal/pkg/utils"
)

// Marker - круглый маркер тепловой карты
type Marker struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Radius      float64 `json:"radius"`
	Opacity     float64 `json:"opacity"`
	FillOpacity float64 `json:"fillOpacity"`
}

// HeatState - снимок слоя для рендеринга
type HeatState struct {
	Markers []Marker      `json:"markers"`
	Bounds  *utils.Bounds `json:"bounds,omitempty"`
}

// HeatLayer - группа маркеров на карте
type HeatLayer struct {
	mu      sync.RWMutex
	markers []Marker
	bounds  *utils.Bounds
}

func NewHeatLayer() *HeatLayer {
	return &HeatLayer{markers: []Marker{}}
}

// ReplaceMarkers очищает слой и добавляет новые маркеры одной операцией
func (l *HeatLayer) ReplaceMarkers(markers []Marker) {
	next := make([]Marker, len(markers))
	copy(next, markers)

	bounder := utils.NewRectBounder()
	for _, m := range next {
		bounder.Add(m.Lat, m.Lng)
	}
	var bounds *utils.Bounds
	if b, ok := bounder.Bounds(); ok {
		bounds = &b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.markers = next
	l.bounds = bounds
}

func (l *HeatLayer) State() HeatState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s := HeatState{Markers: append([]Marker{}, l.markers...)}
	if l.bounds != nil {
		b := *l.bounds
		s.Bounds = &b
	}
	return s
}
